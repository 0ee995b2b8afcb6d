package editor

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Prefs is what the editor remembers between runs.
type Prefs struct {
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	LastFile string   `yaml:"last_file"`
	Slots    []string `yaml:"slots"`
}

func DefaultPrefs() *Prefs {
	return &Prefs{Width: 10, Height: 10}
}

const (
	prefsObject   = "editor"
	prefsProperty = "prefs"
)

// PrefsStore persists Prefs through gdata. Without a manager it keeps the
// last saved preferences in memory for the life of the process.
type PrefsStore struct {
	manager *gdata.Manager
	mem     []byte
}

// OpenPrefsStore opens the per-user data directory for appName. When the
// platform storage is unavailable the store falls back to memory only.
func OpenPrefsStore(appName string) *PrefsStore {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("Preferences unavailable, keeping them in memory: %v", err)
		return &PrefsStore{}
	}
	return &PrefsStore{manager: m}
}

func NewPrefsStore(m *gdata.Manager) *PrefsStore {
	return &PrefsStore{manager: m}
}

// Load returns stored preferences, or defaults when nothing is stored yet.
// Non-positive sizes are replaced with the defaults.
func (s *PrefsStore) Load() (*Prefs, error) {
	if s == nil {
		return DefaultPrefs(), nil
	}
	data, err := s.read()
	if err != nil {
		return DefaultPrefs(), fmt.Errorf("load prefs: %w", err)
	}
	if data == nil {
		return DefaultPrefs(), nil
	}
	p := DefaultPrefs()
	if err := yaml.Unmarshal(data, p); err != nil {
		return DefaultPrefs(), fmt.Errorf("unmarshal prefs: %w", err)
	}
	def := DefaultPrefs()
	if p.Width <= 0 {
		p.Width = def.Width
	}
	if p.Height <= 0 {
		p.Height = def.Height
	}
	return p, nil
}

func (s *PrefsStore) Save(p *Prefs) error {
	if s == nil {
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if s.manager == nil {
		s.mem = data
		return nil
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// read returns the stored payload, or nil when nothing was saved.
func (s *PrefsStore) read() ([]byte, error) {
	if s.manager == nil {
		return s.mem, nil
	}
	if !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil, nil
	}
	return s.manager.LoadObjectProp(prefsObject, prefsProperty)
}
