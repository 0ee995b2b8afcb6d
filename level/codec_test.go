package level

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
)

func testCatalog(tiles ...*Tile) Resolver {
	m := make(map[string]*Tile, len(tiles))
	for _, t := range tiles {
		m[t.ID] = t
	}
	return ResolverFunc(func(id string) (*Tile, bool) {
		t, ok := m[id]
		return t, ok
	})
}

func TestRoundTrip(t *testing.T) {
	tileC := &Tile{ID: "c", Kind: KindEmpty}
	pool := []*Tile{nil, tileA, tileB, tileC}
	r := testCatalog(tileA, tileB, tileC)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 25; i++ {
		w, h := rng.Intn(12)+1, rng.Intn(12)+1
		g, _ := New(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				_ = g.Set(x, y, pool[rng.Intn(len(pool))])
			}
		}
		data, err := Encode(g)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		back, err := Decode(data, r)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !g.Equal(back) {
			t.Fatalf("round trip changed a %dx%d grid", w, h)
		}
		back.Each(func(x, y int, tile *Tile) {
			orig, _ := g.Get(x, y)
			if tile != orig {
				t.Fatalf("cell (%d,%d) resolved to %p, want catalog tile %p", x, y, tile, orig)
			}
		})
	}
}

func TestEncodeLayout(t *testing.T) {
	g, _ := New(3, 1)
	_ = g.Set(0, 0, tileB)
	_ = g.Set(2, 0, tileB)
	data, err := Encode(g)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"width\": 3,\n  \"height\": 1,\n  \"tiles\": [\n    \"b\"\n  ],\n  \"cells\": [\n    1,\n    0,\n    1\n  ]\n}"
	if string(data) != want {
		t.Fatalf("unexpected encoding:\n%s", data)
	}
}

func TestEncodeRejectsUnnamedTile(t *testing.T) {
	g, _ := New(2, 2)
	_ = g.Set(1, 1, &Tile{Kind: KindNormal})
	if _, err := Encode(g); !errors.Is(err, ErrUnnamedTile) {
		t.Fatalf("expected ErrUnnamedTile, got %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	r := testCatalog(tileA)
	cases := []struct {
		name string
		data string
		want error
	}{
		{"not_json", `{"width":`, ErrMalformed},
		{"zero_width", `{"width":0,"height":1,"tiles":[],"cells":[]}`, ErrMalformed},
		{"short_cells", `{"width":2,"height":1,"tiles":[],"cells":[0]}`, ErrMalformed},
		{"index_past_table", `{"width":1,"height":1,"tiles":["a"],"cells":[2]}`, ErrMalformed},
		{"negative_index", `{"width":1,"height":1,"tiles":["a"],"cells":[-1]}`, ErrMalformed},
		{"blank_id", `{"width":1,"height":1,"tiles":[""],"cells":[1]}`, ErrMalformed},
		{"unknown_tile", `{"width":1,"height":1,"tiles":["zzz"],"cells":[1]}`, ErrUnknownTile},
		{"huge_wrapping_size", `{"width":4294967296,"height":4294967296,"tiles":[],"cells":[]}`, ErrMalformed},
		{"huge_size", `{"width":2147483648,"height":2147483648,"tiles":[],"cells":[0]}`, ErrMalformed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Decode([]byte(c.data), r); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
	if _, err := Decode([]byte(`{"width":-2,"height":1,"tiles":[],"cells":[]}`), r); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("dimension errors should keep ErrInvalidDimension in the chain, got %v", err)
	}
}

func TestDecodeWithoutResolverSharesPlaceholders(t *testing.T) {
	data := []byte(`{"width":2,"height":2,"tiles":["x","y"],"cells":[1,0,1,2]}`)
	g, err := Decode(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := g.Get(0, 0)
	b, _ := g.Get(0, 1)
	c, _ := g.Get(1, 1)
	if a == nil || a.ID != "x" || a != b {
		t.Fatalf("expected one shared placeholder for x, got %v and %v", a, b)
	}
	if c == nil || c.ID != "y" {
		t.Fatalf("expected placeholder y, got %v", c)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "level.json")
	g, _ := New(4, 4)
	_ = g.Set(3, 0, tileA)
	_ = g.Set(0, 3, tileB)
	if err := Save(path, g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := Load(path, testCatalog(tileA, tileB))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !g.Equal(back) {
		t.Fatalf("loaded grid differs from saved grid")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if err := Save("", g); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
