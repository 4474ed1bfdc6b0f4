package warzone

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadMapFile_Small(t *testing.T) {
	m, err := LoadMapFile("testdata/small.map")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Name != "small" {
		t.Errorf("expected name small, got %q", m.Name)
	}
	if m.Image != "small.bmp" {
		t.Errorf("expected image small.bmp, got %q", m.Image)
	}
	if len(m.Territories) != 5 {
		t.Fatalf("expected 5 territories, got %d", len(m.Territories))
	}
	if c := m.Continents["North"]; c == nil || c.Bonus != 3 || c.Color != "red" || len(c.Territories) != 3 {
		t.Errorf("unexpected North continent: %+v", c)
	}
	if d := m.Territory("Delta"); d.X != 30 || d.Y != 30 || d.Continent != "South" {
		t.Errorf("unexpected Delta: %+v", d)
	}
	if !m.Adjacent("Delta", "Echo") || !m.Adjacent("Echo", "Delta") {
		t.Error("Delta and Echo should be adjacent")
	}
	if !m.Validate() {
		t.Errorf("small map should validate: %v", m.Check())
	}
	names := m.TerritoryNames()
	if names[0] != "Alpha" || names[4] != "Echo" {
		t.Errorf("load order not preserved: %v", names)
	}
}

func TestLoadMapFile_DisconnectedLoadsButFailsValidation(t *testing.T) {
	m, err := LoadMapFile("testdata/disconnected.map")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Validate() {
		t.Error("islands map should not validate")
	}
}

func TestLoadMapFile_UnknownAdjacency(t *testing.T) {
	_, err := LoadMapFile("testdata/badadjacency.map")
	if !errors.Is(err, ErrInvalidMap) {
		t.Fatalf("expected ErrInvalidMap, got %v", err)
	}
	if !strings.Contains(err.Error(), "Nowhere") {
		t.Errorf("error should name the unknown territory: %v", err)
	}
}

func TestLoadMapFile_Missing(t *testing.T) {
	_, err := LoadMapFile("testdata/does-not-exist.map")
	if !errors.Is(err, ErrInvalidMap) {
		t.Fatalf("expected ErrInvalidMap, got %v", err)
	}
}

func TestParseMap_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing territories section", "[Map]\nimage=x\n[Continents]\nA=1\n"},
		{"bad bonus", "[Map]\n[Continents]\nA=lots\n[Territories]\n"},
		{"unknown continent", "[Map]\n[Continents]\nA=1\n[Territories]\nT,1,1,B\n"},
		{"bad coordinates", "[Map]\n[Continents]\nA=1\n[Territories]\nT,x,1,A\n"},
		{"short territory line", "[Map]\n[Continents]\nA=1\n[Territories]\nT,1\n"},
		{"outside section", "image=x\n[Map]\n"},
		{"duplicate territory", "[Map]\n[Continents]\nA=1\n[Territories]\nT,1,1,A\nT,2,2,A\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMap(strings.NewReader(tt.src)); !errors.Is(err, ErrInvalidMap) {
				t.Errorf("expected ErrInvalidMap, got %v", err)
			}
		})
	}
}

func TestParseMap_ForwardReferences(t *testing.T) {
	src := `[Map]
image=f.bmp
[Continents]
C=1
[Territories]
First,0,0,C,Second
Second,0,0,C,First
`
	m, err := ParseMap(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !m.Adjacent("First", "Second") {
		t.Error("forward reference should resolve")
	}
}

func TestMapString_RoundTrip(t *testing.T) {
	m, err := LoadMapFile("testdata/small.map")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	again, err := ParseMap(strings.NewReader(m.String()))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(again.Territories) != len(m.Territories) || !again.Validate() {
		t.Error("rendered map should parse back to an equivalent valid map")
	}
}
