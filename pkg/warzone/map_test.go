package warzone

import (
	"errors"
	"strings"
	"testing"
)

// lineMap builds A-B-C with A not adjacent to C, all in one continent.
func lineMap() *Map {
	m := NewMap("line")
	m.AddContinent("Everywhere", 2)
	for _, n := range []string{"A", "B", "C"} {
		m.AddTerritory(n, "Everywhere")
	}
	m.Connect("A", "B")
	m.Connect("B", "C")
	return m
}

// twoContinentMap builds North {N1,N2} and South {S1,S2} joined by N2-S1.
func twoContinentMap() *Map {
	m := NewMap("two")
	m.AddContinent("North", 5)
	m.AddContinent("South", 2)
	m.AddTerritory("N1", "North")
	m.AddTerritory("N2", "North")
	m.AddTerritory("S1", "South")
	m.AddTerritory("S2", "South")
	m.Connect("N1", "N2")
	m.Connect("N2", "S1")
	m.Connect("S1", "S2")
	return m
}

func TestValidate_ConnectedLine(t *testing.T) {
	m := lineMap()
	if !m.Validate() {
		t.Fatalf("expected valid map, got %v", m.Check())
	}
	if m.Adjacent("A", "C") {
		t.Error("A should not be adjacent to C")
	}
}

func TestValidate_RemovedEdgeDisconnects(t *testing.T) {
	m := lineMap()
	m.Disconnect("B", "C")
	if m.Validate() {
		t.Fatal("expected map without B-C edge to be invalid")
	}
	if err := m.Check(); !errors.Is(err, ErrInvalidMap) {
		t.Errorf("expected ErrInvalidMap, got %v", err)
	}
}

func TestValidate_EmptyMap(t *testing.T) {
	if NewMap("empty").Validate() {
		t.Error("empty map should be invalid")
	}
}

func TestValidate_TerritoryInTwoContinents(t *testing.T) {
	m := twoContinentMap()
	m.Continents["South"].Territories = append(m.Continents["South"].Territories, "N2")
	err := m.Check()
	if err == nil || !strings.Contains(err.Error(), "both") {
		t.Fatalf("expected double-membership error, got %v", err)
	}
}

func TestValidate_TerritoryWithoutContinent(t *testing.T) {
	m := lineMap()
	m.AddTerritory("D", "Atlantis")
	m.Connect("C", "D")
	if m.Validate() {
		t.Error("territory with no continent should make the map invalid")
	}
}

func TestValidate_ContinentNotConnected(t *testing.T) {
	// N1 and N2 only reach each other through South.
	m := NewMap("split")
	m.AddContinent("North", 1)
	m.AddContinent("South", 1)
	m.AddTerritory("N1", "North")
	m.AddTerritory("N2", "North")
	m.AddTerritory("S1", "South")
	m.Connect("N1", "S1")
	m.Connect("S1", "N2")

	err := m.Check()
	if err == nil || !strings.Contains(err.Error(), "continent North") {
		t.Fatalf("expected continent connectivity error, got %v", err)
	}
}

func TestValidate_DanglingAdjacency(t *testing.T) {
	m := lineMap()
	m.Territories["A"].Adjacent = append(m.Territories["A"].Adjacent, "Ghost")
	if m.Validate() {
		t.Error("dangling adjacency should make the map invalid")
	}
}

func TestValidate_IsRepeatable(t *testing.T) {
	m := twoContinentMap()
	for i := 0; i < 3; i++ {
		if !m.Validate() {
			t.Fatalf("call %d: expected valid", i)
		}
	}
	m.Disconnect("N2", "S1")
	if m.Validate() {
		t.Fatal("expected invalid after removing the bridge")
	}
	m.Connect("N2", "S1")
	if !m.Validate() {
		t.Fatal("expected valid after restoring the bridge")
	}
}

func TestContinentOwnedBy(t *testing.T) {
	m := twoContinentMap()
	m.Territories["N1"].Owner = "p"
	if m.ContinentOwnedBy("North", "p") {
		t.Error("North is only half owned")
	}
	m.Territories["N2"].Owner = "p"
	if !m.ContinentOwnedBy("North", "p") {
		t.Error("North should be owned by p")
	}
	if m.ContinentOwnedBy("Nowhere", "p") {
		t.Error("unknown continent cannot be owned")
	}
}

func TestNeighbours(t *testing.T) {
	m := lineMap()
	ns := m.Neighbours("B")
	if len(ns) != 2 {
		t.Fatalf("expected 2 neighbours of B, got %d", len(ns))
	}
	if m.Neighbours("Nope") != nil {
		t.Error("unknown territory should have no neighbours")
	}
}
