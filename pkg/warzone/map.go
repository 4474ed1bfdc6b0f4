package warzone

import "slices"

// Territory is a single ownable node of the map graph.
type Territory struct {
	Name      string
	Continent string
	X, Y      int
	Armies    int
	Owner     string   // player name, "" if unowned
	Adjacent  []string // names of adjacent territories
}

// Continent is a named group of territories granting a bonus to a sole owner.
type Continent struct {
	Name        string
	Bonus       int
	Color       string
	Territories []string
}

// Map holds the territory graph and the continents that partition it.
// The map owns every Territory and Continent; everything else refers to
// them by name.
type Map struct {
	Name        string
	Image       string
	Territories map[string]*Territory
	Continents  map[string]*Continent

	territoryOrder []string
	continentOrder []string
}

// NewMap returns an empty map.
func NewMap(name string) *Map {
	return &Map{
		Name:        name,
		Territories: make(map[string]*Territory),
		Continents:  make(map[string]*Continent),
	}
}

// AddContinent registers a continent. An existing continent with the same
// name is replaced.
func (m *Map) AddContinent(name string, bonus int) *Continent {
	c := &Continent{Name: name, Bonus: bonus}
	if _, ok := m.Continents[name]; !ok {
		m.continentOrder = append(m.continentOrder, name)
	}
	m.Continents[name] = c
	return c
}

// AddTerritory registers a territory and records it as a member of its
// continent when that continent exists.
func (m *Map) AddTerritory(name, continent string) *Territory {
	t := &Territory{Name: name, Continent: continent}
	if _, ok := m.Territories[name]; !ok {
		m.territoryOrder = append(m.territoryOrder, name)
	}
	m.Territories[name] = t
	if c := m.Continents[continent]; c != nil && !slices.Contains(c.Territories, name) {
		c.Territories = append(c.Territories, name)
	}
	return t
}

// Connect adds a bidirectional edge between two territories.
func (m *Map) Connect(a, b string) {
	if ta := m.Territories[a]; ta != nil && !slices.Contains(ta.Adjacent, b) {
		ta.Adjacent = append(ta.Adjacent, b)
	}
	if tb := m.Territories[b]; tb != nil && !slices.Contains(tb.Adjacent, a) {
		tb.Adjacent = append(tb.Adjacent, a)
	}
}

// Disconnect removes the edge between two territories in both directions.
func (m *Map) Disconnect(a, b string) {
	if ta := m.Territories[a]; ta != nil {
		ta.Adjacent = slices.DeleteFunc(ta.Adjacent, func(n string) bool { return n == b })
	}
	if tb := m.Territories[b]; tb != nil {
		tb.Adjacent = slices.DeleteFunc(tb.Adjacent, func(n string) bool { return n == a })
	}
}

// Territory returns the named territory, or nil.
func (m *Map) Territory(name string) *Territory {
	return m.Territories[name]
}

// TerritoryNames returns territory names in load order.
func (m *Map) TerritoryNames() []string {
	return slices.Clone(m.territoryOrder)
}

// ContinentNames returns continent names in load order.
func (m *Map) ContinentNames() []string {
	return slices.Clone(m.continentOrder)
}

// Adjacent reports whether there is an edge from a to b.
func (m *Map) Adjacent(a, b string) bool {
	t := m.Territories[a]
	return t != nil && slices.Contains(t.Adjacent, b)
}

// Neighbours returns the territories adjacent to name, skipping
// unresolvable names.
func (m *Map) Neighbours(name string) []*Territory {
	t := m.Territories[name]
	if t == nil {
		return nil
	}
	result := make([]*Territory, 0, len(t.Adjacent))
	for _, n := range t.Adjacent {
		if adj := m.Territories[n]; adj != nil {
			result = append(result, adj)
		}
	}
	return result
}

// TerritoriesOf returns the territories owned by the given player, in load order.
func (m *Map) TerritoriesOf(owner string) []*Territory {
	var result []*Territory
	for _, name := range m.territoryOrder {
		if t := m.Territories[name]; t.Owner == owner {
			result = append(result, t)
		}
	}
	return result
}

// ContinentOwnedBy reports whether every member of the continent is owned
// by the given player. An empty continent is never owned.
func (m *Map) ContinentOwnedBy(continent, owner string) bool {
	c := m.Continents[continent]
	if c == nil || len(c.Territories) == 0 {
		return false
	}
	for _, name := range c.Territories {
		t := m.Territories[name]
		if t == nil || t.Owner != owner {
			return false
		}
	}
	return true
}

// TotalArmies returns the sum of armies over all territories.
func (m *Map) TotalArmies() int {
	total := 0
	for _, t := range m.Territories {
		total += t.Armies
	}
	return total
}
