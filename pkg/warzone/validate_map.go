package warzone

// Validate reports whether the map is playable: every territory belongs to
// exactly one continent, every continent is internally connected, and the
// whole graph is connected.
func (m *Map) Validate() bool {
	return m.Check() == nil
}

// Check is Validate with a reason. It returns a *MapError for the first
// problem found. Nothing is cached; every call walks the graph again.
func (m *Map) Check() error {
	if len(m.Territories) == 0 {
		return mapErrorf("map has no territories")
	}

	for _, name := range m.territoryOrder {
		for _, adj := range m.Territories[name].Adjacent {
			if m.Territories[adj] == nil {
				return mapErrorf("territory %s is adjacent to unknown territory %s", name, adj)
			}
		}
	}

	claimedBy := make(map[string]string, len(m.Territories))
	for _, cname := range m.continentOrder {
		for _, tname := range m.Continents[cname].Territories {
			if m.Territories[tname] == nil {
				return mapErrorf("continent %s lists unknown territory %s", cname, tname)
			}
			if prev, ok := claimedBy[tname]; ok && prev != cname {
				return mapErrorf("territory %s belongs to both %s and %s", tname, prev, cname)
			}
			claimedBy[tname] = cname
		}
	}
	for _, tname := range m.territoryOrder {
		if _, ok := claimedBy[tname]; !ok {
			return mapErrorf("territory %s belongs to no continent", tname)
		}
	}

	for _, cname := range m.continentOrder {
		members := m.Continents[cname].Territories
		if len(members) == 0 {
			continue
		}
		inside := make(map[string]bool, len(members))
		for _, tname := range members {
			inside[tname] = true
		}
		if visited := m.reachable(members[0], inside); len(visited) != len(inside) {
			return mapErrorf("continent %s is not connected", cname)
		}
	}

	if visited := m.reachable(m.territoryOrder[0], nil); len(visited) != len(m.Territories) {
		return mapErrorf("map is not connected (%d of %d territories reachable)", len(visited), len(m.Territories))
	}
	return nil
}

// reachable runs a breadth-first search from start. When within is non-nil
// only edges whose endpoints are both in within are followed.
func (m *Map) reachable(start string, within map[string]bool) map[string]bool {
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range m.Territories[current].Adjacent {
			if visited[next] || m.Territories[next] == nil {
				continue
			}
			if within != nil && !within[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return visited
}
