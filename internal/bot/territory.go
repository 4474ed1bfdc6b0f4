package bot

import (
	"slices"

	"github.com/freeeve/warzone/pkg/warzone"
)

// owned returns the player's territories in ownership order.
func owned(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	var out []*warzone.Territory
	for _, name := range p.Territories() {
		if t := m.Map.Territory(name); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// committedFrom sums the armies queued orders will move out of a territory.
func committedFrom(p *warzone.Player, name string) int {
	total := 0
	for _, o := range p.Orders.All() {
		if (o.Kind == warzone.OrderAdvance || o.Kind == warzone.OrderAirlift) && o.Source == name {
			total += o.Armies
		}
	}
	return total
}

// effectiveArmies is the army count a territory will hold once the
// player's queued deploys land and queued moves out of it leave.
func effectiveArmies(p *warzone.Player, t *warzone.Territory) int {
	return t.Armies + p.Orders.PendingDeploysTo(t.Name) - committedFrom(p, t.Name)
}

// byStrength returns owned territories sorted strongest first. Ties keep
// ownership order.
func byStrength(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	ts := owned(m, p)
	slices.SortStableFunc(ts, func(a, b *warzone.Territory) int {
		return effectiveArmies(p, b) - effectiveArmies(p, a)
	})
	return ts
}

// byWeakness returns owned territories sorted weakest first.
func byWeakness(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	ts := owned(m, p)
	slices.SortStableFunc(ts, func(a, b *warzone.Territory) int {
		return effectiveArmies(p, a) - effectiveArmies(p, b)
	})
	return ts
}

func strongest(m *warzone.Match, p *warzone.Player) *warzone.Territory {
	if ts := byStrength(m, p); len(ts) > 0 {
		return ts[0]
	}
	return nil
}

func weakest(m *warzone.Match, p *warzone.Player) *warzone.Territory {
	if ts := byWeakness(m, p); len(ts) > 0 {
		return ts[0]
	}
	return nil
}

// enemyNeighbours lists territories adjacent to name that p does not own.
func enemyNeighbours(m *warzone.Match, p *warzone.Player, name string) []*warzone.Territory {
	var out []*warzone.Territory
	for _, t := range m.Map.Neighbours(name) {
		if !p.Owns(t.Name) {
			out = append(out, t)
		}
	}
	return out
}

// frontier lists every territory p does not own that borders one it does,
// each once.
func frontier(m *warzone.Match, p *warzone.Player) []*warzone.Territory {
	seen := make(map[string]bool)
	var out []*warzone.Territory
	for _, name := range p.Territories() {
		for _, t := range enemyNeighbours(m, p, name) {
			if !seen[t.Name] {
				seen[t.Name] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// stepTowardEnemy walks p's own territories breadth-first from start and
// returns the neighbour of start that lies on a shortest path to a
// territory bordering an enemy. Empty when start already borders one or no
// such territory is reachable.
func stepTowardEnemy(m *warzone.Match, p *warzone.Player, start string) string {
	if len(enemyNeighbours(m, p, start)) > 0 {
		return ""
	}
	parent := map[string]string{start: ""}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur != start && len(enemyNeighbours(m, p, cur)) > 0 {
			for parent[cur] != start {
				cur = parent[cur]
			}
			return cur
		}
		for _, adj := range m.Map.Neighbours(cur) {
			if _, ok := parent[adj.Name]; ok || !p.Owns(adj.Name) {
				continue
			}
			parent[adj.Name] = cur
			queue = append(queue, adj.Name)
		}
	}
	return ""
}

// targeted reports whether a queued order already aims at the territory.
func targeted(p *warzone.Player, name string) bool {
	for _, o := range p.Orders.All() {
		if o.Target == name || (o.Source == name && o.Kind != warzone.OrderDeploy) {
			return true
		}
	}
	return false
}
