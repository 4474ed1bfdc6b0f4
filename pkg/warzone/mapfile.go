package warzone

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadMapFile opens and parses a conquest-style .map file.
func LoadMapFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mapErrorf("open %s: %v", path, err)
	}
	defer f.Close()

	m, err := ParseMap(f)
	if err != nil {
		return nil, err
	}
	m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return m, nil
}

type rawTerritory struct {
	line      int
	name      string
	continent string
	x, y      int
	adjacent  []string
}

// ParseMap reads the [Map], [Continents] and [Territories] sections.
// Adjacency names are resolved once the whole file is read, so territories
// may refer to ones declared later.
func ParseMap(r io.Reader) (*Map, error) {
	m := NewMap("")
	seen := make(map[string]bool)
	var territories []rawTerritory

	section := ""
	lineNo := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(strings.Trim(line, "[]"))
			seen[section] = true
			continue
		}

		switch section {
		case "map":
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				return nil, mapErrorf("line %d: expected key=value in [Map]", lineNo)
			}
			if strings.EqualFold(strings.TrimSpace(key), "image") {
				m.Image = strings.TrimSpace(value)
			}
		case "continents":
			name, value, ok := strings.Cut(line, "=")
			if !ok {
				return nil, mapErrorf("line %d: expected Name=bonus in [Continents]", lineNo)
			}
			bonusStr, color, _ := strings.Cut(value, ",")
			bonus, err := strconv.Atoi(strings.TrimSpace(bonusStr))
			if err != nil || bonus < 0 {
				return nil, mapErrorf("line %d: bad bonus %q for continent %s", lineNo, bonusStr, name)
			}
			c := m.AddContinent(strings.TrimSpace(name), bonus)
			c.Color = strings.TrimSpace(color)
		case "territories":
			fields := strings.Split(line, ",")
			if len(fields) < 4 {
				return nil, mapErrorf("line %d: expected Name,x,y,Continent,...", lineNo)
			}
			for i := range fields {
				fields[i] = strings.TrimSpace(fields[i])
			}
			x, errX := strconv.Atoi(fields[1])
			y, errY := strconv.Atoi(fields[2])
			if errX != nil || errY != nil {
				return nil, mapErrorf("line %d: bad coordinates for %s", lineNo, fields[0])
			}
			territories = append(territories, rawTerritory{
				line:      lineNo,
				name:      fields[0],
				x:         x,
				y:         y,
				continent: fields[3],
				adjacent:  fields[4:],
			})
		default:
			return nil, mapErrorf("line %d: content outside a known section", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, mapErrorf("read: %v", err)
	}

	for _, s := range []string{"map", "continents", "territories"} {
		if !seen[s] {
			return nil, mapErrorf("missing [%s] section", s)
		}
	}

	for _, rt := range territories {
		if _, dup := m.Territories[rt.name]; dup {
			return nil, mapErrorf("line %d: duplicate territory %s", rt.line, rt.name)
		}
		if m.Continents[rt.continent] == nil {
			return nil, mapErrorf("line %d: territory %s names unknown continent %s", rt.line, rt.name, rt.continent)
		}
		t := m.AddTerritory(rt.name, rt.continent)
		t.X, t.Y = rt.x, rt.y
	}
	for _, rt := range territories {
		t := m.Territories[rt.name]
		for _, adj := range rt.adjacent {
			if adj == "" {
				continue
			}
			if m.Territories[adj] == nil {
				return nil, mapErrorf("line %d: %s is adjacent to unknown territory %s", rt.line, rt.name, adj)
			}
			t.Adjacent = append(t.Adjacent, adj)
		}
	}
	return m, nil
}

// String renders the map back into the file format, mostly for debugging.
func (m *Map) String() string {
	var b strings.Builder
	b.WriteString("[Map]\n")
	if m.Image != "" {
		fmt.Fprintf(&b, "image=%s\n", m.Image)
	}
	b.WriteString("\n[Continents]\n")
	for _, name := range m.continentOrder {
		c := m.Continents[name]
		if c.Color != "" {
			fmt.Fprintf(&b, "%s=%d,%s\n", c.Name, c.Bonus, c.Color)
		} else {
			fmt.Fprintf(&b, "%s=%d\n", c.Name, c.Bonus)
		}
	}
	b.WriteString("\n[Territories]\n")
	for _, name := range m.territoryOrder {
		t := m.Territories[name]
		fields := append([]string{t.Name, strconv.Itoa(t.X), strconv.Itoa(t.Y), t.Continent}, t.Adjacent...)
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return b.String()
}
