package flamingarrows

import (
	"strings"
)

// Material identifies an item or block type known to the add-on.
// The known members are fixed; materials reported by the host beyond those
// are appended to a Catalog at startup and receive ids after lastKnown.
type Material uint16

const (
	MaterialAir Material = iota
	MaterialFire
	MaterialBow
	MaterialArrow
	MaterialFlintAndSteel
	MaterialPorkchop
	MaterialCookedPorkchop

	lastKnown = MaterialCookedPorkchop

	// MaterialUnknown is returned for names that are not in a catalog.
	MaterialUnknown Material = 1<<16 - 1
)

var knownMaterials = [...]string{
	MaterialAir:            "air",
	MaterialFire:           "fire",
	MaterialBow:            "bow",
	MaterialArrow:          "arrow",
	MaterialFlintAndSteel:  "flint_and_steel",
	MaterialPorkchop:       "porkchop",
	MaterialCookedPorkchop: "cooked_porkchop",
}

// Catalog is the ordered set of materials the host reported at startup.
// It is immutable once built and safe for concurrent use.
type Catalog struct {
	names []string
	ids   map[string]Material
}

// NewCatalog builds a catalog from host item names. Names may carry a namespace
// ("minecraft:bow"); it is stripped and the rest lowercased. The known materials
// are always present and always come first, in declaration order.
func NewCatalog(hostNames ...string) *Catalog {
	c := &Catalog{
		names: make([]string, 0, len(knownMaterials)+len(hostNames)),
		ids:   make(map[string]Material, len(knownMaterials)+len(hostNames)),
	}
	for _, n := range knownMaterials {
		c.add(n)
	}
	for _, n := range hostNames {
		c.add(canonicalName(n))
	}
	return c
}

// DefaultCatalog returns a catalog holding only the known materials.
func DefaultCatalog() *Catalog {
	return NewCatalog()
}

func (c *Catalog) add(name string) {
	if name == "" {
		return
	}
	if _, ok := c.ids[name]; ok {
		return
	}
	if len(c.names) >= int(MaterialUnknown) {
		return
	}
	c.ids[name] = Material(len(c.names))
	c.names = append(c.names, name)
}

// Len returns the number of materials in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Name returns the canonical name of m, or "" if m is not in the catalog.
func (c *Catalog) Name(m Material) string {
	if int(m) >= len(c.names) {
		return ""
	}
	return c.names[m]
}

// Resolve returns the material with exactly the given canonical or namespaced name.
func (c *Catalog) Resolve(name string) (Material, bool) {
	m, ok := c.ids[canonicalName(name)]
	if !ok {
		return MaterialUnknown, false
	}
	return m, true
}

// Lookup matches a user supplied name against the catalog. The name is trimmed
// and lowercased, then compared to every canonical name as is, with underscores
// removed, with underscores replaced by hyphens and with underscores replaced by
// spaces. The first material in catalog order that matches wins.
func (c *Catalog) Lookup(name string) (Material, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return MaterialUnknown, false
	}
	for i, n := range c.names {
		if n == name ||
			strings.ReplaceAll(n, "_", "") == name ||
			strings.ReplaceAll(n, "_", "-") == name ||
			strings.ReplaceAll(n, "_", " ") == name {
			return Material(i), true
		}
	}
	return MaterialUnknown, false
}

// canonicalName strips an optional namespace and lowercases the remainder.
func canonicalName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// EntityKind classifies the entities the add-on reacts to.
type EntityKind uint8

const (
	KindOther EntityKind = iota
	KindPlayer
	KindPig
	KindArrow
)

// Living reports whether entities of this kind can be set on fire by a strike.
func (k EntityKind) Living() bool {
	return k == KindPlayer || k == KindPig
}

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPig:
		return "pig"
	case KindArrow:
		return "arrow"
	default:
		return "other"
	}
}

// DamageCause classifies the source of a damage event.
type DamageCause uint8

const (
	CauseOther DamageCause = iota
	CauseProjectile
	CauseFire
	CauseFireTick
	CauseLava
)

// Burning reports whether the cause is ambient fire or lava.
func (c DamageCause) Burning() bool {
	return c == CauseFire || c == CauseFireTick || c == CauseLava
}
