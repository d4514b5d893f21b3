package flamingarrows

import (
	"slices"
	"strings"
)

// Hard bounds applied to numeric settings after parsing.
const (
	MaxFireTicks        = 600
	MaxFlintAndSteel    = 64
	ProjectileFireTicks = 600
)

// Default messages sent to players.
const (
	DefaultDisabledMessage = "*Flaming Arrows* You are now firing normal arrows."
	DefaultEnabledMessage  = "*Flaming Arrows* You are now firing flaming arrows."
	DefaultRanOutMessage   = "*Flaming Arrows* You don't have enough Flint & Steel"
)

// Configuration keys.
const (
	keyDisabledMessage    = "flaming-arrows.messages.disabled"
	keyEnabledMessage     = "flaming-arrows.messages.enabled"
	keyRanOutMessage      = "flaming-arrows.messages.ran-out"
	keyFlintAndSteelCost  = "flaming-arrows.charges-required.flint-and-steel"
	keyNonPlayerFireTicks = "flaming-arrows.fire-ticks.non-player"
	keyPlayerFireTicks    = "flaming-arrows.fire-ticks.player"
	keyWhitelist          = "flaming-arrows.whitelist"
	keyOperators          = "flaming-arrows.operators"
	keyWand               = "flaming-arrows.wand"

	keyLegacyFireTicks     = "flaming-arrows.ignition.fire-ticks"
	keyLegacyIgnitePlayers = "flaming-arrows.ignition.ignite-players"
)

// ConfigStore is a read-only key/value view over a configuration document.
// Every accessor returns def when the key is missing or holds a value of the
// wrong shape.
type ConfigStore interface {
	String(key, def string) string
	Int(key string, def int) int
	Bool(key string, def bool) bool
	StringList(key string, def []string) []string
}

// Settings is the resolved configuration. It is never mutated after
// LoadSettings returns; a reload produces a new value.
type Settings struct {
	DisabledMessage string
	EnabledMessage  string
	RanOutMessage   string

	// FlintAndSteelCost is the number of charges consumed per flaming arrow.
	FlintAndSteelCost int
	// PlayerFireTicks is the burn duration applied to struck players.
	PlayerFireTicks int
	// NonPlayerFireTicks is the burn duration applied to other struck entities.
	NonPlayerFireTicks int

	// Whitelist holds trimmed, lowercase player names. "*" admits everyone.
	Whitelist []string
	// Operators may reload the configuration. Same format as Whitelist, but
	// empty by default.
	Operators []string
	// Wand is the item used to toggle ignition mode.
	Wand Material
}

// DefaultSettings returns the settings used when no configuration is present.
func DefaultSettings() *Settings {
	return LoadSettings(emptyStore{}, DefaultCatalog())
}

// LoadSettings resolves settings from store. It never fails: missing or
// malformed values fall back to defaults and numeric values are clamped.
func LoadSettings(store ConfigStore, catalog *Catalog) *Settings {
	if store == nil {
		store = emptyStore{}
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	// The legacy layout had one shared tick count and a flag for players. It
	// only provides defaults for the per-target fields.
	legacyTicks := store.Int(keyLegacyFireTicks, MaxFireTicks)
	legacyPlayerTicks := legacyTicks
	if !store.Bool(keyLegacyIgnitePlayers, false) {
		legacyPlayerTicks = 0
	}

	s := &Settings{
		DisabledMessage:    store.String(keyDisabledMessage, DefaultDisabledMessage),
		EnabledMessage:     store.String(keyEnabledMessage, DefaultEnabledMessage),
		RanOutMessage:      store.String(keyRanOutMessage, DefaultRanOutMessage),
		FlintAndSteelCost:  clamp(store.Int(keyFlintAndSteelCost, 5), 0, MaxFlintAndSteel),
		NonPlayerFireTicks: clamp(store.Int(keyNonPlayerFireTicks, legacyTicks), 0, MaxFireTicks),
		PlayerFireTicks:    clamp(store.Int(keyPlayerFireTicks, legacyPlayerTicks), 0, MaxFireTicks),
		Wand:               MaterialBow,
	}

	s.Whitelist = normalizeNames(store.StringList(keyWhitelist, []string{"*"}))
	s.Operators = normalizeNames(store.StringList(keyOperators, []string{}))

	if m, ok := catalog.Lookup(store.String(keyWand, "bow")); ok {
		s.Wand = m
	}
	return s
}

// Whitelisted reports whether the named player is on the whitelist.
func (s *Settings) Whitelisted(name string) bool {
	return listed(s.Whitelist, name)
}

// Operator reports whether the named player is an operator.
func (s *Settings) Operator(name string) bool {
	return listed(s.Operators, name)
}

func listed(names []string, name string) bool {
	return slices.Contains(names, "*") ||
		slices.Contains(names, strings.ToLower(strings.TrimSpace(name)))
}

func normalizeNames(list []string) []string {
	out := make([]string, 0, len(list))
	for _, name := range list {
		out = append(out, strings.ToLower(strings.TrimSpace(name)))
	}
	return out
}

// FireTicksFor returns the burn duration for a struck entity of the given kind.
func (s *Settings) FireTicksFor(k EntityKind) int {
	if k == KindPlayer {
		return s.PlayerFireTicks
	}
	return s.NonPlayerFireTicks
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// emptyStore answers every lookup with the default.
type emptyStore struct{}

func (emptyStore) String(_, def string) string                { return def }
func (emptyStore) Int(_ string, def int) int                  { return def }
func (emptyStore) Bool(_ string, def bool) bool               { return def }
func (emptyStore) StringList(_ string, def []string) []string { return def }
