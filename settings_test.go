package flamingarrows

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultDisabledMessage, s.DisabledMessage)
	assert.Equal(t, DefaultEnabledMessage, s.EnabledMessage)
	assert.Equal(t, DefaultRanOutMessage, s.RanOutMessage)
	assert.Equal(t, 5, s.FlintAndSteelCost)
	assert.Equal(t, 600, s.NonPlayerFireTicks)
	assert.Equal(t, 0, s.PlayerFireTicks)
	assert.Equal(t, []string{"*"}, s.Whitelist)
	assert.Empty(t, s.Operators)
	assert.Equal(t, MaterialBow, s.Wand)
}

func TestLoadSettingsClampsNumbers(t *testing.T) {
	cases := []struct {
		name  string
		raw   int
		ticks int
		cost  int
	}{
		{"negative", -1, 0, 0},
		{"very negative", math.MinInt, 0, 0},
		{"zero", 0, 0, 0},
		{"in range", 40, 40, 40},
		{"cost bound", 64, 64, 64},
		{"above cost bound", 65, 65, 64},
		{"tick bound", 600, 600, 64},
		{"above tick bound", 601, 600, 64},
		{"huge", math.MaxInt, 600, 64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := LoadSettings(mapStore{
				keyFlintAndSteelCost:  tc.raw,
				keyPlayerFireTicks:    tc.raw,
				keyNonPlayerFireTicks: tc.raw,
			}, nil)

			assert.Equal(t, tc.cost, s.FlintAndSteelCost)
			assert.Equal(t, tc.ticks, s.PlayerFireTicks)
			assert.Equal(t, tc.ticks, s.NonPlayerFireTicks)
			assert.GreaterOrEqual(t, s.PlayerFireTicks, 0)
			assert.LessOrEqual(t, s.PlayerFireTicks, MaxFireTicks)
			assert.GreaterOrEqual(t, s.FlintAndSteelCost, 0)
			assert.LessOrEqual(t, s.FlintAndSteelCost, MaxFlintAndSteel)
		})
	}
}

func TestLoadSettingsLegacyFallback(t *testing.T) {
	t.Run("legacy ticks without players", func(t *testing.T) {
		s := LoadSettings(mapStore{keyLegacyFireTicks: 200}, nil)
		assert.Equal(t, 200, s.NonPlayerFireTicks)
		assert.Equal(t, 0, s.PlayerFireTicks)
	})

	t.Run("legacy ticks with players", func(t *testing.T) {
		s := LoadSettings(mapStore{
			keyLegacyFireTicks:     200,
			keyLegacyIgnitePlayers: true,
		}, nil)
		assert.Equal(t, 200, s.NonPlayerFireTicks)
		assert.Equal(t, 200, s.PlayerFireTicks)
	})

	t.Run("new keys win", func(t *testing.T) {
		s := LoadSettings(mapStore{
			keyLegacyFireTicks:     200,
			keyLegacyIgnitePlayers: true,
			keyNonPlayerFireTicks:  80,
			keyPlayerFireTicks:     20,
		}, nil)
		assert.Equal(t, 80, s.NonPlayerFireTicks)
		assert.Equal(t, 20, s.PlayerFireTicks)
	})

	t.Run("legacy value is clamped", func(t *testing.T) {
		s := LoadSettings(mapStore{
			keyLegacyFireTicks:     5000,
			keyLegacyIgnitePlayers: true,
		}, nil)
		assert.Equal(t, MaxFireTicks, s.NonPlayerFireTicks)
		assert.Equal(t, MaxFireTicks, s.PlayerFireTicks)
	})
}

func TestLoadSettingsNormalizesWhitelist(t *testing.T) {
	s := LoadSettings(mapStore{
		keyWhitelist: []string{"  Steve ", "ALEX", "notch"},
	}, nil)

	require.Equal(t, []string{"steve", "alex", "notch"}, s.Whitelist)
	assert.True(t, s.Whitelisted("steve"))
	assert.True(t, s.Whitelisted("Alex"))
	assert.False(t, s.Whitelisted("herobrine"))
}

func TestWhitelistWildcard(t *testing.T) {
	s := LoadSettings(mapStore{keyWhitelist: []string{" * "}}, nil)
	assert.True(t, s.Whitelisted("anyone"))

	s = LoadSettings(mapStore{keyWhitelist: []string{}}, nil)
	assert.False(t, s.Whitelisted("anyone"))
}

func TestLoadSettingsOperators(t *testing.T) {
	s := LoadSettings(mapStore{keyOperators: []string{" Notch "}}, nil)

	require.Equal(t, []string{"notch"}, s.Operators)
	assert.True(t, s.Operator("NOTCH"))
	assert.False(t, s.Operator("steve"))
	assert.True(t, s.Whitelisted("steve"), "operators do not narrow the whitelist")

	s = LoadSettings(mapStore{keyOperators: []string{"*"}}, nil)
	assert.True(t, s.Operator("anyone"))
}

func TestLoadSettingsWand(t *testing.T) {
	cases := []struct {
		raw  string
		want Material
	}{
		{"flint_and_steel", MaterialFlintAndSteel},
		{"flint-and-steel", MaterialFlintAndSteel},
		{"flint and steel", MaterialFlintAndSteel},
		{"flintandsteel", MaterialFlintAndSteel},
		{"  FLINT_AND_STEEL ", MaterialFlintAndSteel},
		{"Flint And Steel", MaterialFlintAndSteel},
		{"bow", MaterialBow},
		{"BOW", MaterialBow},
		{"no such thing", MaterialBow},
		{"", MaterialBow},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			s := LoadSettings(mapStore{keyWand: tc.raw}, nil)
			assert.Equal(t, tc.want, s.Wand)
		})
	}
}

func TestLoadSettingsWandFromHostCatalog(t *testing.T) {
	catalog := NewCatalog("minecraft:stick", "minecraft:blaze_rod")
	s := LoadSettings(mapStore{keyWand: "Blaze Rod"}, catalog)

	want, ok := catalog.Resolve("blaze_rod")
	require.True(t, ok)
	assert.Equal(t, want, s.Wand)
}

func TestLoadSettingsMessages(t *testing.T) {
	s := LoadSettings(mapStore{
		keyEnabledMessage:  "on",
		keyDisabledMessage: "off",
		keyRanOutMessage:   "empty",
	}, nil)

	assert.Equal(t, "on", s.EnabledMessage)
	assert.Equal(t, "off", s.DisabledMessage)
	assert.Equal(t, "empty", s.RanOutMessage)
}

func TestFireTicksFor(t *testing.T) {
	s := &Settings{PlayerFireTicks: 20, NonPlayerFireTicks: 300}

	assert.Equal(t, 20, s.FireTicksFor(KindPlayer))
	assert.Equal(t, 300, s.FireTicksFor(KindPig))
	assert.Equal(t, 300, s.FireTicksFor(KindOther))
}
