package flamingarrows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogKnownMaterialsFirst(t *testing.T) {
	c := NewCatalog("minecraft:stick", "minecraft:bow", "MINECRAFT:Blaze_Rod")

	assert.Equal(t, int(lastKnown)+3, c.Len(), "duplicates are dropped")
	assert.Equal(t, "flint_and_steel", c.Name(MaterialFlintAndSteel))
	assert.Equal(t, "cooked_porkchop", c.Name(MaterialCookedPorkchop))

	m, ok := c.Resolve("minecraft:bow")
	require.True(t, ok)
	assert.Equal(t, MaterialBow, m)

	m, ok = c.Resolve("blaze_rod")
	require.True(t, ok)
	assert.Greater(t, int(m), int(lastKnown))
	assert.Equal(t, "blaze_rod", c.Name(m))
}

func TestCatalogResolveUnknown(t *testing.T) {
	c := DefaultCatalog()

	m, ok := c.Resolve("minecraft:diamond")
	assert.False(t, ok)
	assert.Equal(t, MaterialUnknown, m)
	assert.Empty(t, c.Name(MaterialUnknown))
}

func TestCatalogLookupSeparatorVariants(t *testing.T) {
	c := DefaultCatalog()
	want, ok := c.Lookup("flint_and_steel")
	require.True(t, ok)

	for _, name := range []string{
		"flint_and_steel",
		"FLINT_AND_STEEL",
		"flint-and-steel",
		"flint and steel",
		"flintandsteel",
		"  Flint-And-Steel\t",
	} {
		got, ok := c.Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok = c.Lookup("flint_and-steel")
	assert.False(t, ok, "mixed separators do not match")
}

func TestEntityKindLiving(t *testing.T) {
	assert.True(t, KindPlayer.Living())
	assert.True(t, KindPig.Living())
	assert.False(t, KindArrow.Living())
	assert.False(t, KindOther.Living())
}

func TestDamageCauseBurning(t *testing.T) {
	assert.True(t, CauseFire.Burning())
	assert.True(t, CauseFireTick.Burning())
	assert.True(t, CauseLava.Burning())
	assert.False(t, CauseProjectile.Burning())
	assert.False(t, CauseOther.Burning())
}
