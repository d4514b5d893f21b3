package flamingarrows

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRegistryToggle(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()

	assert.False(t, r.Enabled(id))
	assert.True(t, r.Toggle(id))
	assert.True(t, r.Enabled(id))
	assert.False(t, r.Toggle(id))
	assert.False(t, r.Enabled(id))
	assert.Zero(t, r.Len())
}

func TestRegistryToggleIf(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()

	enabled, changed := r.ToggleIf(id, func() bool { return false })
	assert.False(t, enabled)
	assert.False(t, changed)
	assert.False(t, r.Enabled(id))

	enabled, changed = r.ToggleIf(id, func() bool { return true })
	assert.True(t, enabled)
	assert.True(t, changed)

	called := false
	enabled, changed = r.ToggleIf(id, func() bool { called = true; return true })
	assert.False(t, enabled)
	assert.True(t, changed)
	assert.False(t, called, "disabling never asks for admission")
}

func TestRegistryRemoveIsIdempotent(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	r.Enable(id)

	assert.True(t, r.Remove(id))
	assert.False(t, r.Remove(id))
	assert.False(t, r.Enabled(id))
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	for range 5 {
		r.Enable(uuid.New())
	}
	assert.Equal(t, 5, r.Len())

	r.Clear()
	assert.Zero(t, r.Len())
}

func TestRegistryConcurrentToggle(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()

	// An even number of toggles must always leave the player disabled.
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Toggle(id)
		}()
	}
	wg.Wait()

	assert.False(t, r.Enabled(id))
	assert.Zero(t, r.Len())
}
