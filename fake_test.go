package flamingarrows

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// fakeInventory is an in-memory Inventory.
type fakeInventory struct {
	slots     []Stack
	refreshes int
}

func newInventory(size int, stacks ...Stack) *fakeInventory {
	inv := &fakeInventory{slots: make([]Stack, size)}
	copy(inv.slots, stacks)
	return inv
}

func (f *fakeInventory) Size() int              { return len(f.slots) }
func (f *fakeInventory) Slot(i int) Stack       { return f.slots[i] }
func (f *fakeInventory) SetSlot(i int, s Stack) { f.slots[i] = s }
func (f *fakeInventory) Refresh()               { f.refreshes++ }

func (f *fakeInventory) count(m Material) int {
	n := 0
	for _, s := range f.slots {
		if s.Material == m {
			n += s.Count
		}
	}
	return n
}

// fakeEntity is an in-memory Entity.
type fakeEntity struct {
	id        uuid.UUID
	kind      EntityKind
	fireTicks int
}

func newEntity(kind EntityKind, fireTicks int) *fakeEntity {
	return &fakeEntity{id: uuid.New(), kind: kind, fireTicks: fireTicks}
}

func (f *fakeEntity) UUID() uuid.UUID        { return f.id }
func (f *fakeEntity) Kind() EntityKind       { return f.kind }
func (f *fakeEntity) FireTicks() int         { return f.fireTicks }
func (f *fakeEntity) SetFireTicks(ticks int) { f.fireTicks = ticks }

// fakeProjectile is an in-memory Projectile.
type fakeProjectile struct {
	fakeEntity
	shooter Entity
	pos     mgl64.Vec3
}

func newArrow(fireTicks int, shooter Entity) *fakeProjectile {
	return &fakeProjectile{
		fakeEntity: fakeEntity{id: uuid.New(), kind: KindArrow, fireTicks: fireTicks},
		shooter:    shooter,
		pos:        mgl64.Vec3{10, 64, -3},
	}
}

func (f *fakeProjectile) Shooter() Entity      { return f.shooter }
func (f *fakeProjectile) Position() mgl64.Vec3 { return f.pos }

// fakePlayer is an in-memory Player recording messages and shots.
type fakePlayer struct {
	fakeEntity
	name     string
	inv      *fakeInventory
	messages []string
	shots    []*fakeProjectile
	// blocked is returned by CanShoot, shootErr by ShootArrow.
	blocked  error
	shootErr error
}

func newPlayer(name string, inv *fakeInventory) *fakePlayer {
	return &fakePlayer{
		fakeEntity: fakeEntity{id: uuid.New(), kind: KindPlayer},
		name:       name,
		inv:        inv,
	}
}

func (f *fakePlayer) Name() string         { return f.name }
func (f *fakePlayer) Message(a ...any)     { f.messages = append(f.messages, fmt.Sprint(a...)) }
func (f *fakePlayer) Inventory() Inventory { return f.inv }

func (f *fakePlayer) CanShoot() error { return f.blocked }

func (f *fakePlayer) ShootArrow() (Projectile, error) {
	if f.shootErr != nil {
		return nil, f.shootErr
	}
	// Arrows leave the bow unlit.
	a := newArrow(0, f)
	f.shots = append(f.shots, a)
	return a, nil
}

func (f *fakePlayer) lastMessage() string {
	if len(f.messages) == 0 {
		return ""
	}
	return f.messages[len(f.messages)-1]
}

// fakeSurface records ignitions; every position is open unless solid is set.
type fakeSurface struct {
	solid   bool
	ignited []mgl64.Vec3
}

func (f *fakeSurface) Open(mgl64.Vec3) bool  { return !f.solid }
func (f *fakeSurface) Ignite(pos mgl64.Vec3) { f.ignited = append(f.ignited, pos) }

var errShoot = errors.New("no room to shoot")

// mapStore is a ConfigStore over a flat map of dotted keys.
type mapStore map[string]any

func (m mapStore) String(key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

func (m mapStore) Int(key string, def int) int {
	if v, ok := m[key].(int); ok {
		return v
	}
	return def
}

func (m mapStore) Bool(key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func (m mapStore) StringList(key string, def []string) []string {
	if v, ok := m[key].([]string); ok {
		return v
	}
	return def
}

func flint(count, wear int) Stack {
	return Stack{Material: MaterialFlintAndSteel, Count: count, Wear: wear}
}

func arrows(count int) Stack {
	return Stack{Material: MaterialArrow, Count: count}
}

func settingsFunc(s *Settings) func() *Settings {
	return func() *Settings { return s }
}
