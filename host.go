package flamingarrows

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Entity is the view of a host entity the combustion engine works with.
// Fire durations are expressed in game ticks (20 per second).
type Entity interface {
	UUID() uuid.UUID
	Kind() EntityKind
	FireTicks() int
	SetFireTicks(ticks int)
}

// Projectile is an entity fired by a shooter.
type Projectile interface {
	Entity
	// Shooter returns the entity that fired the projectile, or nil.
	Shooter() Entity
	// Position returns the current position of the projectile.
	Position() mgl64.Vec3
}

// Player is a connected player as seen by the dispatcher.
type Player interface {
	Entity
	Name() string
	// Message sends a chat message to the player. It is fire-and-forget.
	Message(a ...any)
	Inventory() Inventory
	// CanShoot returns a non-nil error if ShootArrow would fail for a reason
	// known up front.
	CanShoot() error
	// ShootArrow performs the default bow action and returns the fired arrow.
	ShootArrow() (Projectile, error)
}

// Inventory is a player's live inventory. Slots that hold nothing return an
// empty Stack. Writes take effect on the live inventory; Refresh pushes the
// resulting state to the client view.
type Inventory interface {
	Size() int
	Slot(i int) Stack
	SetSlot(i int, s Stack)
	Refresh()
}

// Surface is the block space a projectile landed in.
type Surface interface {
	// Open reports whether the block at pos is open space.
	Open(pos mgl64.Vec3) bool
	// Ignite turns the block at pos into a persistent fire.
	Ignite(pos mgl64.Vec3)
}

// Stack is a snapshot of one inventory slot.
type Stack struct {
	Material Material
	Count    int
	// Wear is the used capacity of the first item of the stack.
	Wear int
}

// Empty reports whether the stack holds nothing.
func (s Stack) Empty() bool {
	return s.Count <= 0
}

// Outcome tells the host what to do with its own reaction to an input.
type Outcome uint8

const (
	// Ignored leaves the host's default reaction alone.
	Ignored Outcome = iota
	// Handled means the input was consumed and the default reaction must be suppressed.
	Handled
)

// DamageEvent describes an entity taking damage.
type DamageEvent struct {
	Target Entity
	Cause  DamageCause
	// Projectile is set when Cause is CauseProjectile.
	Projectile Projectile
}

// DeathEvent describes an entity dying. Drops may be rewritten in place.
type DeathEvent struct {
	Entity Entity
	Drops  []Stack
}
