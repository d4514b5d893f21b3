package flamingarrows

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Messages sent to shooters by the combustion engine.
const (
	burnedOutMessage  = "Your flaming arrow burned out!"
	solidBlockMessage = "Please report: a flaming arrow landed in a solid block"
)

// Engine reacts to damage, death and projectile events. It marks entities of
// the tracked species that burn because of fire so their drops can be cooked
// when they die.
type Engine struct {
	settings func() *Settings
	log      *slog.Logger

	// species is the entity kind whose drops are cooked.
	species EntityKind
	// cooked maps raw drops to their cooked equivalent.
	cooked map[Material]Material

	mu      sync.Mutex
	pending map[uuid.UUID]struct{}
}

// NewEngine creates an engine reading the current settings through settings.
func NewEngine(settings func() *Settings, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		settings: settings,
		log:      log,
		species:  KindPig,
		cooked:   map[Material]Material{MaterialPorkchop: MaterialCookedPorkchop},
		pending:  make(map[uuid.UUID]struct{}),
	}
}

// HandleDamage applies flaming arrow strikes and tracks burning entities of
// the tracked species.
//
// A strike by a burning projectile sets a living target on fire for the
// configured duration unless it already burns at least that long. Ambient fire
// and lava always mark the tracked species. Any other damage forgets a tracked
// entity that is no longer burning.
func (e *Engine) HandleDamage(ev DamageEvent) {
	target := ev.Target
	if target == nil {
		return
	}
	tracked := target.Kind() == e.species

	if ev.Cause == CauseProjectile && target.Kind().Living() {
		if ev.Projectile == nil || ev.Projectile.Kind() != KindArrow || ev.Projectile.FireTicks() <= 0 {
			if tracked && target.FireTicks() == 0 {
				e.forget(target.UUID())
			}
			return
		}

		ticks := e.settings().FireTicksFor(target.Kind())
		if ticks == 0 {
			return
		}
		if target.FireTicks() < ticks {
			target.SetFireTicks(ticks)
		}
		if tracked {
			e.mark(target.UUID())
		}
		return
	}

	if !tracked {
		return
	}
	if ev.Cause.Burning() {
		e.mark(target.UUID())
		return
	}
	if target.FireTicks() == 0 {
		e.forget(target.UUID())
	}
}

// HandleDeath cooks the drops of a tracked entity that died while burning and
// returns the number of stacks rewritten. The entity is forgotten either way.
func (e *Engine) HandleDeath(ev DeathEvent) int {
	if ev.Entity == nil || ev.Entity.Kind() != e.species {
		return 0
	}
	if !e.forget(ev.Entity.UUID()) {
		return 0
	}

	n := 0
	for i := range ev.Drops {
		if cooked, ok := e.cooked[ev.Drops[i].Material]; ok {
			ev.Drops[i].Material = cooked
			n++
		}
	}
	return n
}

// HandleProjectileDeath tells the shooter of a burning arrow that it is gone.
func (e *Engine) HandleProjectileDeath(p Projectile) {
	if p == nil || p.Kind() != KindArrow || p.FireTicks() <= 0 {
		return
	}
	if shooter, ok := p.Shooter().(Player); ok {
		shooter.Message(burnedOutMessage)
	}
}

// HandleLanded sets fire to the open space a burning arrow landed in. Landing
// inside a solid block is not expected; it is logged and reported to the
// shooter, but nothing is changed.
func (e *Engine) HandleLanded(p Projectile, surface Surface) {
	if p == nil || surface == nil || p.Kind() != KindArrow || p.FireTicks() <= 0 {
		return
	}
	pos := p.Position()
	if surface.Open(pos) {
		surface.Ignite(pos)
		return
	}

	e.log.Info("flamingarrows: flaming arrow landed in solid block",
		"arrow", p.UUID(),
		"pos", pos)
	if shooter, ok := p.Shooter().(Player); ok {
		shooter.Message(solidBlockMessage)
	}
}

// HandleExtinguish forgets a tracked entity whose fire went out.
func (e *Engine) HandleExtinguish(ent Entity) {
	if ent == nil || ent.Kind() != e.species {
		return
	}
	e.forget(ent.UUID())
}

// Pending reports whether the entity is tracked as burning.
func (e *Engine) Pending(id uuid.UUID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.pending[id]
	return ok
}

// PendingCount returns the number of tracked entities.
func (e *Engine) PendingCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

// Clear forgets every tracked entity.
func (e *Engine) Clear() {
	e.mu.Lock()
	clear(e.pending)
	e.mu.Unlock()
}

func (e *Engine) mark(id uuid.UUID) {
	e.mu.Lock()
	e.pending[id] = struct{}{}
	e.mu.Unlock()
}

// forget removes the entity and reports whether it was tracked.
func (e *Engine) forget(id uuid.UUID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.pending[id]
	delete(e.pending, id)
	return ok
}
