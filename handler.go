package flamingarrows

import (
	"time"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/entity"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Handler implements player.Handler and feeds player input into the
// dispatcher and combustion engine of a Manager.
//
// Concurrency:
// Handlers are executed synchronously by Dragonfly within the world's
// transaction, so every call for one player is serialized. Registry and engine
// state is shared between worlds and guarded by their own locks.
type Handler struct {
	player.NopHandler
	manager *Manager
}

// NewHandler creates a new player.Handler bound to the manager.
//
//	for p := range srv.Accept() {
//	    p.Handle(flamingarrows.NewHandler(mngr))
//	}
func NewHandler(m *Manager) *Handler {
	return &Handler{manager: m}
}

// Manager returns the manager this handler feeds.
func (h *Handler) Manager() *Manager {
	return h.manager
}

// Compile-time check that Handler implements player.Handler.
var _ player.Handler = (*Handler)(nil)

// primaryUse handles a left click with whatever the player holds.
func (h *Handler) primaryUse(ctx *player.Context) {
	p := ctx.Val()
	held, _ := p.HeldItems()
	if h.manager.dispatcher.HandlePrimaryUse(h.player(p), h.stack(held)) == Handled {
		ctx.Cancel()
	}
}

// secondaryUse handles a right click with whatever the player holds.
func (h *Handler) secondaryUse(ctx *player.Context) {
	p := ctx.Val()
	held, _ := p.HeldItems()
	if h.manager.dispatcher.HandleSecondaryUse(h.player(p), h.stack(held)) == Handled {
		ctx.Cancel()
	}
}

// HandlePunchAir handles a left click into the air.
func (h *Handler) HandlePunchAir(ctx *player.Context) {
	h.primaryUse(ctx)
}

// HandleStartBreak handles a left click on a block.
func (h *Handler) HandleStartBreak(ctx *player.Context, _ cube.Pos) {
	h.primaryUse(ctx)
}

// HandleItemUse handles a right click into the air.
func (h *Handler) HandleItemUse(ctx *player.Context) {
	h.secondaryUse(ctx)
}

// HandleItemUseOnBlock handles a right click on a block.
func (h *Handler) HandleItemUseOnBlock(ctx *player.Context, _ cube.Pos, _ cube.Face, _ mgl64.Vec3) {
	h.secondaryUse(ctx)
}

// HandleHurt applies fire damage to the player. Strikes of arrows fired by
// the add-on are applied from the arrow's Hit callback instead, which runs
// after Dragonfly set the player on fire itself; the fire the player had
// before is recorded here for it.
func (h *Handler) HandleHurt(ctx *player.Context, _ *float64, immune bool, _ *time.Duration, src world.DamageSource) {
	if ctx.Cancelled() {
		return
	}
	p := ctx.Val()
	if s, ok := src.(entity.ProjectileDamageSource); ok && s.Projectile != nil {
		if h.manager.arrows.hurt(s.Projectile.H().UUID(), p.UUID(), durationToTicks(p.OnFireDuration())) {
			return
		}
	}
	if immune {
		return
	}
	h.manager.engine.HandleDamage(h.manager.damageEvent(h.player(p), src))
}

// HandleQuit removes the player from ignition mode.
func (h *Handler) HandleQuit(p *player.Player) {
	h.manager.dispatcher.HandleQuit(h.player(p))
}

func (h *Handler) player(p *player.Player) Player {
	return h.manager.PlayerOf(p)
}

func (h *Handler) stack(st item.Stack) Stack {
	if st.Empty() {
		return Stack{}
	}
	return Stack{Material: materialOf(st, h.manager.catalog), Count: st.Count(), Wear: wearOf(st)}
}

// handlerOf extracts the Handler from a player.
// Returns nil if the player is not handled by this add-on.
func handlerOf(p *player.Player) *Handler {
	h, ok := p.Handler().(*Handler)
	if !ok {
		return nil
	}
	return h
}

// WorldHandler implements world.Handler and reports arrows fired by the
// add-on that despawn, so their shooter learns when one burned out.
type WorldHandler struct {
	world.NopHandler
	manager *Manager
}

// NewWorldHandler creates a new world.Handler bound to the manager.
//
//	srv.World().Handle(flamingarrows.NewWorldHandler(mngr))
func NewWorldHandler(m *Manager) *WorldHandler {
	return &WorldHandler{manager: m}
}

// Compile-time check that WorldHandler implements world.Handler.
var _ world.Handler = (*WorldHandler)(nil)

// HandleEntityDespawn forwards despawned arrows to the combustion engine.
func (h *WorldHandler) HandleEntityDespawn(tx *world.Tx, e world.Entity) {
	if kindOf(e) != KindArrow {
		return
	}
	h.manager.HandleProjectileRemoved(tx, e)
}
