package flamingarrows

import (
	"errors"
	"sync"
	"time"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/block/cube/trace"
	"github.com/df-mc/dragonfly/server/entity"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/inventory"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/sound"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// tickDuration is the length of one game tick.
const tickDuration = time.Second / 20

// arrowSpeed is the launch speed of a flaming arrow in blocks per tick.
const arrowSpeed = 3.0

var errNoTransaction = errors.New("flamingarrows: player is not in a transaction")

// HostCatalog builds a catalog from every item registered with Dragonfly.
func HostCatalog() *Catalog {
	items := world.Items()
	names := make([]string, 0, len(items))
	for _, it := range items {
		name, _ := it.EncodeItem()
		names = append(names, name)
	}
	return NewCatalog(names...)
}

func ticksToDuration(ticks int) time.Duration {
	return time.Duration(ticks) * tickDuration
}

// durationToTicks rounds up so a fire with any time left counts as burning.
func durationToTicks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + tickDuration - 1) / tickDuration)
}

// flammable is implemented by Dragonfly entities that can burn.
type flammable interface {
	OnFireDuration() time.Duration
	SetOnFire(duration time.Duration)
}

// kindOf classifies a Dragonfly entity.
func kindOf(e world.Entity) EntityKind {
	if _, ok := e.(*player.Player); ok {
		return KindPlayer
	}
	switch canonicalName(e.H().Type().EncodeEntity()) {
	case "arrow":
		return KindArrow
	case "pig":
		return KindPig
	}
	return KindOther
}

// dfEntity adapts a Dragonfly entity to Entity.
type dfEntity struct {
	e    world.Entity
	kind EntityKind
}

// EntityOf wraps a Dragonfly entity. It must only be used inside the
// transaction the entity was obtained from.
func EntityOf(e world.Entity) Entity {
	return dfEntity{e: e, kind: kindOf(e)}
}

func (d dfEntity) UUID() uuid.UUID  { return d.e.H().UUID() }
func (d dfEntity) Kind() EntityKind { return d.kind }

func (d dfEntity) FireTicks() int {
	if f, ok := d.e.(flammable); ok {
		return durationToTicks(f.OnFireDuration())
	}
	return 0
}

func (d dfEntity) SetFireTicks(ticks int) {
	if f, ok := d.e.(flammable); ok {
		f.SetOnFire(ticksToDuration(ticks))
	}
}

// dfProjectile adapts a Dragonfly projectile and the entity that fired it.
type dfProjectile struct {
	dfEntity
	owner world.Entity
	m     *Manager
	// at overrides the position of the projectile when set.
	at *mgl64.Vec3
}

// ProjectileOf wraps a Dragonfly projectile fired by owner, which may be nil.
func (m *Manager) ProjectileOf(e, owner world.Entity) Projectile {
	return dfProjectile{dfEntity: dfEntity{e: e, kind: kindOf(e)}, owner: owner, m: m}
}

func (d dfProjectile) Position() mgl64.Vec3 {
	if d.at != nil {
		return *d.at
	}
	return d.e.Position()
}

func (d dfProjectile) Shooter() Entity {
	switch o := d.owner.(type) {
	case nil:
		return nil
	case *player.Player:
		return d.m.PlayerOf(o)
	default:
		return EntityOf(o)
	}
}

// ownerOf returns the entity that fired projectile e, or nil.
func ownerOf(e world.Entity, tx *world.Tx) world.Entity {
	ent, ok := e.(*entity.Ent)
	if !ok {
		return nil
	}
	b, ok := ent.Behaviour().(*entity.ProjectileBehaviour)
	if !ok {
		return nil
	}
	owner, _ := b.Owner().Entity(tx)
	return owner
}

// dfPlayer adapts a Dragonfly player to Player.
type dfPlayer struct {
	dfEntity
	p *player.Player
	m *Manager
}

// PlayerOf wraps a Dragonfly player. Arrows it shoots report their hits to m.
func (m *Manager) PlayerOf(p *player.Player) Player {
	return dfPlayer{dfEntity: dfEntity{e: p, kind: KindPlayer}, p: p, m: m}
}

func (d dfPlayer) UUID() uuid.UUID  { return d.p.UUID() }
func (d dfPlayer) Name() string     { return d.p.Name() }
func (d dfPlayer) Message(a ...any) { d.p.Message(a...) }

func (d dfPlayer) Inventory() Inventory {
	return dfInventory{inv: d.p.Inventory(), catalog: d.m.catalog}
}

func (d dfPlayer) CanShoot() error {
	if d.p.Tx() == nil {
		return errNoTransaction
	}
	return nil
}

// flamingArrowConf matches Dragonfly's arrows, except that flaming arrows
// break on blocks instead of sticking, so that every impact reaches Hit.
var flamingArrowConf = entity.ProjectileBehaviourConfig{
	Gravity:       0.05,
	Drag:          0.01,
	Damage:        2.0,
	Sound:         sound.ArrowHit{},
	DisablePickup: true,
}

// ShootArrow spawns an arrow from the player's eyes in the direction they look.
func (d dfPlayer) ShootArrow() (Projectile, error) {
	tx := d.p.Tx()
	if tx == nil {
		return nil, errNoTransaction
	}
	rot := d.p.Rotation()
	opts := world.EntitySpawnOpts{
		Position: entity.EyePosition(d.p),
		Velocity: rot.Vec3().Mul(arrowSpeed),
		Rotation: rot,
	}
	conf := flamingArrowConf
	conf.Owner = d.p.H()
	conf.Hit = d.m.arrowHit

	e := tx.AddEntity(opts.New(entity.ArrowType, conf))
	d.m.arrows.add(e.H().UUID())
	return d.m.ProjectileOf(e, d.p), nil
}

// dfInventory adapts a Dragonfly inventory. Wear is the durability used so
// far, capped at ChargeCapacity.
type dfInventory struct {
	inv     *inventory.Inventory
	catalog *Catalog
}

func (d dfInventory) Size() int { return d.inv.Size() }

func (d dfInventory) Slot(i int) Stack {
	st, err := d.inv.Item(i)
	if err != nil || st.Empty() {
		return Stack{}
	}
	return Stack{
		Material: materialOf(st, d.catalog),
		Count:    st.Count(),
		Wear:     wearOf(st),
	}
}

// SetSlot only changes count and wear of what is already in the slot, so
// enchantments and custom names survive.
func (d dfInventory) SetSlot(i int, s Stack) {
	if s.Empty() {
		_ = d.inv.SetItem(i, item.Stack{})
		return
	}
	cur, err := d.inv.Item(i)
	if err != nil || cur.Empty() {
		return
	}
	if delta := s.Count - cur.Count(); delta != 0 {
		cur = cur.Grow(delta)
	}
	if maxDur := cur.MaxDurability(); maxDur > 0 {
		cur = cur.WithDurability(maxDur - clamp(s.Wear, 0, maxDur))
	}
	_ = d.inv.SetItem(i, cur)
}

// Refresh is a no-op: Dragonfly sends slot updates to viewers on SetItem.
func (d dfInventory) Refresh() {}

func materialOf(st item.Stack, catalog *Catalog) Material {
	if st.Empty() {
		return MaterialAir
	}
	name, _ := st.Item().EncodeItem()
	m, _ := catalog.Resolve(name)
	return m
}

func wearOf(st item.Stack) int {
	maxDur := st.MaxDurability()
	if maxDur <= 0 {
		return 0
	}
	return clamp(maxDur-st.Durability(), 0, ChargeCapacity)
}

// dfSurface adapts the blocks of a world transaction.
type dfSurface struct {
	tx *world.Tx
}

// SurfaceOf wraps a world transaction.
func SurfaceOf(tx *world.Tx) Surface {
	return dfSurface{tx: tx}
}

func (s dfSurface) Open(pos mgl64.Vec3) bool {
	_, ok := s.tx.Block(cube.PosFromVec3(pos)).(block.Air)
	return ok
}

func (s dfSurface) Ignite(pos mgl64.Vec3) {
	s.tx.SetBlock(cube.PosFromVec3(pos), block.Fire{}, nil)
}

// arrowHit is the Hit callback of arrows fired by ShootArrow. Dragonfly calls
// it after its own hit behaviour, which sets struck targets on fire for five
// seconds regardless of the settings.
func (m *Manager) arrowHit(e *entity.Ent, tx *world.Tx, target trace.Result) {
	st, tracked := m.arrows.take(e.H().UUID())
	owner := ownerOf(e, tx)

	switch r := target.(type) {
	case trace.EntityResult:
		arrow := m.ProjectileOf(e, owner)
		p, ok := r.Entity().(*player.Player)
		if !ok {
			m.engine.HandleDamage(DamageEvent{Target: EntityOf(r.Entity()), Cause: CauseProjectile, Projectile: arrow})
			return
		}
		// Only strikes that went through the player's Handler are applied.
		// Their fire is first put back to what it was before the hit.
		if !tracked || !st.hurt || st.target != p.UUID() {
			return
		}
		struck := m.PlayerOf(p)
		struck.SetFireTicks(st.fireTicks)
		m.engine.HandleDamage(DamageEvent{Target: struck, Cause: CauseProjectile, Projectile: arrow})
	case trace.BlockResult:
		pos := r.BlockPosition().Side(r.Face()).Vec3Centre()
		m.HandleProjectileHit(tx, e, owner, pos)
	}
}

// HandleProjectileHit forwards a projectile that landed at pos to the
// combustion engine.
func (m *Manager) HandleProjectileHit(tx *world.Tx, projectile, owner world.Entity, pos mgl64.Vec3) {
	p := dfProjectile{dfEntity: dfEntity{e: projectile, kind: kindOf(projectile)}, owner: owner, m: m, at: &pos}
	m.engine.HandleLanded(p, SurfaceOf(tx))
}

// HandleProjectileRemoved forwards the removal of a projectile.
func (m *Manager) HandleProjectileRemoved(tx *world.Tx, projectile world.Entity) {
	m.arrows.forget(projectile.H().UUID())
	m.engine.HandleProjectileDeath(m.ProjectileOf(projectile, ownerOf(projectile, tx)))
}

// HandleEntityHurt forwards damage dealt to a non-player entity.
func (m *Manager) HandleEntityHurt(e world.Entity, src world.DamageSource) {
	m.engine.HandleDamage(m.damageEvent(EntityOf(e), src))
}

// HandleEntityDeath cooks the drops of a burning entity and returns them.
// Drops that are rewritten keep their count.
func (m *Manager) HandleEntityDeath(e world.Entity, drops []item.Stack) []item.Stack {
	stacks := make([]Stack, len(drops))
	for i, st := range drops {
		stacks[i] = Stack{Material: materialOf(st, m.catalog), Count: st.Count()}
	}
	if m.engine.HandleDeath(DeathEvent{Entity: EntityOf(e), Drops: stacks}) == 0 {
		return drops
	}

	out := make([]item.Stack, len(drops))
	for i, st := range drops {
		out[i] = st
		if stacks[i].Material == materialOf(st, m.catalog) {
			continue
		}
		if it, ok := world.ItemByName("minecraft:"+m.catalog.Name(stacks[i].Material), 0); ok {
			out[i] = item.NewStack(it, st.Count())
		}
	}
	return out
}

// damageEvent classifies a Dragonfly damage source.
func (m *Manager) damageEvent(target Entity, src world.DamageSource) DamageEvent {
	ev := DamageEvent{Target: target}
	switch s := src.(type) {
	case entity.ProjectileDamageSource:
		ev.Cause = CauseProjectile
		if s.Projectile != nil {
			ev.Projectile = m.ProjectileOf(s.Projectile, s.Owner)
		}
	case block.FireDamageSource:
		ev.Cause = CauseFire
	case block.LavaDamageSource:
		ev.Cause = CauseLava
	}
	return ev
}

// flamingArrows tracks the arrows fired by ShootArrow. Between the hurt and
// hit callbacks of a strike on a player it also holds how long that player
// burned before the hit.
type flamingArrows struct {
	mu    sync.Mutex
	fired map[uuid.UUID]arrowStrike
}

type arrowStrike struct {
	target    uuid.UUID
	fireTicks int
	hurt      bool
}

func newFlamingArrows() *flamingArrows {
	return &flamingArrows{fired: make(map[uuid.UUID]arrowStrike)}
}

func (f *flamingArrows) add(arrow uuid.UUID) {
	f.mu.Lock()
	f.fired[arrow] = arrowStrike{}
	f.mu.Unlock()
}

// hurt records the fire of a player hurt by the arrow and reports whether the
// arrow is tracked.
func (f *flamingArrows) hurt(arrow, target uuid.UUID, fireTicks int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.fired[arrow]; !ok {
		return false
	}
	f.fired[arrow] = arrowStrike{target: target, fireTicks: fireTicks, hurt: true}
	return true
}

// take removes the arrow and returns its strike.
func (f *flamingArrows) take(arrow uuid.UUID) (arrowStrike, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st, ok := f.fired[arrow]
	delete(f.fired, arrow)
	return st, ok
}

func (f *flamingArrows) forget(arrow uuid.UUID) {
	f.mu.Lock()
	delete(f.fired, arrow)
	f.mu.Unlock()
}

func (f *flamingArrows) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fired)
}

func (f *flamingArrows) clear() {
	f.mu.Lock()
	clear(f.fired)
	f.mu.Unlock()
}
