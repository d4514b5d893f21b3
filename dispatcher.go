package flamingarrows

import (
	"log/slog"
)

// Dispatcher turns player input into ignition state changes and flaming arrow
// shots. Each call is self-contained; all state lives in the Registry.
type Dispatcher struct {
	settings func() *Settings
	registry *Registry
	auth     Authorizer
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher. A nil authorizer denies everything.
func NewDispatcher(settings func() *Settings, registry *Registry, auth Authorizer, log *slog.Logger) *Dispatcher {
	if auth == nil {
		auth = AuthorizerFunc(func(Player, string) bool { return false })
	}
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		settings: settings,
		registry: registry,
		auth:     auth,
		log:      log,
	}
}

// HandlePrimaryUse toggles ignition mode when the player left-clicks with the
// wand. Enabling requires enough flint & steel charges for one shot; disabling
// always succeeds. Players without the ignite capability are ignored.
func (d *Dispatcher) HandlePrimaryUse(p Player, held Stack) Outcome {
	s := d.settings()
	if held.Empty() || held.Material != s.Wand {
		return Ignored
	}
	if !d.auth.HasCapability(p, CapabilityIgnite) {
		d.log.Debug("flamingarrows: ignite denied", "player", p.Name())
		return Ignored
	}

	enabled, changed := d.registry.ToggleIf(p.UUID(), func() bool {
		return AvailableCharges(p.Inventory()) >= s.FlintAndSteelCost
	})
	switch {
	case enabled:
		p.Message(s.EnabledMessage)
	case changed:
		p.Message(s.DisabledMessage)
	default:
		p.Message(s.RanOutMessage)
	}
	return Handled
}

// HandleSecondaryUse fires a flaming arrow when a player in ignition mode
// right-clicks with a bow and carries an arrow. If the player cannot pay for
// the shot, ignition mode is switched off and the bow does not fire at all.
// A player that cannot shoot is ignored before anything is spent.
func (d *Dispatcher) HandleSecondaryUse(p Player, held Stack) Outcome {
	if held.Empty() || held.Material != MaterialBow {
		return Ignored
	}
	id := p.UUID()
	if !d.registry.Enabled(id) {
		return Ignored
	}
	inv := p.Inventory()
	if !Contains(inv, MaterialArrow) {
		return Ignored
	}

	s := d.settings()
	if AvailableCharges(inv) < s.FlintAndSteelCost {
		d.registry.Remove(id)
		p.Message(s.RanOutMessage)
		return Handled
	}

	if err := p.CanShoot(); err != nil {
		d.log.Warn("flamingarrows: cannot shoot arrow",
			"player", p.Name(),
			"error", err)
		return Ignored
	}

	ConsumeOne(inv, MaterialArrow)
	if n := DeductCharges(inv, s.FlintAndSteelCost); n < s.FlintAndSteelCost {
		d.log.Debug("flamingarrows: partial charge deduction",
			"player", p.Name(),
			"deducted", n,
			"cost", s.FlintAndSteelCost)
	}

	arrow, err := p.ShootArrow()
	if err != nil {
		d.log.Warn("flamingarrows: shoot arrow failed",
			"player", p.Name(),
			"error", err)
		return Handled
	}
	arrow.SetFireTicks(ProjectileFireTicks)
	return Handled
}

// HandleQuit removes the player from ignition mode.
func (d *Dispatcher) HandleQuit(p Player) {
	d.registry.Remove(p.UUID())
}
