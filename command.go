package flamingarrows

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
)

// NewCommand returns the /flamingarrows command with its reload and status
// sub-commands. Register it with cmd.Register.
func NewCommand() cmd.Command {
	return cmd.New("flamingarrows", "Manage flaming arrows.", []string{"fa"}, reloadCommand{}, statusCommand{})
}

// RegisterCommands registers the /flamingarrows command with Dragonfly.
func RegisterCommands() {
	cmd.Register(NewCommand())
}

// commandSource extracts the player and manager from a command source.
// Returns (nil, nil) if the source is not a player handled by this add-on.
//
// Commands are executed synchronously with the player, just like handlers.
func commandSource(src cmd.Source) (*player.Player, *Manager) {
	p, ok := src.(*player.Player)
	if !ok {
		return nil, nil
	}
	h := handlerOf(p)
	if h == nil {
		return p, nil
	}
	return p, h.manager
}

// reloadCommand re-reads the configuration file.
type reloadCommand struct {
	Sub cmd.SubCommand `cmd:"reload"`
}

// Allow only admits players allowed to reload.
func (reloadCommand) Allow(src cmd.Source) bool {
	p, m := commandSource(src)
	if m == nil {
		return false
	}
	return m.dispatcher.auth.HasCapability(m.PlayerOf(p), CapabilityReload)
}

// Run reloads the settings.
func (reloadCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	_, m := commandSource(src)
	if m == nil {
		o.Error("Player-only command")
		return
	}
	if err := m.Reload(); err != nil {
		o.Errorf("Reload failed: %v", err)
		return
	}
	o.Print("Flaming Arrows configuration reloaded.")
}

// statusCommand shows the player's ignition state and remaining charges.
type statusCommand struct {
	Sub cmd.SubCommand `cmd:"status"`
}

// Run prints the status.
func (statusCommand) Run(src cmd.Source, o *cmd.Output, _ *world.Tx) {
	p, m := commandSource(src)
	if m == nil {
		o.Error("Player-only command")
		return
	}
	state := "off"
	if m.registry.Enabled(p.UUID()) {
		state = "on"
	}
	fp := m.PlayerOf(p)
	o.Printf("Flaming arrows: %s. Flint & Steel charges: %d (cost per arrow: %d).",
		state, AvailableCharges(fp.Inventory()), m.Settings().FlintAndSteelCost)
}
