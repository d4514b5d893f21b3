// Package flamingarrows adds flaming arrows to Dragonfly servers.
//
// Players on the whitelist toggle ignition mode by left-clicking with the
// wand (a bow by default). While enabled, every arrow they shoot is set on
// fire and costs flint & steel charges. Burning arrows set the living things
// they hit on fire, start a fire where they land, and pigs killed while burning
// drop cooked porkchops.
//
// # Quick Start
//
//	mngr := flamingarrows.NewBuilder().
//	    Config("plugins/flamingarrows/config.yml").
//	    Watch(true).
//	    Catalog(flamingarrows.HostCatalog()).
//	    Init()
//	defer mngr.Shutdown()
//
//	flamingarrows.RegisterCommands()
//	srv.World().Handle(flamingarrows.NewWorldHandler(mngr))
//
//	for p := range srv.Accept() {
//	    p.Handle(flamingarrows.NewHandler(mngr))
//	}
//
// # Configuration
//
// Settings are read from a YAML file under the flaming-arrows key. A default
// file is written on first start. Missing or malformed values fall back to
// their defaults; numbers are clamped to their valid range:
//
//	flaming-arrows:
//	  messages:
//	    disabled: '*Flaming Arrows* You are now firing normal arrows.'
//	    enabled: '*Flaming Arrows* You are now firing flaming arrows.'
//	  charges-required:
//	    flint-and-steel: 5 # 0..64 per arrow
//	  fire-ticks:
//	    non-player: 600 # 0..600
//	    player: 0       # 0..600
//	  whitelist: ['*']  # may toggle ignition
//	  operators: []     # may also reload
//	  wand: bow
//
// Settings can be reloaded at runtime with /flamingarrows reload or by
// enabling Watch on the builder.
//
// # Charges
//
// Each flint & steel holds 64 charges. A shot wears down the first flint &
// steel in the inventory one charge at a time; a used up item is removed and
// the next one in its stack starts fresh.
//
// # Other hosts
//
// The core works on the Entity, Player, Inventory and Surface interfaces.
// Dragonfly adapters are provided. Arrows fired on Dragonfly report their own
// hits; Dragonfly has no pigs, so non-player entity events are fed in through
// Manager.HandleEntityHurt and HandleEntityDeath by hosts that emit them.
package flamingarrows

// Version of the add-on.
const Version = "1.0.0"
