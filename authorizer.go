package flamingarrows

// Capabilities checked through an Authorizer.
const (
	// CapabilityIgnite is required to toggle ignition mode.
	CapabilityIgnite = "ignite"
	// CapabilityReload is required to reload the configuration.
	CapabilityReload = "reload"
)

// Authorizer decides whether a player holds a capability.
type Authorizer interface {
	HasCapability(p Player, capability string) bool
}

// AuthorizerFunc adapts a function to the Authorizer interface.
type AuthorizerFunc func(p Player, capability string) bool

// HasCapability calls f.
func (f AuthorizerFunc) HasCapability(p Player, capability string) bool {
	return f(p, capability)
}

// AllowAll grants every capability to every player.
var AllowAll Authorizer = AuthorizerFunc(func(Player, string) bool { return true })

// WhitelistAuthorizer grants capabilities from the lists of the current
// settings: CapabilityIgnite to whitelisted players and CapabilityReload to
// operators. Other capabilities are never granted.
type WhitelistAuthorizer struct {
	Settings func() *Settings
}

// HasCapability reports whether the player is listed for capability.
func (a WhitelistAuthorizer) HasCapability(p Player, capability string) bool {
	s := a.Settings()
	if s == nil {
		return false
	}
	switch capability {
	case CapabilityIgnite:
		return s.Whitelisted(p.Name())
	case CapabilityReload:
		return s.Operator(p.Name())
	}
	return false
}
