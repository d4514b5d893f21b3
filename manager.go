package flamingarrows

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Manager is the central coordinator of the add-on.
// It owns the current settings, the ignition registry and the combustion
// engine, and hands out player handlers. Multiple Manager instances can coexist
// in the same process for running multiple isolated servers.
type Manager struct {
	// settings holds the current settings; swapped wholesale on reload
	settings atomic.Pointer[Settings]

	// catalog is the material catalog resolved at startup
	catalog *Catalog

	// configPath is the YAML file settings are read from; empty means defaults only
	configPath string

	registry   *Registry
	engine     *Engine
	dispatcher *Dispatcher

	// arrows tracks the flaming arrows fired on Dragonfly
	arrows *flamingArrows

	log *slog.Logger

	// watcher reloads settings when the config file changes; nil if disabled
	watcher *configWatcher

	// reloadMu serializes reloads
	reloadMu sync.Mutex

	shutdownOnce sync.Once
}

// newManager creates a manager with default settings.
func newManager(catalog *Catalog, configPath string, auth Authorizer, log *slog.Logger) *Manager {
	m := &Manager{
		catalog:    catalog,
		configPath: configPath,
		registry:   NewRegistry(),
		arrows:     newFlamingArrows(),
		log:        log,
	}
	m.settings.Store(LoadSettings(nil, catalog))

	if auth == nil {
		auth = WhitelistAuthorizer{Settings: m.Settings}
	}
	m.engine = NewEngine(m.Settings, log)
	m.dispatcher = NewDispatcher(m.Settings, m.registry, auth, log)
	return m
}

// Settings returns the current settings. The returned value must not be modified.
func (m *Manager) Settings() *Settings {
	return m.settings.Load()
}

// Catalog returns the material catalog.
func (m *Manager) Catalog() *Catalog {
	return m.catalog
}

// Registry returns the ignition registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Engine returns the combustion engine.
func (m *Manager) Engine() *Engine {
	return m.engine
}

// Dispatcher returns the interaction dispatcher.
func (m *Manager) Dispatcher() *Dispatcher {
	return m.dispatcher
}

// ConfigPath returns the path settings are read from.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// Reload re-reads the configuration file and swaps in the new settings.
// If the file cannot be read or parsed, the current settings are kept and the
// error is returned. Individual bad values never cause an error.
func (m *Manager) Reload() error {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	if m.configPath == "" {
		m.settings.Store(LoadSettings(nil, m.catalog))
		return nil
	}

	store, err := ReadConfigFile(m.configPath)
	if err != nil {
		return err
	}
	s := LoadSettings(store, m.catalog)
	m.settings.Store(s)

	m.log.Debug("flamingarrows: settings loaded",
		"path", m.configPath,
		"wand", m.catalog.Name(s.Wand),
		"cost", s.FlintAndSteelCost,
		"player_ticks", s.PlayerFireTicks,
		"non_player_ticks", s.NonPlayerFireTicks)
	return nil
}

// Shutdown stops the config watcher and drops all in-memory state.
// It is safe to call more than once.
func (m *Manager) Shutdown() {
	m.shutdownOnce.Do(func() {
		if m.watcher != nil {
			if err := m.watcher.Close(); err != nil {
				m.log.Warn("flamingarrows: close config watcher", "error", err)
			}
		}
		m.registry.Clear()
		m.engine.Clear()
		m.arrows.clear()
		m.log.Info("flamingarrows: disabled")
	})
}
