package flamingarrows

import (
	"log/slog"
)

// Builder configures the add-on before initialization.
// Use NewBuilder() to create a builder and chain configuration methods.
type Builder struct {
	configPath string
	watch      bool
	auth       Authorizer
	catalog    *Catalog
	log        *slog.Logger
}

// NewBuilder creates a new builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Config sets the YAML file settings are read from. A default file is
// written there on Init if none exists. Without a path the defaults are used.
func (b *Builder) Config(path string) *Builder {
	b.configPath = path
	return b
}

// Watch enables reloading settings whenever the config file changes.
func (b *Builder) Watch(enabled bool) *Builder {
	b.watch = enabled
	return b
}

// Authorizer sets the capability check for toggling ignition mode.
// The default admits players on the settings whitelist.
func (b *Builder) Authorizer(a Authorizer) *Builder {
	b.auth = a
	return b
}

// Catalog sets the material catalog reported by the host.
func (b *Builder) Catalog(c *Catalog) *Builder {
	b.catalog = c
	return b
}

// Logger sets the logger. The default is slog.Default().
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.log = l
	return b
}

// Init initializes the add-on with the configured settings and returns the
// Manager. Configuration problems are logged and never fatal: the defaults
// are used for anything that cannot be read.
//
// Example:
//
//	mngr := flamingarrows.NewBuilder().
//	    Config("plugins/flamingarrows/config.yml").
//	    Catalog(flamingarrows.HostCatalog()).
//	    Init()
//	defer mngr.Shutdown()
func (b *Builder) Init() *Manager {
	log := b.log
	if log == nil {
		log = slog.Default()
	}
	catalog := b.catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	m := newManager(catalog, b.configPath, b.auth, log)

	if b.configPath != "" {
		created, err := WriteDefaultConfig(b.configPath)
		switch {
		case err != nil:
			log.Warn("flamingarrows: write default config", "path", b.configPath, "error", err)
		case created:
			log.Info("flamingarrows: wrote default config", "path", b.configPath)
		}
	}

	if err := m.Reload(); err != nil {
		log.Warn("flamingarrows: using default settings", "error", err)
	}

	if b.watch && b.configPath != "" {
		w, err := watchConfig(b.configPath, m, log)
		if err != nil {
			log.Warn("flamingarrows: config watcher disabled", "path", b.configPath, "error", err)
		} else {
			m.watcher = w
		}
	}

	log.Info("flamingarrows: enabled", "version", Version)
	return m
}
