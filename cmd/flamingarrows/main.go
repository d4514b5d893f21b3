// Command flamingarrows runs a Dragonfly server with the flaming arrows add-on.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/df-mc/dragonfly/server"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/spf13/cobra"

	"github.com/oriumgames/flamingarrows"
)

// options holds the command configuration. Environment variables provide the
// defaults, flags override them.
type options struct {
	Config string `env:"FLAMINGARROWS_CONFIG" envDefault:"plugins/flamingarrows/config.yml"`
	Watch  bool   `env:"FLAMINGARROWS_WATCH" envDefault:"true"`
	Debug  bool   `env:"FLAMINGARROWS_DEBUG"`
}

func main() {
	root, err := newRootCommand()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() (*cobra.Command, error) {
	var opts options
	if err := env.Parse(&opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	root := &cobra.Command{
		Use:          "flamingarrows",
		Short:        "Run a Dragonfly server with flaming arrows",
		Version:      flamingarrows.Version,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return run(opts)
		},
	}
	root.Flags().StringVar(&opts.Config, "config", opts.Config, "path of the flaming arrows YAML configuration")
	root.Flags().BoolVar(&opts.Watch, "watch", opts.Watch, "reload the configuration when the file changes")
	root.Flags().BoolVar(&opts.Debug, "debug", opts.Debug, "enable debug logging")
	return root, nil
}

func run(opts options) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	conf, err := server.DefaultConfig().Config(log)
	if err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	srv := conf.New()
	srv.CloseOnProgramEnd()

	mngr := flamingarrows.NewBuilder().
		Config(opts.Config).
		Watch(opts.Watch).
		Catalog(flamingarrows.HostCatalog()).
		Logger(log).
		Init()
	defer mngr.Shutdown()

	flamingarrows.RegisterCommands()
	wh := flamingarrows.NewWorldHandler(mngr)
	for _, w := range []*world.World{srv.World(), srv.Nether(), srv.End()} {
		w.Handle(wh)
	}

	srv.Listen()
	for p := range srv.Accept() {
		p.Handle(flamingarrows.NewHandler(mngr))
	}
	return nil
}
