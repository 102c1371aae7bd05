// Package serve implements `ulispc serve`: runs the replay HTTP server.
package serve

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli"

	"github.com/lupyuen/ulispc/pkg/cache"
	"github.com/lupyuen/ulispc/pkg/config"
	"github.com/lupyuen/ulispc/pkg/replay"
	"github.com/lupyuen/ulispc/pkg/store"
)

// NewCommands returns the `serve` command.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "serve",
			Usage:     "Run the replay server",
			UsageText: "ulispc serve --addr :8080",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "addr", Usage: "listen address", Value: "127.0.0.1:8080"},
				cli.StringFlag{Name: "db", Usage: "run store database path", Value: "ulispc.db"},
				cli.StringFlag{Name: "backend", Usage: "run store backend: bolt or leveldb"},
				cli.IntFlag{Name: "cache-size", Usage: "transcode cache entries (0 disables caching)"},
			},
			Action: run,
		},
	}
}

func run(c *cli.Context) error {
	cfg := config.Default()
	if addr := c.String("addr"); addr != "" {
		cfg.Replay.ListenAddr = addr
	}
	if db := c.String("db"); db != "" {
		cfg.Storage.Path = db
	}
	if backend := c.String("backend"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if c.IsSet("cache-size") {
		cfg.Cache.Size = c.Int("cache-size")
	}

	backend, err := openBackend(cfg.Storage)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	runs := store.NewRunStore(backend)
	defer runs.Close()

	var opts []replay.ServerOption
	if cfg.Cache.Size > 0 {
		tc, err := cache.New(cfg.Cache.Size)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		opts = append(opts, replay.WithCache(tc))
	}

	srv := replay.NewServer(runs, nil, opts...)
	return http.ListenAndServe(cfg.Replay.ListenAddr, srv.Handler())
}

// openBackend selects the Run Store backend cfg names, matching the
// teacher's pattern of picking a storage engine from config
// (cli/options/options.go).
func openBackend(cfg config.StorageConfiguration) (store.Store, error) {
	switch cfg.Backend {
	case "", "bolt":
		return store.NewBoltStore(cfg.Path)
	case "leveldb":
		return store.NewLevelStore(cfg.Path)
	default:
		return nil, fmt.Errorf("serve: unknown storage backend %q", cfg.Backend)
	}
}
