// Package transcode implements `ulispc transcode`: read an AST JSON
// file, transcode it, write the uLisp text out.
package transcode

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/lupyuen/ulispc/pkg/ast"
	"github.com/lupyuen/ulispc/pkg/cache"
	"github.com/lupyuen/ulispc/pkg/config"
	"github.com/lupyuen/ulispc/pkg/log"
	"github.com/lupyuen/ulispc/pkg/transcoder"
)

// NewCommands returns the `transcode` command.
func NewCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "transcode",
			Usage:     "Transcode a script AST to uLisp",
			UsageText: "ulispc transcode --in script.ast.json [--out out.lisp]",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "in", Usage: "path to the AST JSON input"},
				cli.StringFlag{Name: "out", Usage: "path to write uLisp output (default: stdout)"},
				cli.StringFlag{Name: "config", Usage: "path to a YAML config file overriding defaults"},
				cli.BoolFlag{Name: "verbose", Usage: "enable debug-level scope-stack tracing"},
				cli.IntFlag{Name: "cache-size", Usage: "transcode cache entries (0 disables caching)"},
			},
			Action: run,
		},
	}
}

func run(c *cli.Context) error {
	in := c.String("in")
	if in == "" {
		return cli.NewExitError("missing required --in flag", 1)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("reading %s: %w", in, err), 1)
	}

	var program ast.Program
	if err := json.Unmarshal(data, &program); err != nil {
		return cli.NewExitError(fmt.Errorf("parsing %s: %w", in, err), 1)
	}

	cfg := config.Default()
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	if c.IsSet("cache-size") {
		cfg.Cache.Size = c.Int("cache-size")
	}

	logger, err := log.New(c.Bool("verbose"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer logger.Sync()

	var tc *cache.Cache
	var key uint64
	if cfg.Cache.Size > 0 {
		tc, err = cache.New(cfg.Cache.Size)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		key = cache.Key(data)
	}

	var ulisp string
	if tc != nil {
		if hit, ok := tc.Get(key); ok {
			ulisp = hit
		}
	}
	if ulisp == "" {
		ulisp, err = transcoder.Transcode(program, transcoder.WithLogger(logger.Sugar()), transcoder.WithRenames(cfg.Names))
		if err != nil {
			logger.Error("transcode failed", zap.Error(err))
			return cli.NewExitError(err, 1)
		}
		if tc != nil {
			tc.Put(key, ulisp)
		}
	}

	out := c.String("out")
	if out == "" {
		fmt.Fprintln(c.App.Writer, ulisp)
		return nil
	}
	return os.WriteFile(out, []byte(ulisp+"\n"), 0o644)
}
