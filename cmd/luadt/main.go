// Command luadt runs Lua scripts with the datetime library preloaded and
// a bridge-backed clock wired in.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Shopify/go-lua"
	"github.com/caarlos0/env/v11"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/luadt/luadt"
	"github.com/luadt/luadt/dtlib"
)

var version = "0.3.1"

type config struct {
	// NO_COLOR is presence-based, per the convention.
	NoColor string `env:"NO_COLOR"`
	// LUADT_QUIET silences the warning channel.
	Quiet bool `env:"LUADT_QUIET"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "luadt: %v\n", err)
		os.Exit(1)
	}

	cmd := &cli.Command{
		Name:    "luadt",
		Usage:   "run Lua with the datetime library preloaded",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Execute a Lua file",
				ArgsUsage: "<file.lua>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return errors.New("usage: luadt run <file.lua>")
					}
					return runFile(cfg, c.Args().First())
				},
			},
			{
				Name:      "eval",
				Usage:     "Evaluate a Lua expression or chunk",
				ArgsUsage: "<code>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return errors.New("usage: luadt eval <code>")
					}
					return evalChunk(cfg, c.Args().First())
				},
			},
			{
				Name:  "repl",
				Usage: "Interactive session",
				Action: func(ctx context.Context, c *cli.Command) error {
					return repl(cfg)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "luadt: %v\n", err)
		os.Exit(1)
	}
}

// newState builds a Lua state with the standard libraries, the datetime
// library, and a now() global returning the current instant as an aware
// datetime.
func newState(cfg config) (*lua.State, error) {
	l := lua.NewState()
	lua.OpenLibraries(l)
	if err := dtlib.Open(l); err != nil {
		return nil, err
	}
	l.Register("now", func(l *lua.State) int {
		if err := luadt.PushTime(l, time.Now()); err != nil {
			lua.Errorf(l, "now: %s", err.Error())
			panic("unreachable")
		}
		return 1
	})
	if cfg.Quiet {
		if err := lua.DoString(l, "function warn() end"); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func runFile(cfg config, path string) error {
	l, err := newState(cfg)
	if err != nil {
		return err
	}
	return lua.DoFile(l, path)
}

func evalChunk(cfg config, code string) error {
	l, err := newState(cfg)
	if err != nil {
		return err
	}
	// Expression first, statement second, the usual dual-mode trick.
	if err := lua.DoString(l, "print("+code+")"); err != nil {
		return lua.DoString(l, code)
	}
	return nil
}

func repl(cfg config) error {
	l, err := newState(cfg)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	prompt := "luadt> "
	if interactive && cfg.NoColor == "" {
		prompt = "\x1b[32mluadt>\x1b[0m "
	}
	if interactive {
		fmt.Printf("luadt %s (datetime %d..%d)\n", version, dtlib.MinYear, dtlib.MaxYear)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print(prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := lua.DoString(l, "print("+line+")"); err != nil {
			if err := lua.DoString(l, line); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		}
		l.SetTop(0)
	}
	return scanner.Err()
}
