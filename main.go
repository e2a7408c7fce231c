package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"darkfortress/pkg/engine/logger"
	"darkfortress/pkg/engine/world"
	"darkfortress/pkg/game/config"
	"darkfortress/pkg/game/devtools"
	"darkfortress/pkg/game/levelgen"
	"darkfortress/pkg/game/state"
	"darkfortress/pkg/game/text"
)

type options struct {
	configPath string
	seed       int64
	arch       string
	noFortress bool
	arena      bool
	debug      bool
	quiet      bool
	yamlPath   string
	dumpDir    string
	html       bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "darkfortress.yaml", "YAML config file (defaults are used if it does not exist)")
	flag.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.StringVar(&o.arch, "arch", "", "map architecture: rooms or bsp")
	flag.BoolVar(&o.noFortress, "no-fortress", false, "skip the fortress prefab")
	flag.BoolVar(&o.arena, "arena", false, "use an open walled arena instead of a generated layout")
	flag.BoolVar(&o.debug, "debug", false, "log at debug level and dump every fortress candidate")
	flag.BoolVar(&o.quiet, "quiet", false, "do not print the map")
	flag.StringVar(&o.yamlPath, "yaml", "", "write the level as YAML to this file")
	flag.StringVar(&o.dumpDir, "dump", "", "write a full map.txt debug dump into this directory")
	flag.BoolVar(&o.html, "html", false, "save the level as an HTML page")
	flag.Parse()
	return o
}

// applyFlags overrides config values with any flags given on the command line
func applyFlags(cfg *config.Config, o options) {
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if o.arch != "" {
		cfg.Map.Architecture = o.arch
	}
	if o.noFortress {
		cfg.Fortress.Enabled = false
	}
	if o.debug {
		cfg.Log.Level = "DEBUG"
	}
}

func buildLevel(cfg *config.Config, o options) (*state.Level, error) {
	b, err := levelgen.NewBuilder(cfg)
	if err != nil {
		return nil, err
	}

	if o.debug {
		b.OnCandidate = func(m *world.Map, r world.Rect) {
			fmt.Fprintf(os.Stderr, "fortress candidate at %s\n", r.TopLeft())
			devtools.DumpMap(os.Stderr, m, &r, devtools.DumpOptions{})
		}
	}

	if o.arena {
		return b.Populate(devtools.NewArena(cfg.Map.Width, cfg.Map.Height))
	}
	return b.Build()
}

func printSummary(level *state.Level) {
	m := level.Map()
	fmt.Println(text.Get("LEVEL_SUMMARY", m.Width(), m.Height(), level.Architecture, level.Seed))
	fmt.Println(text.Get("PLAYER_START", level.PlayerStart().String()))
	fmt.Println(text.Get("AMULET_AT", level.AmuletStart().String()))
	fmt.Println(text.Get("MONSTER_COUNT", len(level.MonsterSpawns())))
	fmt.Println(text.Get("FLOOR_TILES", levelgen.FloorCount(m)))
	if level.FortressPlaced {
		fmt.Println(text.Get("FORTRESS_PLACED", level.Fortress.TopLeft().String()))
	} else {
		fmt.Println(text.Get("FORTRESS_MISSING"))
	}
}

func run(o options) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cfg, o)

	if err := logger.Initialize(cfg.Log); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	level, err := buildLevel(cfg, o)
	if err != nil {
		return err
	}
	level.RevealAround(level.PlayerStart())

	if !o.quiet {
		if err := devtools.DumpLevel(os.Stdout, level); err != nil {
			return err
		}
		fmt.Println()
	}
	printSummary(level)

	if o.yamlPath != "" {
		if err := devtools.WriteLevelYAML(o.yamlPath, level); err != nil {
			return err
		}
		fmt.Println(text.Get("WROTE_FILE", o.yamlPath))
	}

	if o.dumpDir != "" {
		path, err := devtools.DumpLevelToFile(level, o.dumpDir)
		if err != nil {
			return fmt.Errorf("writing map dump: %w", err)
		}
		fmt.Println(text.Get("WROTE_FILE", path))
	}

	if o.html {
		path, err := devtools.SaveLevelHTML(level)
		if err != nil {
			return fmt.Errorf("writing html: %w", err)
		}
		fmt.Println(text.Get("WROTE_FILE", path))
	}

	return nil
}

// finish logs err, closes the log file and returns the process exit code
func finish(err error) int {
	if err != nil {
		logger.Error("level generation failed", "error", err)
	}
	// Close after the last record so the log file is not reopened
	logger.Close()

	if err == nil {
		return 0
	}
	fmt.Fprintf(os.Stderr, "darkfortress: %v\n", err)
	if errors.Is(err, levelgen.ErrUnknownArchitecture) {
		return 2
	}
	return 1
}

func main() {
	os.Exit(finish(run(parseFlags())))
}
