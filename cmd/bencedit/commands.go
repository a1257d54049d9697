package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/manokara/bencedit/batch"
	"github.com/manokara/bencedit/config"
)

type MainConfig struct {
	Batch        bool `cli:"name=b aliases=batch desc='process several files through transforms'"`
	SkipInvalid  bool `cli:"name=S aliases=skip-invalid desc='in batch mode, skip invalid files'"`
	SkipNotFound bool `cli:"name=N aliases=skip-not-found desc='in batch mode, skip non-existent files'"`

	Transforms []string
	Where      string
	ConfigPath string
	ColorMode  string

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "t",
			Aliases:     []string{"transform"},
			Description: "an action to apply to files in batch mode, repeatable",
			Type:        cli.NamedFuncOpt(cfg.transformOpt, "(command)"),
		},
		&cli.Opt{
			Name:        "w",
			Aliases:     []string{"where"},
			Description: "in batch mode, only process files matching this expression",
			Type:        cli.NamedFuncOpt(cfg.whereOpt, "(expr)"),
		},
		&cli.Opt{
			Name:        "c",
			Aliases:     []string{"config"},
			Description: "config file (default ~/.config/bencedit/config.yaml)",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "color",
			Description: "colorize output: auto, always, never",
			Type:        cli.NamedFuncOpt(cfg.colorOpt, "(mode)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "bencedit").
		WithSynopsis("bencedit [-b [-S] [-N] [-t transform]...] [opts] <files>...").
		WithDescription("bencedit is an editor for bencoded files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return benceditMain(cfg, cc, args)
		})
}

func (cfg *MainConfig) transformOpt(_ *cli.Context, a string) (any, error) {
	cfg.Transforms = append(cfg.Transforms, a)
	return a, nil
}

func (cfg *MainConfig) whereOpt(_ *cli.Context, a string) (any, error) {
	cfg.Where = a
	return a, nil
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	cfg.ConfigPath = a
	return a, nil
}

func (cfg *MainConfig) colorOpt(_ *cli.Context, a string) (any, error) {
	switch a {
	case "auto", "always", "never":
		cfg.ColorMode = a
		return a, nil
	}
	return nil, fmt.Errorf("%w: color must be auto, always or never, got %q", cli.ErrUsage, a)
}

func benceditMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no files given", cli.ErrUsage)
	}
	if !cfg.Batch && (cfg.SkipInvalid || cfg.SkipNotFound || len(cfg.Transforms) > 0 || cfg.Where != "") {
		return fmt.Errorf("%w: -S, -N, -t and -w require -b", cli.ErrUsage)
	}

	ecfg, err := loadConfig(cfg)
	if err != nil {
		return err
	}

	if cfg.Batch {
		return runBatch(cfg, ecfg, cc, args)
	}
	if len(args) > 1 {
		fmt.Fprintln(cc.Out, "Warning: Many files were passed to interactive mode, only the first one will be loaded.")
	}
	return interactive(cfg, ecfg, cc, args[0])
}

func loadConfig(cfg *MainConfig) (*config.Config, error) {
	path := cfg.ConfigPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".config", "bencedit", "config.yaml")
		}
	}
	ecfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.ColorMode != "" {
		ecfg.Color = cfg.ColorMode
	}
	return ecfg, nil
}

// colorsOn resolves the "auto" color mode against the terminal.
func colorsOn(ecfg *config.Config) bool {
	switch ecfg.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

func runBatch(cfg *MainConfig, ecfg *config.Config, cc *cli.Context, files []string) error {
	report, err := batch.Run(batch.Config{
		Files:        files,
		Transforms:   cfg.Transforms,
		SkipInvalid:  cfg.SkipInvalid,
		SkipNotFound: cfg.SkipNotFound,
		Where:        cfg.Where,
		Editor:       ecfg,
	})
	if report != nil {
		report.Print(cc.Out)
	}
	if err != nil {
		return err
	}
	if report.Failed() {
		return cli.ExitCodeErr(1)
	}
	return nil
}
