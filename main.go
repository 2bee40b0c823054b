package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/focuslist/internal/app"
	"github.com/atomicstack/focuslist/internal/config"
	"github.com/atomicstack/focuslist/internal/logging"
	"github.com/atomicstack/focuslist/internal/logging/events"
	"github.com/atomicstack/focuslist/internal/ui/state"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg, stdoutSize()))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(fmt.Errorf("seed %d: %w", runtimeCfg.App.Seed, err))
		fmt.Fprintln(os.Stderr, exitMessage(err))
		os.Exit(1)
	}
}

// exitMessage formats a run error for stderr, naming runtime faults so they
// stand apart from raised errors.
func exitMessage(err error) string {
	var fatal *state.FatalError
	if errors.As(err, &fatal) && fatal.Runtime {
		return fmt.Sprintf("Error (runtime): %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// runDetails is what a replay needs: the same seed and options reproduce the
// same kicks.
type runDetails struct {
	Seed         int64  `json:"seed"`
	Entries      int    `json:"entries"`
	Match        string `json:"match"`
	KickInterval string `json:"kickInterval"`
	KickN        int    `json:"kickN"`
}

type viewDetails struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Footer bool `json:"footer"`
	Mouse  bool `json:"mouse"`
}

type terminalSize struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

func startupTracePayload(cfg config.Config, size terminalSize) map[string]interface{} {
	return map[string]interface{}{
		"argv":  cfg.Args,
		"flags": cfg.Flags,
		"run": runDetails{
			Seed:         cfg.App.Seed,
			Entries:      cfg.App.Entries,
			Match:        cfg.App.Match.String(),
			KickInterval: cfg.App.KickInterval.String(),
			KickN:        cfg.App.KickN,
		},
		"view": viewDetails{
			Width:  cfg.App.Width,
			Height: cfg.App.Height,
			Footer: cfg.App.ShowFooter,
			Mouse:  cfg.App.Mouse,
		},
		"terminal": size,
	}
}

func stdoutSize() terminalSize {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return terminalSize{Error: "stdout is not a terminal"}
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return terminalSize{Error: err.Error()}
	}
	return terminalSize{Width: width, Height: height}
}
