package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/focuslist/internal/app"
	"github.com/atomicstack/focuslist/internal/ui/state"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envEntries      = "FOCUSLIST_ENTRIES"
	envSeed         = "FOCUSLIST_SEED"
	envKickInterval = "FOCUSLIST_KICK_INTERVAL"
	envKickN        = "FOCUSLIST_KICK_N"
	envMatch        = "FOCUSLIST_MATCH"
	envWidth        = "FOCUSLIST_WIDTH"
	envHeight       = "FOCUSLIST_HEIGHT"
	envShowFooter   = "FOCUSLIST_FOOTER"
	envMouse        = "FOCUSLIST_MOUSE"
	envTrace        = "FOCUSLIST_TRACE"
	envLogFile      = "FOCUSLIST_LOG_FILE"
)

// now seeds runs started without --seed.
var now = time.Now

const (
	defaultEntries      = 30
	defaultKickInterval = 2 * time.Second
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("focuslist", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	entries := fs.Int("entries", envOrInt(env, envEntries, defaultEntries), "number of example entries")
	seed := fs.Int64("seed", envOrInt64(env, envSeed, 0), "random seed for kicks (0 picks one from the clock)")
	kickInterval := fs.Duration("kick-interval", envOrDuration(env, envKickInterval, defaultKickInterval), "delay between kicks (0 disables them)")
	kickN := fs.Int("kick-n", envOrInt(env, envKickN, 0), "entries to kick individually after each kick-all")
	match := fs.String("match", envOrDefault(env, envMatch, state.MatchPrefix.String()), "search matching: prefix or fuzzy")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help footer")
	mouse := fs.Bool("mouse", envOrBool(env, envMouse, true), "enable mouse clicks")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *entries < 0 {
		return Config{}, fmt.Errorf("entries must be >= 0 (got %d)", *entries)
	}
	if *kickInterval < 0 {
		return Config{}, fmt.Errorf("kick-interval must be >= 0 (got %s)", *kickInterval)
	}
	if *kickN < 0 {
		return Config{}, fmt.Errorf("kick-n must be >= 0 (got %d)", *kickN)
	}
	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	matchMode, err := state.ParseMatchMode(*match)
	if err != nil {
		return Config{}, fmt.Errorf("match: %w", err)
	}
	if *seed == 0 {
		*seed = now().UnixNano()
	}

	cfg := Config{
		App: app.Config{
			Entries:      *entries,
			Seed:         *seed,
			KickInterval: *kickInterval,
			KickN:        *kickN,
			Match:        matchMode,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Mouse:        *mouse,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"entries":      strconv.Itoa(*entries),
			"seed":         strconv.FormatInt(*seed, 10),
			"kickInterval": kickInterval.String(),
			"kickN":        strconv.Itoa(*kickN),
			"match":        matchMode.String(),
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"mouse":        strconv.FormatBool(*mouse),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrInt64(env map[string]string, key string, fallback int64) int64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks combinations that individual flags cannot.
func Validate(cfg Config) error {
	if cfg.App.KickN > 0 && cfg.App.KickInterval == 0 {
		return errors.New("kick-n needs a non-zero kick-interval")
	}
	return nil
}
