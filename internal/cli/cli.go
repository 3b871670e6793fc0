// Package cli implements the stairforge command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stairforge/pkg/buildinfo"
	"github.com/matzehuels/stairforge/pkg/cache"
	"github.com/matzehuels/stairforge/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "stairforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger.
// Configuration is loaded from the default config file; a missing file
// leaves the built-in defaults in place.
func New(w io.Writer, level log.Level) *CLI {
	cfg, err := LoadConfig("")
	c := &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
	if err != nil {
		c.Logger.Warn("ignoring config file", "error", err)
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stairforge generates parametric staircase layouts",
		Long:         `Stairforge is a CLI tool for generating modular staircase layouts - straight or spiral, with optional railings - and rendering them as drawings, meshes, and scene outlines.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.panelCommand())
	root.AddCommand(c.presetCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The cache backend comes
// from the config file unless --no-cache forces it off.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cch, nil, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Backend == CacheBackendNone {
		return cache.NewNullCache(), nil
	}

	if c.Config.Cache.Backend == CacheBackendRedis {
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Config.Cache.Redis.Addr,
			Password: c.Config.Cache.Redis.Password,
			DB:       c.Config.Cache.Redis.DB,
		})
	}

	dir := c.Config.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/stairforge/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
