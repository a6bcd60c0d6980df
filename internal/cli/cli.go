// Package cli implements the flowboard command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowboard/internal/config"
	"github.com/matzehuels/flowboard/internal/metrics"
	"github.com/matzehuels/flowboard/pkg/buildinfo"
	"github.com/matzehuels/flowboard/pkg/cache"
	"github.com/matzehuels/flowboard/pkg/designer"
	"github.com/matzehuels/flowboard/pkg/diagram"
	fio "github.com/matzehuels/flowboard/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "flowboard"

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

	configPath  string
	metricsFile string

	cfg     *config.Config
	metrics *metrics.Hooks
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Flowboard edits flow diagrams with snapping and joints",
		Long: `Flowboard is an editor for flow diagrams. Activities and joints are moved
by dragging, snap to horizontal lanes and align with their neighbors, and
connections can be split by inserting joints.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.flushMetrics()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.Path()+")")
	root.PersistentFlags().StringVar(&c.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(c.editCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and installs metrics hooks.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	c.Logger.Debug("build", "info", buildinfo.String())

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.metricsFile != "" {
		c.metrics = metrics.New()
		c.metrics.Install()
		c.Logger.Debug("metrics enabled", "file", c.metricsFile)
	}
	return nil
}

func (c *CLI) flushMetrics() error {
	if c.metrics == nil {
		return nil
	}
	if err := c.metrics.WriteFile(c.metricsFile); err != nil {
		return err
	}
	c.Logger.Debug("metrics written", "file", c.metricsFile)
	return nil
}

// config returns the loaded configuration, or the defaults when a command
// runs without the root pre-run hook.
func (c *CLI) config() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}

// =============================================================================
// Designer Factory
// =============================================================================

// newDesigner creates a designer configured from the CLI settings.
func (c *CLI) newDesigner(items []diagram.Item, opts ...designer.Option) (*designer.Designer, error) {
	cfg := c.config()
	base := []designer.Option{
		designer.WithLogger(c.Logger),
		designer.WithSnapConfig(cfg.Snap),
		designer.WithClickThreshold(cfg.ClickThreshold()),
	}
	return designer.New(items, append(base, opts...)...)
}

// loadDiagram reads a JSON diagram, or returns the demo diagram when path is
// empty.
func (c *CLI) loadDiagram(path string) ([]diagram.Item, error) {
	if path == "" {
		c.Logger.Debug("no diagram given, using demo")
		return demoItems(), nil
	}
	prog := newProgress(c.Logger)
	items, err := fio.ImportJSON(path)
	if err != nil {
		return nil, err
	}
	prog.done("Loaded " + path)
	return items, nil
}

// demoItems is the diagram shown when no file is given: three activities
// chained left to right, all selected.
func demoItems() []diagram.Item {
	return []diagram.Item{
		{ID: "1", Position: diagram.Point{X: 30, Y: 50}, Selected: true, Edges: []string{"2"}},
		{ID: "2", Position: diagram.Point{X: 230, Y: 250}, Selected: true, Edges: []string{"3"}},
		{ID: "3", Position: diagram.Point{X: 630, Y: 250}, Selected: true},
	}
}

// =============================================================================
// Render Cache
// =============================================================================

// renderTTL bounds how long rendered artifacts are reused.
const renderTTL = 7 * 24 * time.Hour

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/flowboard/).
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

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
