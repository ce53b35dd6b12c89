package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/prismview/pkg/buildinfo"
	"github.com/matzehuels/prismview/pkg/cache"
	"github.com/matzehuels/prismview/pkg/config"
	"github.com/matzehuels/prismview/pkg/observability"
	"github.com/matzehuels/prismview/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "prismview"

	// skipConfig marks commands that must work with a broken config file.
	skipConfig = "skip-config"
)

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
	Config config.Config

	configPath string
	verbose    bool
	hooks      *observability.LogHooks
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "prismview draws color-theory scenes",
		Long: `prismview lays out color hierarchies as hue wheels, tiled color peaks and
gradient swatches, and renders them to SVG, PNG, JSON or the terminal.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/prismview/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.hierarchyCommand())
	root.AddCommand(c.scenesCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and applies the log level. --verbose wins
// over the configured level and turns on pipeline and cache debug hooks.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipConfig] == "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.Config = cfg
	}

	level, err := c.Config.Log.ParseLevel()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
		c.hooks = observability.NewLogHooks(c.Logger)
		observability.SetPipelineHooks(c.hooks)
		observability.SetCacheHooks(c.hooks)
	}
	c.SetLogLevel(level)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg := c.Config.Cache
	var store cache.Cache = cache.NewNullCache()
	if !noCache {
		var err error
		store, err = cache.Open(ctx, cfg.Config)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("cache opened", "backend", cfg.Backend)
	}
	r := pipeline.NewRunner(store, cache.KeyerFor(cfg.Config), c.Logger)
	r.TTL = cfg.TTL
	return r, nil
}

// baseOptions returns pipeline options seeded from the config file.
func (c *CLI) baseOptions() pipeline.Options {
	cfg := c.Config
	return pipeline.Options{
		Width:      cfg.Viewport.Width,
		Height:     cfg.Viewport.Height,
		Metric:     cfg.Render.Metric,
		Formats:    append([]string(nil), cfg.Render.Formats...),
		Scale:      cfg.Render.Scale,
		Background: cfg.Render.Background,
		Caption:    cfg.Render.Caption,
		Logger:     c.Logger,
	}
}

// =============================================================================
// Options Helpers
// =============================================================================

// renderFlags are the flags shared by commands that lay out or render.
// Only flags set on the command line override the config file.
type renderFlags struct {
	width      float64
	height     float64
	metric     string
	formats    string
	scale      float64
	background string
	caption    bool
	noCache    bool
	refresh    bool
}

func (f *renderFlags) registerLayout(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64Var(&f.width, "width", pipeline.DefaultWidth, "viewport width")
	fs.Float64Var(&f.height, "height", pipeline.DefaultHeight, "viewport height")
	fs.StringVar(&f.metric, "metric", "truncated", "aspect ratio metric: truncated, continuous")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable caching")
	fs.BoolVar(&f.refresh, "refresh", false, "ignore cached results")
}

func (f *renderFlags) registerRender(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	fs.Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG pixel density")
	fs.StringVar(&f.background, "background", "", "background color (#rrggbb)")
	fs.BoolVar(&f.caption, "caption", false, "draw the scene title")
}

// apply copies explicitly set flags onto opts.
func (f *renderFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	changed := cmd.Flags().Changed
	if changed("width") {
		opts.Width = f.width
	}
	if changed("height") {
		opts.Height = f.height
	}
	if changed("metric") {
		opts.Metric = f.metric
	}
	if changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if changed("scale") {
		opts.Scale = f.scale
	}
	if changed("background") {
		opts.Background = f.background
	}
	if changed("caption") {
		opts.Caption = f.caption
	}
	opts.Refresh = f.refresh
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// basePath strips a known format extension (and a ".frame.json" or
// ".hierarchy" suffix) from p.
func basePath(p string) string {
	p = strings.TrimSuffix(p, ".frame.json")
	ext := filepath.Ext(p)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		p = strings.TrimSuffix(p, ext)
	}
	return p
}

// FormatError renders err for the terminal.
func FormatError(err error) string {
	return styleIconError.Render(iconError) + " " + err.Error()
}
