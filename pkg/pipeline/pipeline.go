// Package pipeline provides the layout → render pipeline for prismview.
//
// The CLI, the HTTP server and the interactive viewer all go through this
// package so that they share defaults, validation and cache keys.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: build a [draw.Frame] for a scene at a viewport size
//  2. Render: turn the frame into artifacts (SVG, PNG, JSON)
//
// A second visualization type renders the scene's color hierarchy as a
// node-link diagram through Graphviz instead of laying out a frame.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Scene:   "hue-wheel",
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/prismview/pkg/cache"
	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/geom"
	"github.com/matzehuels/prismview/pkg/render/draw"
	"github.com/matzehuels/prismview/pkg/render/grid"
	"github.com/matzehuels/prismview/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 600.0

	// DefaultScale is the default PNG pixel density.
	DefaultScale = 1.0

	// DefaultScene is rendered when no scene is named.
	DefaultScene = string(scene.HueWheel)
)

// Visualization types.
const (
	VizTypeScene     = "scene"
	VizTypeHierarchy = "hierarchy"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeScene:     true,
	VizTypeHierarchy: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Scene   string `json:"scene"`
	VizType string `json:"viz_type,omitempty"`

	// Layout options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Metric string  `json:"metric,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Background string   `json:"background,omitempty"`
	Caption    bool     `json:"caption,omitempty"`  // draw the scene title
	Detailed   bool     `json:"detailed,omitempty"` // HCL labels in hierarchy diagrams

	// Refresh bypasses cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Frame is the laid-out scene. Empty for hierarchy runs.
	Frame draw.Frame

	// FrameHash is the content hash of the encoded frame.
	FrameHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	draw.Stats
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	FrameHit  bool // frame came from cache
	RenderHit bool // every artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType,
			"invalid viz_type: %q (must be one of: scene, hierarchy)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	if !o.IsHierarchy() && o.wantsRaster() {
		if err := errors.ValidateCanvas(o.Width, o.Height, o.Scale); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for frame generation.
func (o *Options) SetLayoutDefaults() {
	if o.Scene == "" {
		o.Scene = DefaultScene
	}
	if o.VizType == "" {
		o.VizType = VizTypeScene
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Metric == "" {
		o.Metric = string(grid.MetricTruncated)
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
}

// ValidateForLayout applies layout defaults and validates scene, viewport
// and metric.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if _, err := scene.Parse(o.Scene); err != nil {
		return err
	}
	if err := o.Viewport().Validate(); err != nil {
		return err
	}
	_, err := grid.ParseMetric(o.Metric)
	return err
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
}

// ValidateForRender applies render defaults and validates formats and scale.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return errors.ValidateScale(o.Scale)
}

// discardLogger is the logger used when none is configured.
func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// wantsRaster reports whether PNG output is requested.
func (o *Options) wantsRaster() bool {
	return slices.Contains(o.Formats, FormatPNG)
}

// Kind returns the parsed scene. Call after validation.
func (o *Options) Kind() scene.Kind { return scene.Kind(o.Scene) }

// Viewport returns the layout viewport.
func (o *Options) Viewport() geom.Viewport {
	return geom.Viewport{Width: float32(o.Width), Height: float32(o.Height)}
}

// IsHierarchy reports whether this run renders a node-link diagram.
func (o *Options) IsHierarchy() bool { return o.VizType == VizTypeHierarchy }

// FrameKeyOpts returns cache key options for frame generation.
func (o *Options) FrameKeyOpts() cache.FrameKeyOpts {
	return cache.FrameKeyOpts{
		Scene:  o.Scene,
		Width:  o.Width,
		Height: o.Height,
		Metric: o.Metric,
	}
}

// ArtifactKeyOpts returns cache key options for one output format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Background: o.Background}
	if o.IsHierarchy() {
		k.Detailed = o.Detailed
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	if o.Caption {
		k.Caption = o.Kind().Title()
	}
	return k
}
