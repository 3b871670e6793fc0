// Package pipeline provides the core generation pipeline for Stairforge.
//
// This package implements the complete generate → render pipeline that can
// be used by CLI, API, and panel components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: Place step and railing primitives from staircase parameters
//  2. Render: Produce output in various formats (SVG, OBJ, JSON, outline, PDF, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Params:  stair.Default(),
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Generate only
//	layout, err := runner.Generate(ctx, opts)
//
//	// Render with existing layout
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stairforge/pkg/cache"
	"github.com/matzehuels/stairforge/pkg/errors"
	"github.com/matzehuels/stairforge/pkg/render/sink"
	"github.com/matzehuels/stairforge/pkg/scene"
	"github.com/matzehuels/stairforge/pkg/stair"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Panel
// =============================================================================

const (
	// DefaultView is the default projection for SVG drawings.
	DefaultView = string(sink.ViewPlan)

	// DefaultScale is the default pixel density for SVG drawings.
	DefaultScale = sink.DefaultScale
)

// Format constants for output formats.
const (
	FormatSVG     = "svg"
	FormatOBJ     = "obj"
	FormatJSON    = "json"
	FormatOutline = "outline"
	FormatPDF     = "pdf"
	FormatPNG     = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:     true,
	FormatOBJ:     true,
	FormatJSON:    true,
	FormatOutline: true,
	FormatPDF:     true,
	FormatPNG:     true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Params  stair.Parameters `json:"params"`
	Refresh bool             `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	View    string   `json:"view,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Labels  bool     `json:"labels,omitempty"`

	// Detailed includes kind and dimensions in outline node labels.
	Detailed bool `json:"detailed,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the generated staircase layout.
	Layout scene.Layout

	// LayoutHash is the content hash of the layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	StepCount      int
	PrimitiveCount int
	GenerateTime   time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the generated layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, obj, json, outline, pdf, png)", format)
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

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := o.validateRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks required fields for layout generation.
func (o *Options) ValidateForGenerate() error {
	// A zero parameter set means "use the defaults", matching the CLI.
	if o.Params == (stair.Parameters{}) {
		o.Params = stair.Default()
	}
	if err := o.Params.Validate(); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.View == "" {
		o.View = DefaultView
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return o.validateRender()
}

func (o *Options) validateRender() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := sink.ParseView(o.View); err != nil {
		return err
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		View:     o.View,
		Scale:    o.Scale,
		Labels:   o.Labels,
		Detailed: o.Detailed,
	}
}
