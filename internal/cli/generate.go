package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stairforge/pkg/pipeline"
	"github.com/matzehuels/stairforge/pkg/preset"
	"github.com/matzehuels/stairforge/pkg/stair"
)

// =============================================================================
// Parameter Flags
// =============================================================================

// paramFlags holds the staircase parameter flags shared by the generate and
// preset commands. Defaults mirror stair.Default so --help shows them.
type paramFlags struct {
	steps     int
	height    float64
	width     float64
	depth     float64
	thickness float64
	railings  bool
	curved    bool
	radius    float64
	direction string
}

func newParamFlags() *paramFlags {
	d := stair.Default()
	return &paramFlags{
		steps:     d.StepCount,
		height:    d.StepHeight,
		width:     d.StepWidth,
		depth:     d.StepDepth,
		thickness: d.StepThickness,
		radius:    d.CurveRadius,
		direction: string(d.Direction),
	}
}

// register adds the parameter flags to cmd.
func (f *paramFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.steps, "steps", "n", f.steps, "number of steps")
	cmd.Flags().Float64Var(&f.height, "height", f.height, "rise per step")
	cmd.Flags().Float64Var(&f.width, "width", f.width, "step width")
	cmd.Flags().Float64Var(&f.depth, "depth", f.depth, "step depth (tread run)")
	cmd.Flags().Float64Var(&f.thickness, "thickness", f.thickness, "step board thickness")
	cmd.Flags().BoolVar(&f.railings, "railings", false, "add railings")
	cmd.Flags().BoolVar(&f.curved, "curved", false, "build a spiral staircase")
	cmd.Flags().Float64Var(&f.radius, "radius", f.radius, "spiral radius (curved only)")
	cmd.Flags().StringVar(&f.direction, "direction", f.direction, "slope direction: upward, downward, flat (straight only)")
}

// apply overlays the flags the user actually set onto params. Untouched
// flags leave preset or default values alone.
func (f *paramFlags) apply(cmd *cobra.Command, params *stair.Parameters) error {
	set := cmd.Flags().Changed

	if set("steps") {
		params.StepCount = f.steps
	}
	if set("height") {
		params.StepHeight = f.height
	}
	if set("width") {
		params.StepWidth = f.width
	}
	if set("depth") {
		params.StepDepth = f.depth
	}
	if set("thickness") {
		params.StepThickness = f.thickness
	}
	if set("railings") {
		params.Railings = f.railings
	}
	if set("curved") {
		params.Curved = f.curved
	}
	if set("radius") {
		params.CurveRadius = f.radius
	}
	if set("direction") {
		dir, err := stair.ParseDirection(f.direction)
		if err != nil {
			return err
		}
		params.Direction = dir
	}
	return nil
}

// =============================================================================
// Generate Command
// =============================================================================

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	params   *paramFlags
	preset   string   // preset name to load parameters from
	formats  []string // output formats: svg, obj, json, outline, pdf, png
	view     string   // drawing projection: plan or elevation
	scale    float64  // pixels per world unit
	labels   bool     // annotate primitives with names
	detailed bool     // detailed outline node labels
	output   string   // output file path (or base path for multiple formats)
	noCache  bool     // disable the layout/artifact cache
	refresh  bool     // regenerate even on a cache hit
}

// generateCommand creates the generate command, the CLI's main entry point.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		params: newParamFlags(),
		view:   pipeline.DefaultView,
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a staircase layout and render it",
		Example: `  stairforge generate -n 12 --railings
  stairforge generate --curved --radius 3 -f svg,obj -o spiral
  stairforge generate --preset front-porch -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr == "" {
				formatsStr = c.Config.Generate.Formats
			}
			opts.formats = parseFormats(formatsStr)
			if !cmd.Flags().Changed("view") && c.Config.Generate.View != "" {
				opts.view = c.Config.Generate.View
			}
			return c.runGenerate(cmd, &opts)
		},
	}

	opts.params.register(cmd)
	cmd.Flags().StringVar(&opts.preset, "preset", "", "load parameters from a stored preset")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), obj, json, outline, pdf, png (comma-separated)")
	cmd.Flags().StringVar(&opts.view, "view", opts.view, "drawing projection: plan, elevation")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "drawing scale in pixels per unit")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "annotate primitives with their names")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "detailed outline node labels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout and artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate even if cached")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := withLogger(cmd.Context(), c.Logger)

	params, err := c.resolveParams(ctx, cmd, opts.params, opts.preset)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Params:   params,
		Refresh:  opts.refresh,
		Formats:  opts.formats,
		View:     opts.view,
		Scale:    opts.scale,
		Labels:   opts.labels,
		Detailed: opts.detailed,
		Logger:   c.Logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d primitives", result.Stats.PrimitiveCount))

	printSuccess("Generated %s", params.Describe())
	printStats(result.Stats.StepCount, result.Stats.PrimitiveCount,
		result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)

	for _, format := range opts.formats {
		path := outputPath(opts.output, format, len(opts.formats) > 1)
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}

	printNextStep("Tweak interactively", "stairforge panel")
	return nil
}

// resolveParams builds the parameter set from the preset (if any) overlaid
// with explicitly set flags.
func (c *CLI) resolveParams(ctx context.Context, cmd *cobra.Command, flags *paramFlags, presetName string) (stair.Parameters, error) {
	params := stair.Default()

	if presetName != "" {
		store, err := preset.NewFileStore("")
		if err != nil {
			return stair.Parameters{}, err
		}
		defer store.Close()

		p, err := store.Get(ctx, presetName)
		if err != nil {
			return stair.Parameters{}, err
		}
		params = p.Params
		loggerFromContext(ctx).Debug("loaded preset", "name", presetName)
	}

	if err := flags.apply(cmd, &params); err != nil {
		return stair.Parameters{}, err
	}
	return params, nil
}

// artifactExtensions maps formats to file extensions. The outline format is
// rendered SVG, so it shares the extension.
var artifactExtensions = map[string]string{
	pipeline.FormatSVG:     "svg",
	pipeline.FormatOBJ:     "obj",
	pipeline.FormatJSON:    "json",
	pipeline.FormatOutline: "svg",
	pipeline.FormatPDF:     "pdf",
	pipeline.FormatPNG:     "png",
}

// outputPath derives the output file path for a format. With multiple
// formats the format name is embedded so files never collide (the outline
// format renders to SVG and would otherwise overwrite the drawing).
func outputPath(output, format string, multiple bool) string {
	ext := artifactExtensions[format]

	base := output
	if base == "" {
		base = "stairs"
	} else if e := filepath.Ext(base); e != "" && strings.TrimPrefix(e, ".") == ext && !multiple {
		return base
	}

	if multiple {
		return fmt.Sprintf("%s_%s.%s", base, format, ext)
	}
	return fmt.Sprintf("%s.%s", base, ext)
}

// writeArtifact writes artifact data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
