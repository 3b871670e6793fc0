package pipeline

import (
	"github.com/matzehuels/stairforge/pkg/errors"
	"github.com/matzehuels/stairforge/pkg/render/outline"
	"github.com/matzehuels/stairforge/pkg/render/sink"
	"github.com/matzehuels/stairforge/pkg/scene"
)

// pngScale is the raster zoom for PNG export. 2x suits high-DPI displays.
const pngScale = 2.0

// renderFromLayout renders every requested format from a generated layout.
// Options must already be validated.
func renderFromLayout(l scene.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(l, format, opts)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(l scene.Layout, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, opts.svgOptions()...)
	case FormatOBJ:
		return sink.RenderOBJ(l)
	case FormatJSON:
		return sink.RenderJSON(l)
	case FormatOutline:
		return outline.RenderSVG(outline.ToDOT(l, outline.Options{Detailed: opts.Detailed}))
	case FormatPDF:
		return sink.RenderPDF(l, opts.svgOptions()...)
	case FormatPNG:
		return sink.RenderPNG(l, pngScale, opts.svgOptions()...)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}

// svgOptions translates pipeline options into drawing options.
func (o *Options) svgOptions() []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithView(sink.View(o.View)),
		sink.WithScale(o.Scale),
	}
	if o.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	return svgOpts
}
