package pipeline

import (
	"context"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stairforge/pkg/cache"
	"github.com/matzehuels/stairforge/pkg/errors"
	"github.com/matzehuels/stairforge/pkg/stair"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, nil, discardLogger())
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{FormatSVG, FormatOBJ, FormatJSON, FormatOutline, FormatPDF, FormatPNG} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q): %v", f, err)
		}
	}

	err := ValidateFormat("stl")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if opts.Params != stair.Default() {
		t.Error("zero parameters should fall back to the defaults")
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.View != DefaultView {
		t.Errorf("View = %q, want %q", opts.View, DefaultView)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %g, want %g", opts.Scale, DefaultScale)
	}

	// Idempotent.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call: %v", err)
	}
}

func TestOptionsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{
			name: "bad step count",
			opts: Options{Params: func() stair.Parameters {
				p := stair.Default()
				p.StepCount = 0
				return p
			}()},
			code: errors.ErrCodeInvalidParameter,
		},
		{
			name: "bad format",
			opts: Options{Formats: []string{"stl"}},
			code: errors.ErrCodeInvalidFormat,
		},
		{
			name: "bad view",
			opts: Options{View: "isometric"},
			code: errors.ErrCodeInvalidView,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.GetCode(err) != tt.code {
				t.Errorf("code = %s, want %s", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	r := testRunner(t)
	defer r.Close()

	opts := Options{
		Params:  stair.Default(),
		Formats: []string{FormatSVG, FormatOBJ, FormatJSON},
		Logger:  discardLogger(),
	}

	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, f := range opts.Formats {
		if len(result.Artifacts[f]) == 0 {
			t.Errorf("missing artifact for %s", f)
		}
	}
	if result.LayoutHash == "" {
		t.Error("missing layout hash")
	}
	if result.Stats.StepCount != 10 {
		t.Errorf("StepCount = %d, want 10", result.Stats.StepCount)
	}
	if result.Stats.PrimitiveCount != 10 {
		t.Errorf("PrimitiveCount = %d, want 10", result.Stats.PrimitiveCount)
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("first run should not hit the cache")
	}
}

func TestExecuteCacheHits(t *testing.T) {
	r := testRunner(t)
	defer r.Close()

	opts := Options{Formats: []string{FormatSVG}, Logger: discardLogger()}
	ctx := context.Background()

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}
	if !reflect.DeepEqual(first.Layout, second.Layout) {
		t.Error("cached layout should round-trip identically")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact should be byte-identical")
	}

	// Refresh bypasses the cache.
	refreshed, err := r.Execute(ctx, Options{Refresh: true, Formats: []string{FormatSVG}, Logger: discardLogger()})
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.CacheInfo.LayoutHit || refreshed.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestExecuteDifferentOptionsMiss(t *testing.T) {
	r := testRunner(t)
	defer r.Close()

	ctx := context.Background()
	if _, err := r.Execute(ctx, Options{Formats: []string{FormatSVG}, Logger: discardLogger()}); err != nil {
		t.Fatal(err)
	}

	// Same layout, different render options: layout hits, artifacts miss.
	result, err := r.Execute(ctx, Options{
		Formats: []string{FormatSVG},
		View:    "elevation",
		Logger:  discardLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !result.CacheInfo.LayoutHit {
		t.Error("layout should hit for identical parameters")
	}
	if result.CacheInfo.RenderHit {
		t.Error("artifacts should miss for different render options")
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, discardLogger())
	defer r.Close()

	p := stair.Default()
	p.StepHeight = -1
	_, err := r.Execute(context.Background(), Options{Params: p})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidParameter {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidParameter)
	}
}

func TestRunnerNilDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Error("NewRunner should fill in nil dependencies")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestRenderStandalone(t *testing.T) {
	r := NewRunner(nil, nil, discardLogger())
	defer r.Close()

	ctx := context.Background()
	layout, err := r.Generate(ctx, Options{Logger: discardLogger()})
	if err != nil {
		t.Fatal(err)
	}

	artifacts, err := r.Render(ctx, layout, Options{
		Formats: []string{FormatOBJ, FormatJSON},
		Logger:  discardLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(artifacts) != 2 {
		t.Errorf("artifact count = %d, want 2", len(artifacts))
	}
}
