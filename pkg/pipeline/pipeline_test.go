package pipeline

import (
	"testing"

	"github.com/matzehuels/prismview/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateVizType(t *testing.T) {
	tests := []struct {
		vizType string
		wantErr bool
	}{
		{"scene", false},
		{"hierarchy", false},
		{"tower", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateVizType(tt.vizType)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVizType(%q) error = %v, wantErr %v", tt.vizType, err, tt.wantErr)
		}
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"unknown scene", Options{Scene: "mandelbrot"}, errors.ErrCodeInvalidScene},
		{"negative width", Options{Width: -1}, errors.ErrCodeInvalidViewport},
		{"huge height", Options{Height: 1e6}, errors.ErrCodeInvalidViewport},
		{"bad metric", Options{Metric: "euclid"}, errors.ErrCodeInvalidMetric},
		{"bad viz type", Options{VizType: "tower"}, errors.ErrCodeInvalidVizType},
		{"bad format", Options{Formats: []string{"pdf"}}, errors.ErrCodeInvalidFormat},
		{"bad scale", Options{Scale: 20}, errors.ErrCodeInvalidInput},
		{"scaled png canvas too large", Options{Width: 8192, Height: 8192, Scale: 8, Formats: []string{FormatPNG}}, errors.ErrCodeInvalidViewport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestOptionsCanvasOnlyBoundsRaster(t *testing.T) {
	svg := Options{Width: 8192, Height: 8192, Scale: 8, Formats: []string{FormatSVG}}
	if err := svg.ValidateAndSetDefaults(); err != nil {
		t.Errorf("svg at scale 8: %v", err)
	}
	png := Options{Width: 1024, Height: 1024, Scale: 8, Formats: []string{FormatPNG}}
	if err := png.ValidateAndSetDefaults(); err != nil {
		t.Errorf("png at the canvas limit: %v", err)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Scene: "color-peaks"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	before := opts

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if opts.Scene != before.Scene || opts.Width != before.Width || opts.Metric != before.Metric {
		t.Error("options changed on second call")
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.Scene != DefaultScene {
		t.Errorf("Scene should be %s, got %s", DefaultScene, opts.Scene)
	}
	if opts.VizType != VizTypeScene {
		t.Errorf("VizType should be %s, got %s", VizTypeScene, opts.VizType)
	}
	if opts.Width != DefaultWidth {
		t.Errorf("Width should be %f, got %f", DefaultWidth, opts.Width)
	}
	if opts.Height != DefaultHeight {
		t.Errorf("Height should be %f, got %f", DefaultHeight, opts.Height)
	}
	if opts.Metric != "truncated" {
		t.Errorf("Metric should be truncated, got %s", opts.Metric)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale should be %f, got %f", DefaultScale, opts.Scale)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Scene: "gradients", Scale: 2, Caption: true, Detailed: true}

	svg := opts.ArtifactKeyOpts(FormatSVG)
	if svg.Scale != 0 {
		t.Error("scale should only affect PNG keys")
	}
	if svg.Detailed {
		t.Error("detailed should only affect hierarchy keys")
	}
	if svg.Caption != "Gradients" {
		t.Errorf("caption = %q", svg.Caption)
	}
	if opts.ArtifactKeyOpts(FormatPNG).Scale != 2 {
		t.Error("PNG key should carry the scale")
	}

	opts.VizType = VizTypeHierarchy
	if !opts.ArtifactKeyOpts(FormatSVG).Detailed {
		t.Error("hierarchy keys should carry the detailed flag")
	}
}
