package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/pipeline"
)

// testEnv isolates config and cache directories for one test.
type testEnv struct {
	t         *testing.T
	cacheHome string
	out       string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	env := &testEnv{
		t:         t,
		cacheHome: filepath.Join(root, "cache"),
		out:       filepath.Join(root, "out"),
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_CACHE_HOME", env.cacheHome)
	return env
}

func (e *testEnv) run(args ...string) error {
	e.t.Helper()
	cmd := New(io.Discard, LogInfo).RootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}

func (e *testEnv) exists(name string) bool {
	_, err := os.Stat(filepath.Join(e.out, name))
	return err == nil
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"render", "layout", "visualize", "hierarchy", "scenes", "view", "serve", "cache", "config", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,png", []string{"svg", "png"}},
		{" svg , json ,", []string{"svg", "json"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"out/wheel.svg", "out/wheel"},
		{"wheel.png", "wheel"},
		{"hue-wheel.frame.json", "hue-wheel"},
		{"wheel.json", "wheel"},
		{"wheel.pdf", "wheel.pdf"},
		{"wheel", "wheel"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := basePath(tt.input); got != tt.want {
				t.Errorf("basePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSceneArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		all     bool
		want    []string
		wantErr errors.Code
	}{
		{"default", nil, false, []string{pipeline.DefaultScene}, ""},
		{"all", nil, true, []string{"hue-wheel", "color-peaks", "gradients"}, ""},
		{"dedup", []string{"gradients", "gradients", "hue-wheel"}, false, []string{"gradients", "hue-wheel"}, ""},
		{"unknown", []string{"mandala"}, false, nil, errors.ErrCodeInvalidScene},
		{"all with names", []string{"gradients"}, true, nil, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sceneArgs(tt.args, tt.all)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("sceneArgs() error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("sceneArgs() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sceneArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderFlagsApplyOnlyChanged(t *testing.T) {
	var flags renderFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	flags.registerLayout(cmd)
	flags.registerRender(cmd)
	if err := cmd.ParseFlags([]string{"--width", "320", "-f", "png", "--refresh"}); err != nil {
		t.Fatal(err)
	}

	opts := pipeline.Options{Width: 1000, Height: 700, Metric: "continuous", Scale: 3}
	flags.apply(cmd, &opts)

	if opts.Width != 320 {
		t.Errorf("Width = %v, want 320", opts.Width)
	}
	if opts.Height != 700 {
		t.Errorf("Height = %v, want config value 700", opts.Height)
	}
	if opts.Metric != "continuous" {
		t.Errorf("Metric = %q, want config value", opts.Metric)
	}
	if opts.Scale != 3 {
		t.Errorf("Scale = %v, want config value 3", opts.Scale)
	}
	if !reflect.DeepEqual(opts.Formats, []string{"png"}) {
		t.Errorf("Formats = %v, want [png]", opts.Formats)
	}
	if !opts.Refresh {
		t.Error("Refresh not applied")
	}
}

func TestFormatError(t *testing.T) {
	err := errors.New(errors.ErrCodeInvalidScene, "unknown scene %q", "x")
	got := FormatError(err)
	if !strings.Contains(got, "INVALID_SCENE") || strings.Count(got, "INVALID_SCENE") != 1 {
		t.Errorf("FormatError() = %q, want the code exactly once", got)
	}
}

// =============================================================================
// Commands
// =============================================================================

func TestRenderCommand(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("render", "color-peaks", "--dir", env.out, "-f", "svg,json", "--width", "400", "--height", "300"); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"color-peaks.svg", "color-peaks.json"} {
		if !env.exists(name) {
			t.Errorf("%s not written", name)
		}
	}
}

func TestRenderAll(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("render", "--all", "--dir", env.out, "--no-cache"); err != nil {
		t.Fatalf("render --all: %v", err)
	}
	for _, name := range []string{"hue-wheel.svg", "color-peaks.svg", "gradients.svg"} {
		if !env.exists(name) {
			t.Errorf("%s not written", name)
		}
	}
}

func TestRenderExactOutput(t *testing.T) {
	env := newTestEnv(t)
	out := filepath.Join(env.out, "wheel.svg")

	if err := env.run("render", "hue-wheel", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !env.exists("wheel.svg") {
		t.Error("-o path not honored")
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown scene", []string{"render", "mandala"}, errors.ErrCodeInvalidScene},
		{"bad format", []string{"render", "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"bad width", []string{"render", "--width", "-5"}, errors.ErrCodeInvalidViewport},
		{"output with many scenes", []string{"render", "hue-wheel", "gradients", "-o", "x.svg"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			err := env.run(append(tt.args, "--no-cache")...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLayoutThenVisualize(t *testing.T) {
	env := newTestEnv(t)
	frame := filepath.Join(env.out, "hue-wheel.frame.json")
	if err := os.MkdirAll(env.out, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := env.run("layout", "hue-wheel", "-o", frame); err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !env.exists("hue-wheel.frame.json") {
		t.Fatal("frame not written")
	}

	if err := env.run("visualize", frame, "-f", "svg,json"); err != nil {
		t.Fatalf("visualize: %v", err)
	}
	for _, name := range []string{"hue-wheel.svg", "hue-wheel.json"} {
		if !env.exists(name) {
			t.Errorf("%s not written", name)
		}
	}
}

func TestVisualizeRejectsBrokenFrame(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "broken.frame.json")
	if err := os.WriteFile(path, []byte(`{"scene":"hue-wheel","viewport":{"width":0,"height":0}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := env.run("visualize", path); err == nil {
		t.Error("visualize accepted a frame with an empty viewport")
	}
}

func TestHierarchyJSON(t *testing.T) {
	env := newTestEnv(t)

	if err := env.run("hierarchy", "gradients", "--dir", env.out, "-f", "json"); err != nil {
		t.Fatalf("hierarchy: %v", err)
	}
	if !env.exists("gradients.hierarchy.json") {
		t.Error("gradients.hierarchy.json not written")
	}
}

func TestScenesCommand(t *testing.T) {
	env := newTestEnv(t)
	if err := env.run("scenes"); err != nil {
		t.Fatalf("scenes: %v", err)
	}

	rows := sceneRows()
	if len(rows) != 3 {
		t.Fatalf("sceneRows() = %d rows, want 3", len(rows))
	}
	if rows[0][0] != "hue-wheel" {
		t.Errorf("first row = %v, want hue-wheel first", rows[0])
	}
}

func TestConfigInit(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "prismview.toml")

	if err := env.run("--config", path, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if err := env.run("--config", path, "config", "init"); err == nil {
		t.Error("config init overwrote an existing file without --force")
	}
	if err := env.run("--config", path, "config", "init", "--force"); err != nil {
		t.Errorf("config init --force: %v", err)
	}
	if err := env.run("--config", path, "config", "show"); err != nil {
		t.Errorf("config show: %v", err)
	}
}

func TestBrokenConfigIsReported(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[viewport]\nwidht = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := env.run("--config", path, "render", "--dir", env.out); err == nil {
		t.Error("render ran with an unknown config key")
	}
	if err := env.run("--config", path, "scenes"); err != nil {
		t.Errorf("scenes should not load the config: %v", err)
	}
}

func TestListenURL(t *testing.T) {
	tests := map[string]string{
		":8080":          "http://localhost:8080",
		"0.0.0.0:9000":   "http://localhost:9000",
		"127.0.0.1:8080": "http://127.0.0.1:8080",
		"[::]:8080":      "http://localhost:8080",
		"bogus":          "bogus",
	}
	for addr, want := range tests {
		if got := listenURL(addr); got != want {
			t.Errorf("listenURL(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestCompletionScripts(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for shell, gen := range completionGenerators {
		var sb strings.Builder
		if err := gen(root, &sb); err != nil {
			t.Errorf("%s completion: %v", shell, err)
			continue
		}
		if !strings.Contains(sb.String(), appName) {
			t.Errorf("%s completion does not mention %s", shell, appName)
		}
	}
}
