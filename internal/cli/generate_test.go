package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/photosheet/pkg/errors"
	"github.com/matzehuels/photosheet/pkg/observability"
)

func writeTestPhoto(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "photo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, imaging.New(1000, 1500, color.NRGBA{R: 90, G: 120, B: 200, A: 255})); err != nil {
		t.Fatal(err)
	}
	return path
}

func runRoot(ctx context.Context, t *testing.T, args ...string) error {
	t.Helper()
	return runRootStatus(ctx, t, io.Discard, args...)
}

// runRootStatus runs the root command with progress output sent to status.
func runRootStatus(ctx context.Context, t *testing.T, status io.Writer, args ...string) error {
	t.Helper()
	t.Cleanup(observability.Reset)
	c := New(io.Discard, LogInfo)
	c.Status = status
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(ctx)
}

func TestRootGeneratesPDF(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPhoto(t, dir)
	output := filepath.Join(dir, "sheet.pdf")

	if err := runRoot(context.Background(), t, input, output); err != nil {
		t.Fatalf("photosheet %s %s: %v", input, output, err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output should be a PDF")
	}
}

func TestRootStatusOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPhoto(t, dir)

	tests := []struct {
		name   string
		input  string
		ok     bool
		want   []string
		reject []string
	}{
		{"success", input, true, []string{"Building 3×2 sheet..."}, []string{"Sheet failed"}},
		{"missing input", filepath.Join(dir, "nope.jpg"), false, []string{"Building 3×2 sheet...", "Sheet failed"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var status bytes.Buffer
			err := runRootStatus(context.Background(), t, &status, tt.input, filepath.Join(t.TempDir(), "sheet.pdf"))
			if (err == nil) != tt.ok {
				t.Fatalf("error = %v, want ok=%v", err, tt.ok)
			}
			out := status.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("status output missing %q: %q", want, out)
				}
			}
			for _, reject := range tt.reject {
				if strings.Contains(out, reject) {
					t.Errorf("status output should not contain %q: %q", reject, out)
				}
			}
		})
	}
}

func TestRootPNGWithFlags(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPhoto(t, dir)
	output := filepath.Join(dir, "sheet.out")

	err := runRoot(context.Background(), t, "--format", "png", "--orientation", "landscape", "--rows", "2", "--cols", "3", input, output)
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 1800 || cfg.Height != 1200 {
		t.Errorf("size = %dx%d, want 1800x1200", cfg.Width, cfg.Height)
	}
}

func TestRootErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPhoto(t, dir)
	output := filepath.Join(dir, "sheet.pdf")

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"no args", nil, errors.ErrCodeInvalidInput},
		{"one arg", []string{input}, errors.ErrCodeInvalidInput},
		{"three args", []string{input, output, "extra"}, errors.ErrCodeInvalidInput},
		{"missing input", []string{filepath.Join(dir, "nope.jpg"), output}, errors.ErrCodeInputNotFound},
		{"grid overflow", []string{"--rows", "4", input, output}, errors.ErrCodeInvalidConfig},
		{"unknown preset", []string{"--preset", "tiny", input, output}, errors.ErrCodeInvalidConfig},
		{"bad format", []string{"--format", "gif", input, output}, errors.ErrCodeInvalidFormat},
		{"missing config", []string{"--config", filepath.Join(dir, "none.toml"), input, output}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runRoot(context.Background(), t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
			if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
				t.Error("failed run must not create output")
			}
		})
	}
}

func TestRootCancelled(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPhoto(t, dir)
	output := filepath.Join(dir, "sheet.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runRoot(ctx, t, input, output)
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("cancelled run must not create output")
	}
}

func TestSubcommands(t *testing.T) {
	if err := runRoot(context.Background(), t, "presets"); err != nil {
		t.Errorf("presets: %v", err)
	}
	if err := runRoot(context.Background(), t, "layout", "--preset", "classic"); err != nil {
		t.Errorf("layout: %v", err)
	}
	if err := runRoot(context.Background(), t, "layout", "--cols", "3"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("layout --cols 3 = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
