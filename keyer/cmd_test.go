package keyer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func readImage(t *testing.T, path string) image.Image {
	t.Helper()
	img, _, err := load(discardLogger(), path)
	if err != nil {
		t.Fatalf("load(%q) error: %v", path, err)
	}
	return img
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestRun_NoOutputNoPrint(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	cmd, err := parse(t, filepath.Join(dir, "missing.png"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	cmd.Stdout = &out

	if err := cmd.Run(discardLogger()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.String() != usageHint {
		t.Errorf("stdout = %q, want %q", out.String(), usageHint)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Run created %d files, want none", len(entries))
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	cmd, err := parse(t, filepath.Join(dir, "missing.png"), "-o", filepath.Join(dir, "out.png"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := cmd.Run(discardLogger()); err == nil {
		t.Fatal("Run succeeded on a missing input")
	}
	if _, err := os.Stat(filepath.Join(dir, "out.png")); !os.IsNotExist(err) {
		t.Errorf("output exists after failed run: %v", err)
	}
}

func TestRun_SolidGray(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")
	gray := color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	writePNG(t, in, solid(4, 4, gray))

	cmd, err := parse(t, in, "-o", out, "-k", "2", "-e", "0", "--chromakey", "0", "0", "0")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := cmd.Run(discardLogger()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	img := readImage(t, out)
	black := color.NRGBA{A: 255}
	for y := range 4 {
		for x := range 4 {
			want := black
			if x == 3 && y == 3 {
				want = gray
			}
			if got := nrgbaAt(img, x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRun_FillColor(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.bmp")
	writePNG(t, in, solid(4, 4, color.NRGBA{R: 90, G: 90, B: 90, A: 255}))

	cmd, err := parse(t, in, "-o", out, "-k", "2", "-e", "0",
		"--chromakey", "20", "100", "20", "--fill-color", "200", "10", "10")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := cmd.Run(discardLogger()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	img := readImage(t, out)
	if got, want := nrgbaAt(img, 3, 3), (color.NRGBA{R: 200, G: 10, B: 10, A: 255}); got != want {
		t.Errorf("edge pixel = %v, want %v", got, want)
	}
	if got, want := nrgbaAt(img, 0, 0), (color.NRGBA{R: 20, G: 100, B: 20, A: 255}); got != want {
		t.Errorf("background pixel = %v, want %v", got, want)
	}
}

func TestRun_MirrorFlipBeforeProcessing(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.png")

	src := image.NewNRGBA(image.Rect(0, 0, 6, 5))
	for y := range 5 {
		for x := range 6 {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 50), B: uint8((x * y) % 256), A: 255})
		}
	}
	writePNG(t, in, src)

	cmd, err := parse(t, in, "-o", out, "-m", "-f", "-k", "3", "-e", "10")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if err := cmd.Run(discardLogger()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	oriented := image.NewNRGBA(src.Bounds())
	for y := range 5 {
		for x := range 6 {
			oriented.SetNRGBA(x, y, src.NRGBAAt(5-x, 4-y))
		}
	}
	want, err := Process(discardLogger(), oriented, cmd.Params())
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	got := readImage(t, out)
	for y := range 5 {
		for x := range 6 {
			if g, w := nrgbaAt(got, x, y), want.Output.NRGBAAt(x, y); g != w {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, g, w)
			}
		}
	}
}

func TestRun_Print(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	plotFile := filepath.Join(dir, "plot.png")
	writePNG(t, in, solid(4, 4, color.NRGBA{R: 90, G: 90, B: 90, A: 255}))

	cmd, err := parse(t, in, "-p", "--plot-file", plotFile, "-k", "2")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var shown []string
	cmd.Show = func(path string) error {
		shown = append(shown, path)
		return nil
	}

	if err := cmd.Run(discardLogger()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if len(shown) != 1 || shown[0] != plotFile {
		t.Errorf("shown = %v, want [%s]", shown, plotFile)
	}
	sheet := readImage(t, plotFile)
	if b := sheet.Bounds(); b.Dx() != 44 || b.Dy() != 92 {
		t.Errorf("plot size = %dx%d, want 44x92", b.Dx(), b.Dy())
	}
}

func TestRun_PrintNoView(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	plotFile := filepath.Join(dir, "plot.png")
	writePNG(t, in, solid(3, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 255}))

	cmd, err := parse(t, in, "-p", "--no-view", "--plot-file", plotFile, "--colormap", "diverging")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	cmd.Show = func(string) error {
		t.Error("viewer started with --no-view")
		return nil
	}

	if err := cmd.Run(discardLogger()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if _, err := os.Stat(plotFile); err != nil {
		t.Errorf("plot file missing: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CLICmd
		wantErr bool
	}{
		{"defaults", CLICmd{KernelSize: 6, Format: "same", Colormap: "gray"}, false},
		{"smallest kernel", CLICmd{KernelSize: 2, Format: "same", Colormap: "gray"}, false},
		{"largest kernel", CLICmd{KernelSize: 99, Format: "same", Colormap: "gray"}, false},
		{"kernel too small", CLICmd{KernelSize: 1, Format: "same", Colormap: "gray"}, true},
		{"kernel too large", CLICmd{KernelSize: 100, Format: "same", Colormap: "gray"}, true},
		{"unknown extension", CLICmd{KernelSize: 6, Output: "out.xyz", Format: "same", Colormap: "gray"}, true},
		{"explicit format", CLICmd{KernelSize: 6, Output: "out.xyz", Format: "png", Colormap: "gray"}, false},
		{"unknown colormap", CLICmd{KernelSize: 6, Format: "same", Colormap: "jet"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate(nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
