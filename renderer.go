// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rtrace

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/brightforge/rtrace/rng"
)

// throughputOne, black are the throughput bookends used by trace: the accumulator
// starts at (1,1,1) per §4.8 and a miss/depth-exhausted path
// contributes (0,0,0).
var (
	throughputOne = color3{1, 1, 1}
	black         = color3{0, 0, 0}
)

// color3 is a linear RGB accumulator; it is quantized to 8 bits only
// at the very end of a pixel's trace (§4.8's final step).
type color3 struct {
	r, g, b float32
}

func (c color3) add(o color3) color3 { return color3{c.r + o.r, c.g + o.g, c.b + o.b} }
func (c color3) scale(s float32) color3 { return color3{c.r * s, c.g * s, c.b * s} }
func (c color3) mulComponents(o color3) color3 {
	return color3{c.r * o.r, c.g * o.g, c.b * o.b}
}

func vec3(v [3]float32) color3 { return color3{v[0], v[1], v[2]} }

// Renderer is the per-pixel parallel path-tracing loop: for each
// pixel, average sampleCount traced samples, each a bounded recursive
// walk up to recursionDepth bounces. The scene, camera, and render
// parameters are immutable for the duration of a render and shared by
// reference across workers (§5).
type Renderer struct {
	Scene  Scene
	Camera Camera

	sampleCount    int
	recursionDepth int
	seed           uint32

	// Progress, if non-nil, receives a best-effort stream of "N%"
	// lines; it is not part of the rendering contract. Defaults to a
	// styled line written to stderr.
	Progress io.Writer
	Logger   *slog.Logger
}

// NewRenderer builds a renderer with the §4.8 defaults: sample_count
// 1, recursion_depth 1.
func NewRenderer(scene Scene, camera Camera) Renderer {
	return Renderer{
		Scene:          scene,
		Camera:         camera,
		sampleCount:    1,
		recursionDepth: 1,
		seed:           1,
		Progress:       os.Stderr,
		Logger:         slog.Default(),
	}
}

func (r Renderer) WithSampleCount(n int) Renderer    { r.sampleCount = n; return r }
func (r Renderer) WithRecursionDepth(n int) Renderer { r.recursionDepth = n; return r }
func (r Renderer) WithSeed(seed uint32) Renderer     { r.seed = seed; return r }

// Image is a W×H RGB8 raster: pixel (x,y) with y growing downward maps
// directly to row y, column x of Pix (§4.9).
type Image struct {
	Width, Height int
	Pix           []uint8 // RGB8, row-major, 3 bytes per pixel.
}

func newImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

func (img *Image) set(x, y int, c color3) {
	i := (y*img.Width + x) * 3
	img.Pix[i+0] = quantize(c.r)
	img.Pix[i+1] = quantize(c.g)
	img.Pix[i+2] = quantize(c.b)
}

// quantize maps a linear channel to a byte by clamp(floor(c*255),0,255).
// No gamma correction, no tone mapping (§4.8).
func quantize(c float32) uint8 {
	v := float32(int32(c * 255))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// EncodePNG writes the image as a PNG. The PNG encoder is an
// out-of-scope external collaborator the core only consumes (§1); the
// standard library's image/png is the idiomatic choice here.
func (img *Image) EncodePNG(w io.Writer) error {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := (y*img.Width + x) * 3
			rgba.SetRGBA(x, y, color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 255})
		}
	}
	return png.Encode(w, rgba)
}

// SavePNG writes the image to path as a PNG file.
func (img *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &IoError{Path: path, Err: err}
	}
	defer f.Close()
	if err := img.EncodePNG(f); err != nil {
		return &IoError{Path: path, Err: err}
	}
	return nil
}

// row is the unit of work handed to each renderer goroutine: render an
// entire scanline, matching gazed-vu/eg/rt.go's row-per-task worker
// pool (a channel of rows drained by runtime.NumCPU() workers).
type row int

// Render runs the per-pixel parallel loop described in §4.8/§5: the
// pixel grid is partitioned among a worker pool sized to
// runtime.NumCPU(); the scene is shared read-only; the output image is
// written disjointly, one pixel per writer.
func (r Renderer) Render() *Image {
	renderID := uuid.New()
	width, height := r.Camera.Dimensions()
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("render started",
		"render_id", renderID.String(),
		"width", width, "height", height,
		"samples", r.sampleCount, "depth", r.recursionDepth)

	img := newImage(width, height)
	rows := make(chan row, height)
	var wg sync.WaitGroup
	var rowsDone int64
	lastReported := int64(-1)

	procs := runtime.NumCPU()
	for p := 0; p < procs; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rw := range rows {
				r.renderRow(int(rw), img)
				done := atomic.AddInt64(&rowsDone, 1)
				r.reportProgress(done, int64(height), &lastReported, renderID)
			}
		}()
	}
	for y := 0; y < height; y++ {
		rows <- row(y)
	}
	close(rows)
	wg.Wait()

	logger.Info("render finished", "render_id", renderID.String())
	return img
}

// reportProgress emits a best-effort ~1% granularity progress line
// (§4.9); it is never part of the rendering contract and failures to
// write are ignored.
func (r Renderer) reportProgress(done, total int64, lastReported *int64, renderID uuid.UUID) {
	if r.Progress == nil || total == 0 {
		return
	}
	percent := done * 100 / total
	if percent == atomic.LoadInt64(lastReported) {
		return
	}
	atomic.StoreInt64(lastReported, percent)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	line := style.Render(renderID.String()[:8]) + " " +
		lipgloss.NewStyle().Bold(true).Render(progressBar(int(percent)))
	io.WriteString(r.Progress, line+"\n")
}

func progressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return strconv.Itoa(percent) + "%"
}

func (r Renderer) renderRow(y int, img *Image) {
	width, _ := r.Camera.Dimensions()
	for x := 0; x < width; x++ {
		accum := black
		for s := 0; s < r.sampleCount; s++ {
			src := rng.New(x, y, s, r.seed)
			ray := r.Camera.JitteredRay(x, y, src.Float32)
			accum = accum.add(r.trace(ray, 0, throughputOne, src))
		}
		img.set(x, y, accum.scale(1/float32(r.sampleCount)))
	}
}

// trace is the recursive Whitted-style walk described in §4.8:
// terminate past recursionDepth, intersect at (0.01, 100.0), gather
// emissive*throughput*5.0, attenuate throughput by diffuse
// (componentwise), and recurse along a random outgoing ray from the
// hit. Order matters: throughput is updated before the recursive call,
// and that call's result is added after the local emissive term.
func (r Renderer) trace(ray Ray, depth int, throughput color3, src *rng.Source) color3 {
	if depth > r.recursionDepth {
		return black
	}
	hit, ok := r.Scene.Intersect(ray, 0.01, 100.0)
	if !ok {
		return black
	}

	mat := r.Scene.Material(hit.MaterialIndex)
	color := vec3([3]float32{mat.Emissive[0], mat.Emissive[1], mat.Emissive[2]}).mulComponents(throughput).scale(5.0)
	throughput = throughput.mulComponents(vec3([3]float32{mat.Diffuse[0], mat.Diffuse[1], mat.Diffuse[2]}))
	color = color.add(r.trace(hit.RandomOutgoingRay(r.Scene.Mesh, src.Float32), depth+1, throughput, src))
	return color
}
