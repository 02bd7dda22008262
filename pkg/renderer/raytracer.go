package renderer

import (
	"runtime"

	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/geometry"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	NumWorkers int // Number of parallel row workers (0 = use CPU count, 1 = serial)
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		NumWorkers: 1,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCameraConfig() CameraConfig
	GetShapes() geometry.ShapeList
	GetBackgroundColor() core.Color
	GetVisibility() geometry.Visibility
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
		logger: core.NopLogger{},
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetLogger sets the logger used for render progress; nil silences output
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	rt.logger = logger
}

// numWorkers resolves the configured worker count
func (rt *Raytracer) numWorkers() int {
	n := rt.config.NumWorkers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return max(1, min(n, rt.height))
}

// Render casts one ray per pixel and returns the filled frame buffer.
// Pixels whose ray misses every shape keep the scene background color.
func (rt *Raytracer) Render() (*FrameBuffer, RenderStats) {
	fb := NewFrameBuffer(rt.width, rt.height, rt.scene.GetBackgroundColor())
	camera := NewCamera(rt.scene.GetCameraConfig(), rt.width, rt.height)
	workers := rt.numWorkers()

	rt.logger.Printf("Rendering %dx%d with %d worker(s), %s visibility\n",
		rt.width, rt.height, workers, rt.scene.GetVisibility())

	stats := RenderStats{Workers: workers}
	if workers == 1 {
		for y := 0; y < rt.height; y++ {
			stats.addRow(rt.width, rt.renderRow(camera, fb, y))
		}
		return fb, stats
	}

	pool := NewWorkerPool(rt, camera, fb, workers)
	pool.Start()
	for y := 0; y < rt.height; y++ {
		pool.SubmitTask(RowTask{Y: y})
	}
	for i := 0; i < rt.height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.addRow(rt.width, result.Hits)
	}
	pool.Stop()

	return fb, stats
}

// renderRow traces every pixel of row y and returns the number of hits.
// Rows write disjoint ranges of fb.Pix so they can run concurrently.
func (rt *Raytracer) renderRow(camera *Camera, fb *FrameBuffer, y int) int {
	shapes := rt.scene.GetShapes()
	tMin, tMax := rt.scene.GetVisibility().Range()

	hits := 0
	for x := 0; x < rt.width; x++ {
		ray := camera.GetRay(x, y)
		if hit, isHit := shapes.Hit(ray, tMin, tMax); isHit {
			fb.Set(x, y, hit.Color)
			hits++
		}
	}
	return hits
}
