package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/geometry"
	"github.com/df07/go-sphere-raycaster/pkg/imageio"
	"github.com/df07/go-sphere-raycaster/pkg/renderer"
	"github.com/df07/go-sphere-raycaster/pkg/scene"
)

// options holds the command line configuration for a single render
type options struct {
	Width       int
	Height      int
	Output      string
	Workers     int
	ForwardOnly bool
}

func defaultOptions() options {
	return options{
		Width:   800,
		Height:  600,
		Output:  "flight_paths.png",
		Workers: 1,
	}
}

func (o options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.Output == "" {
		return errors.New("output path must not be empty")
	}
	return nil
}

func main() {
	opts := defaultOptions()

	// Parse command line flags
	flag.IntVar(&opts.Width, "width", opts.Width, "Image width in pixels")
	flag.IntVar(&opts.Height, "height", opts.Height, "Image height in pixels")
	flag.StringVar(&opts.Output, "output", opts.Output, "Output PNG path")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "Number of parallel row workers (0 = use CPU count)")
	flag.BoolVar(&opts.ForwardOnly, "forward-only", opts.ForwardOnly, "Ignore intersections behind the camera")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Raycaster")
		fmt.Println("Usage: raycaster [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if err := opts.validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if err := run(opts, log.Default()); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}

// run renders the default scene and writes it to opts.Output
func run(opts options, logger core.Logger) error {
	s := scene.NewDefaultScene()
	if opts.ForwardOnly {
		s.Visibility = geometry.VisibilityForward
	}

	raytracer := renderer.NewRaytracer(s, opts.Width, opts.Height)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{NumWorkers: opts.Workers})
	raytracer.SetLogger(logger)

	startTime := time.Now()
	fb, stats := raytracer.Render()
	renderTime := time.Since(startTime)

	logger.Printf("Render completed in %v (%d rows, %d worker(s))\n", renderTime, stats.Rows, stats.Workers)
	logger.Printf("Sphere coverage: %.1f%% (%d of %d pixels)\n",
		stats.Coverage()*100, stats.HitPixels, stats.TotalPixels)

	if err := imageio.WritePNG(opts.Output, fb.Width, fb.Height, fb.Pix); err != nil {
		return fmt.Errorf("saving %s: %w", opts.Output, err)
	}

	logger.Printf("Render saved as %s\n", opts.Output)
	return nil
}
