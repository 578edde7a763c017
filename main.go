package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/emildiskin/raytracer/pkg/renderer"
	"github.com/emildiskin/raytracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 500, "Output image width in pixels")
	height := flag.Int("height", 500, "Output image height in pixels")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base seed for soft-shadow sampling")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printUsage()
		return
	}

	var sceneFile, outputFile string
	switch args := flag.Args(); len(args) {
	case 1:
		outputFile = args[0]
	case 2:
		sceneFile = args[0]
		outputFile = args[1]
	default:
		printUsage()
		os.Exit(1)
	}

	sc, err := loadScene(sceneFile)
	if err != nil {
		fatalf("Error loading scene: %v\n", err)
	}

	fmt.Printf("Scene: %d surfaces, %d materials, %d lights\n",
		len(sc.Surfaces), len(sc.Materials), len(sc.Lights))
	fmt.Printf("Settings: %dx%d shadow rays, max recursion %d\n",
		sc.Settings.ShadowRays, sc.Settings.ShadowRays, sc.Settings.MaxRecursion)

	options := renderer.DefaultOptions()
	options.Width = *width
	options.Height = *height
	options.Workers = *workers
	options.Seed = *seed

	r, err := renderer.NewRenderer(sc, options)
	if err != nil {
		fatalf("Error: %v\n", err)
	}

	img, stats := r.Render()
	fmt.Printf("Render completed in %v (%d shadow rays, %d secondary rays)\n",
		stats.Elapsed, stats.ShadowRays, stats.SecondaryRays)

	if err := writePNG(outputFile, img); err != nil {
		fatalf("Error saving PNG: %v\n", err)
	}
	fmt.Printf("Render saved as %s\n", outputFile)
}

// loadScene loads and validates a scene file, or builds the default scene
// when no file is given.
func loadScene(sceneFile string) (*scene.Scene, error) {
	if sceneFile == "" {
		fmt.Println("No scene file given, using the built-in default scene")
		return scene.NewDefaultScene(), nil
	}
	return scene.Load(sceneFile)
}

// writePNG encodes the rendered image to a PNG file.
func writePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func printUsage() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options] [scene.txt] output.png")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("With no scene file the built-in default scene is rendered.")
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
