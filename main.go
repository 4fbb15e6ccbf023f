package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/integrator"
	"github.com/df07/go-raycasting/pkg/output"
	"github.com/df07/go-raycasting/pkg/renderer"
	"github.com/df07/go-raycasting/pkg/scene"
)

// options holds the command line configuration
type options struct {
	Scene        string
	Lights       string
	Integrator   string
	Width        int
	Height       int
	Epsilon      float64
	MaxSegments  int
	Gamma        float64
	Supersample  int
	Output       string
	UploadBucket string
	UploadKey    string
	EnvFile      string
	Help         bool
}

// envFlags maps flags to the environment variables that provide their defaults
var envFlags = map[string]string{
	"scene":         "RAYCAST_SCENE",
	"lights":        "RAYCAST_LIGHTS",
	"integrator":    "RAYCAST_INTEGRATOR",
	"width":         "RAYCAST_WIDTH",
	"height":        "RAYCAST_HEIGHT",
	"out":           "RAYCAST_OUTPUT",
	"upload-bucket": "S3_BUCKET",
}

func newFlagSet(opts *options) *flag.FlagSet {
	defaults := renderer.DefaultConfig()

	flags := flag.NewFlagSet("raycaster", flag.ContinueOnError)
	flags.StringVar(&opts.Scene, "scene", "default", "Scene: default, spheres, single, spheregrid, cone-lights, cylinder-lights or a path to a .json scene file")
	flags.StringVar(&opts.Lights, "lights", string(scene.DefaultLightMode), "Light mode of the default scene: point, directional, cylinder, cone or all")
	flags.StringVar(&opts.Integrator, "integrator", string(integrator.DefaultType), "Integrator: binary, color, inverse-distance, normal, transparency, diffuse-local or diffuse-direct")
	flags.IntVar(&opts.Width, "width", defaults.Width, "Image width in pixels")
	flags.IntVar(&opts.Height, "height", defaults.Height, "Image height in pixels")
	flags.Float64Var(&opts.Epsilon, "epsilon", defaults.Epsilon, "Offset applied to secondary ray origins")
	flags.IntVar(&opts.MaxSegments, "max-segments", defaults.MaxSegments, "Segment cap of the transparency integrator")
	flags.Float64Var(&opts.Gamma, "gamma", defaults.Gamma, "Gamma used when writing the image (1 = linear)")
	flags.IntVar(&opts.Supersample, "supersample", 1, "Render at N times the size and downscale")
	flags.StringVar(&opts.Output, "out", "", "Output file (.png, .jpg, .gif, .tif, .bmp or .ppm); default output/<scene>/render_<timestamp>.png")
	flags.StringVar(&opts.UploadBucket, "upload-bucket", "", "Upload the render to this S3 bucket")
	flags.StringVar(&opts.UploadKey, "upload-key", "", "Object key of the upload; default is the output file name")
	flags.StringVar(&opts.EnvFile, "env", ".env", "Environment file with RAYCAST_* and S3_* defaults")
	flags.BoolVar(&opts.Help, "help", false, "Show help information")
	return flags
}

// parseOptions parses args, then fills every flag not given on the command line
// from its environment variable
func parseOptions(args []string, getenv func(string) string) (*options, error) {
	opts := &options{}
	flags := newFlagSet(opts)
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	explicit := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	for name, key := range envFlags {
		if explicit[name] {
			continue
		}
		if value := getenv(key); value != "" {
			if err := flags.Set(name, value); err != nil {
				return nil, fmt.Errorf("invalid %s=%q: %w", key, value, err)
			}
		}
	}

	if opts.Supersample < 1 {
		return nil, fmt.Errorf("supersample must be at least 1, got %d", opts.Supersample)
	}
	return opts, nil
}

// envFileArg finds the -env flag value before the full parse, so the file can
// provide defaults for the other flags
func envFileArg(args []string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name != "env" || !strings.HasPrefix(arg, "-") {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ".env"
}

// loadEnvFile loads variables from path without overriding the environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// createScene creates a scene by name or scene file path
func createScene(sceneName, lightMode string) (*scene.Scene, error) {
	mode, err := scene.ParseLightMode(lightMode)
	if err != nil {
		return nil, err
	}
	return scene.Create(sceneName, mode)
}

// defaultOutputPath names the render after the scene and the current time
func defaultOutputPath(sceneName string, now time.Time) string {
	dir := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	return filepath.Join("output", dir, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func renderConfig(opts *options) (renderer.Config, error) {
	integratorType, err := integrator.ParseType(opts.Integrator)
	if err != nil {
		return renderer.Config{}, err
	}
	config := renderer.Config{
		Width:       opts.Width * opts.Supersample,
		Height:      opts.Height * opts.Supersample,
		Integrator:  integratorType,
		Epsilon:     opts.Epsilon,
		MaxSegments: opts.MaxSegments,
		Gamma:       opts.Gamma,
	}
	if err := config.Validate(); err != nil {
		return renderer.Config{}, err
	}
	return config, nil
}

// run renders one image and writes it, uploading it when a bucket is configured
func run(ctx context.Context, opts *options, getenv func(string) string, logger core.Logger) (string, error) {
	selectedScene, err := createScene(opts.Scene, opts.Lights)
	if err != nil {
		return "", err
	}

	config, err := renderConfig(opts)
	if err != nil {
		return "", err
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, config, logger)
	if err != nil {
		return "", err
	}

	img, stats, err := raytracer.RenderPassContext(ctx)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	logger.Printf("%d of %d pixels lit, average luminance %.4f\n",
		stats.HitPixels, stats.TotalPixels, stats.AverageLuminance)

	final := output.Downscale(img.ToRGBA(config.Gamma), opts.Supersample)

	outputPath := opts.Output
	if outputPath == "" {
		outputPath = defaultOutputPath(opts.Scene, time.Now())
	}
	if err := output.Save(outputPath, final); err != nil {
		return "", err
	}
	logger.Printf("Render saved as %s\n", outputPath)

	if opts.UploadBucket == "" {
		return outputPath, nil
	}

	uploader, err := output.NewS3Uploader(output.S3Config{
		Endpoint:  getenv("S3_ENDPOINT"),
		Region:    getenv("S3_REGION"),
		AccessKey: getenv("S3_ACCESS_KEY"),
		SecretKey: getenv("S3_SECRET_KEY"),
		Bucket:    opts.UploadBucket,
		ACL:       getenv("S3_ACL"),
	})
	if err != nil {
		return "", err
	}

	key := opts.UploadKey
	if key == "" {
		key = filepath.ToSlash(outputPath)
	}
	size, err := uploader.UploadImage(ctx, key, final)
	if err != nil {
		return "", err
	}
	logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, uploader.Bucket(), size)

	return outputPath, nil
}

func printHelp(flags *flag.FlagSet) {
	fmt.Println("Ray Caster")
	fmt.Println("Usage: raycaster [options]")
	fmt.Println()
	fmt.Println("Options:")
	flags.SetOutput(os.Stdout)
	flags.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	if scenes, err := scene.ListScenes(); err == nil {
		for _, info := range scenes {
			fmt.Printf("  %-20s %s\n", info.ID, info.Description)
		}
	}
	fmt.Println()
	fmt.Println("Environment (also read from the -env file):")
	fmt.Println("  RAYCAST_SCENE, RAYCAST_LIGHTS, RAYCAST_INTEGRATOR, RAYCAST_WIDTH, RAYCAST_HEIGHT, RAYCAST_OUTPUT")
	fmt.Println("  S3_ENDPOINT, S3_REGION, S3_ACCESS_KEY, S3_SECRET_KEY, S3_BUCKET, S3_ACL")
}

func main() {
	args := os.Args[1:]
	if err := loadEnvFile(envFileArg(args)); err != nil {
		log.Fatalf("Error loading environment: %v", err)
	}

	opts, err := parseOptions(args, os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}

	if opts.Help {
		printHelp(newFlagSet(&options{}))
		return
	}

	fmt.Println("Starting Ray Caster...")
	if _, err := run(context.Background(), opts, os.Getenv, renderer.NewDefaultLogger()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
