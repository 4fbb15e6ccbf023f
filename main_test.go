package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-raycasting/pkg/integrator"
	"github.com/df07/go-raycasting/pkg/renderer"
)

type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

func noEnv(string) string { return "" }

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		lights      string
		expectError bool
	}{
		{"default scene", "default", "", false},
		{"default scene with all lights", "default", "all", false},
		{"spheres scene", "spheres", "", false},
		{"single scene", "single", "", false},
		{"json scene by path", "scenes/cone-and-cylinder.json", "", false},
		{"second json scene", "scenes/three-point.json", "", false},

		{"unknown scene", "cornell", "", true},
		{"missing json scene", "scenes/nonexistent.json", "", true},
		{"empty scene name", "", "", true},
		{"unknown light mode", "default", "area", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, tt.lights)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for '%s', got %v", tt.sceneType, scene.Name)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneType, err)
			}
			if scene.GetPrimitiveCount() == 0 {
				t.Errorf("Scene '%s' should have shapes", tt.sceneType)
			}
		})
	}
}

func TestParseOptions(t *testing.T) {
	env := map[string]string{
		"RAYCAST_SCENE":      "spheres",
		"RAYCAST_INTEGRATOR": "transparency",
		"RAYCAST_WIDTH":      "320",
	}
	getenv := func(key string) string { return env[key] }

	opts, err := parseOptions([]string{"-width", "100", "-gamma", "1"}, getenv)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if opts.Scene != "spheres" {
		t.Errorf("Expected scene from environment, got %q", opts.Scene)
	}
	if opts.Integrator != "transparency" {
		t.Errorf("Expected integrator from environment, got %q", opts.Integrator)
	}
	if opts.Width != 100 {
		t.Errorf("Expected command line width to win over environment, got %d", opts.Width)
	}
	if opts.Height != renderer.DefaultConfig().Height {
		t.Errorf("Expected default height, got %d", opts.Height)
	}
	if opts.Gamma != 1 {
		t.Errorf("Expected gamma 1, got %f", opts.Gamma)
	}
}

func TestParseOptions_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad width flag", []string{"-width", "wide"}, nil},
		{"bad width env", nil, map[string]string{"RAYCAST_WIDTH": "wide"}},
		{"zero supersample", []string{"-supersample", "0"}, nil},
		{"unknown flag", []string{"-samples", "10"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			if _, err := parseOptions(tt.args, getenv); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestEnvFileArg(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{nil, ".env"},
		{[]string{"-scene", "single"}, ".env"},
		{[]string{"-env", "prod.env"}, "prod.env"},
		{[]string{"--env=ci.env", "-width", "10"}, "ci.env"},
		{[]string{"-scene", "env"}, ".env"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			if got := envFileArg(tt.args); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := loadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Missing env file should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("RAYCAST_TEST_ONLY_VALUE=from-file\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Setenv("RAYCAST_TEST_ONLY_VALUE", "")
	os.Unsetenv("RAYCAST_TEST_ONLY_VALUE")

	if err := loadEnvFile(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := os.Getenv("RAYCAST_TEST_ONLY_VALUE"); got != "from-file" {
		t.Errorf("Expected value from env file, got %q", got)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	tests := []struct {
		sceneName string
		expected  string
	}{
		{"default", filepath.Join("output", "default", "render_20240309_140506.png")},
		{"scenes/three-point.json", filepath.Join("output", "three-point", "render_20240309_140506.png")},
	}

	for _, tt := range tests {
		if got := defaultOutputPath(tt.sceneName, now); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "single.ppm")
	opts, err := parseOptions([]string{
		"-scene", "single",
		"-integrator", string(integrator.TypeDiffuseLocal),
		"-width", "16",
		"-height", "12",
		"-supersample", "2",
		"-out", out,
	}, noEnv)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	path, err := run(context.Background(), opts, noEnv, discardLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if path != out {
		t.Errorf("Expected output %q, got %q", out, path)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if !strings.HasPrefix(string(data), "P6\n16 12\n255\n") {
		t.Errorf("Expected a downscaled 16x12 PPM, got header %q", string(data[:12]))
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	opts, err := parseOptions([]string{"-scene", "single", "-integrator", "photon-mapping"}, noEnv)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := run(context.Background(), opts, noEnv, discardLogger{}); err == nil {
		t.Error("Expected error for unknown integrator")
	}
}
