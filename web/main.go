package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/df07/go-raycasting/web/server"
)

// webOptions holds the web server configuration
type webOptions struct {
	Port      int
	StaticDir string
}

// webEnvFlags maps flags to the environment variables that provide their defaults
var webEnvFlags = map[string]string{
	"port":   "RAYCAST_WEB_PORT",
	"static": "RAYCAST_WEB_STATIC_DIR",
}

// parseWebOptions parses args; flags not given on the command line fall back to
// their environment variable
func parseWebOptions(args []string, getenv func(string) string) (*webOptions, error) {
	opts := &webOptions{}
	flags := flag.NewFlagSet("raycaster-web", flag.ContinueOnError)
	flags.IntVar(&opts.Port, "port", 8080, "Port to serve on")
	flags.StringVar(&opts.StaticDir, "static", "static/", "Directory of static files served at /")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	explicit := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	for name, key := range webEnvFlags {
		if explicit[name] {
			continue
		}
		if value := getenv(key); value != "" {
			if err := flags.Set(name, value); err != nil {
				return nil, fmt.Errorf("invalid %s=%q: %w", key, value, err)
			}
		}
	}

	if opts.Port < 0 || opts.Port > 65535 {
		return nil, fmt.Errorf("port must be in [0, 65535], got %d", opts.Port)
	}
	return opts, nil
}

func main() {
	// Optional .env next to the binary
	_ = godotenv.Load()

	opts, err := parseWebOptions(os.Args[1:], os.Getenv)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(2)
	}

	webServer := server.NewServer(opts.Port)
	webServer.SetStaticDir(opts.StaticDir)

	log.Printf("Ray Caster Web Server")
	log.Printf("Visit http://localhost:%d to start rendering", opts.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
