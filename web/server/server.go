package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/geometry"
	"github.com/df07/go-raycasting/pkg/integrator"
	"github.com/df07/go-raycasting/pkg/output"
	"github.com/df07/go-raycasting/pkg/renderer"
	"github.com/df07/go-raycasting/pkg/scene"
)

// Request size limits
const (
	MinImageSize     = 1
	MaxImageSize     = 2000
	DefaultWidth     = 400
	DefaultHeight    = 300
	MaxSegmentsLimit = 1000
)

// Server handles web requests for the ray caster
type Server struct {
	port      int
	staticDir string
	logger    core.Logger
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port:      port,
		staticDir: "static/",
		logger:    log.Default(),
	}
}

// SetStaticDir sets the directory served at /
func (s *Server) SetStaticDir(dir string) {
	s.staticDir = dir
}

// SetLogger replaces the server log
func (s *Server) SetLogger(logger core.Logger) {
	s.logger = logger
}

// RenderRequest holds the parameters shared by the render and inspect endpoints
type RenderRequest struct {
	Scene       string          `json:"scene"`
	Lights      scene.LightMode `json:"lights"`
	Integrator  integrator.Type `json:"integrator"`
	Width       int             `json:"width"`
	Height      int             `json:"height"`
	Gamma       float64         `json:"gamma"`
	Epsilon     float64         `json:"epsilon"`
	MaxSegments int             `json:"maxSegments"`
}

// Config returns the renderer configuration of the request
func (req *RenderRequest) Config() renderer.Config {
	return renderer.Config{
		Width:       req.Width,
		Height:      req.Height,
		Integrator:  req.Integrator,
		Epsilon:     req.Epsilon,
		MaxSegments: req.MaxSegments,
		Gamma:       req.Gamma,
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render/stream", s.handleRenderStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in and file scenes with the accepted parameter values
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListScenes()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scenes":      scenes,
		"lightModes":  scene.LightModes(),
		"integrators": integrator.Types(),
		"defaults": map[string]interface{}{
			"scene":       "default",
			"lights":      scene.DefaultLightMode,
			"integrator":  integrator.DefaultType,
			"width":       DefaultWidth,
			"height":      DefaultHeight,
			"gamma":       renderer.DefaultConfig().Gamma,
			"epsilon":     core.DefaultEpsilon,
			"maxSegments": integrator.DefaultMaxSegments,
		},
		"limits": map[string]interface{}{
			"width":       map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"height":      map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"maxSegments": map[string]int{"min": 1, "max": MaxSegmentsLimit},
		},
	})
}

// handleRender renders the requested scene once and answers with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	raytracer, err := renderer.NewRaytracer(sceneObj, req.Config(), s.logger)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, stats, err := raytracer.RenderPassContext(r.Context())
	if err != nil {
		// Client went away
		return
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, img.ToRGBA(req.Gamma), output.FormatPNG); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", output.FormatPNG.ContentType())
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Hit-Pixels", strconv.Itoa(stats.HitPixels))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses and validates the query parameters of a render request
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Lights, err = scene.ParseLightMode(query.Get("lights")); err != nil {
		return nil, err
	}
	if req.Integrator, err = integrator.ParseType(query.Get("integrator")); err != nil {
		return nil, err
	}
	if req.Width, err = parseIntParam(query, "width", DefaultWidth, MinImageSize, MaxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", DefaultHeight, MinImageSize, MaxImageSize); err != nil {
		return nil, err
	}
	if req.Gamma, err = parseFloatParam(query, "gamma", renderer.DefaultConfig().Gamma, 0.1, 10); err != nil {
		return nil, err
	}
	if req.Epsilon, err = parseFloatParam(query, "epsilon", core.DefaultEpsilon, 1e-9, 1); err != nil {
		return nil, err
	}
	if req.MaxSegments, err = parseIntParam(query, "maxSegments", integrator.DefaultMaxSegments, 1, MaxSegmentsLimit); err != nil {
		return nil, err
	}

	return req, nil
}

// createScene builds the requested scene. Only listed scenes can be served.
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.CreateListed(req.Scene, req.Lights)
	if err != nil {
		return nil, fmt.Errorf("unknown scene %q: %w", req.Scene, err)
	}
	return sceneObj, nil
}

// newIntegrator creates the integrator selected by config
func newIntegrator(config renderer.Config) (integrator.Integrator, error) {
	return integrator.New(config.Integrator, config.IntegratorOptions())
}

// camera returns the camera of a scene
func camera(sceneObj *scene.Scene) core.Camera {
	return geometry.NewCamera(sceneObj.CameraConfig)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
