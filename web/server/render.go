package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/polds/imgbase64"

	"github.com/df07/go-raycasting/pkg/core"
	"github.com/df07/go-raycasting/pkg/output"
	"github.com/df07/go-raycasting/pkg/renderer"
)

// progressRows is how many rows are rendered between progress events
const progressRows = 16

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "frame", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// ProgressUpdate reports how many rows are done
type ProgressUpdate struct {
	RowsDone  int   `json:"rowsDone"`
	TotalRows int   `json:"totalRows"`
	ElapsedMs int64 `json:"elapsedMs"`
}

// FrameUpdate carries the finished image and its statistics
type FrameUpdate struct {
	ImageData        string  `json:"imageData"` // PNG data URI
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	TotalPixels      int     `json:"totalPixels"`
	HitPixels        int     `json:"hitPixels"`
	AverageLuminance float64 `json:"averageLuminance"`
	ElapsedMs        int64   `json:"elapsedMs"`
	PrimitiveCount   int     `json:"primitiveCount"`
	LightCount       int     `json:"lightCount"`
}

// progressTarget reports progress every progressRows completed rows
type progressTarget struct {
	renderer.Target
	onRows func(rowsDone int)
}

func (pt *progressTarget) Set(x, y int, c core.Vec3) {
	pt.Target.Set(x, y, c)
	if x == pt.Width()-1 && ((y+1)%progressRows == 0 || y == pt.Height()-1) {
		pt.onRows(y + 1)
	}
}

// handleRenderStream renders the requested scene and streams console output,
// progress and the final frame as Server-Sent Events
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan, s.logger)

	forwardDone := make(chan struct{})
	go func() {
		defer close(forwardDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	s.renderStream(ctx, req, webLogger, sseEventChan)

	close(consoleChan)
	<-forwardDone

	s.sendEvent(ctx, sseEventChan, "complete", "Rendering completed")
}

// renderStream renders req and queues progress and frame events
func (s *Server) renderStream(ctx context.Context, req *RenderRequest, logger *WebLogger, sseEventChan chan<- SSEEvent) {
	sceneObj, err := s.createScene(req)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}

	config := req.Config()
	if err := config.Validate(); err != nil {
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}
	integ, err := newIntegrator(config)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", err.Error())
		return
	}

	logger.Printf("Rendering %q at %dx%d with the %s integrator...\n", sceneObj.Name, req.Width, req.Height, req.Integrator)

	start := time.Now()
	img := renderer.NewImage(req.Width, req.Height)
	counter := renderer.NewCountingTarget(img)
	target := &progressTarget{
		Target: counter,
		onRows: func(rowsDone int) {
			s.sendJSONEvent(ctx, sseEventChan, "progress", ProgressUpdate{
				RowsDone:  rowsDone,
				TotalRows: req.Height,
				ElapsedMs: time.Since(start).Milliseconds(),
			})
		},
	}

	if err := renderer.RenderContext(ctx, target, camera(sceneObj), sceneObj, integ); err != nil {
		logger.Printf("Render cancelled: %v\n", err)
		return
	}
	elapsed := time.Since(start)

	var buf bytes.Buffer
	if err := output.Encode(&buf, img.ToRGBA(req.Gamma), output.FormatPNG); err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	total, hits := counter.Counts()
	logger.Printf("Render completed in %v\n", elapsed)
	s.sendJSONEvent(ctx, sseEventChan, "frame", FrameUpdate{
		ImageData:        imgbase64.FromBuffer(buf),
		Width:            req.Width,
		Height:           req.Height,
		TotalPixels:      total,
		HitPixels:        hits,
		AverageLuminance: img.AverageLuminance(),
		ElapsedMs:        elapsed.Milliseconds(),
		PrimitiveCount:   sceneObj.GetPrimitiveCount(),
		LightCount:       sceneObj.GetLightCount(),
	})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents writes every queued event from a single goroutine until the channel closes
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	flusher, _ := w.(http.Flusher)
	clientGone := false

	for event := range sseEventChan {
		// Keep draining after a disconnect so senders never block
		if clientGone {
			continue
		}
		if ctx.Err() != nil {
			clientGone = true
			continue
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			clientGone = true
			continue
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards console messages until consoleChan is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for msg := range consoleChan {
		s.sendJSONEvent(ctx, sseEventChan, "console", msg)
	}
}

// sendJSONEvent marshals data and queues it as an event
func (s *Server) sendJSONEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType string, data interface{}) {
	encoded, err := json.Marshal(data)
	if err != nil {
		s.logger.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}
	s.sendEvent(ctx, sseEventChan, eventType, string(encoded))
}

// sendEvent queues an event unless the client has gone away
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType, data string) {
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: data}:
	case <-ctx.Done():
	}
}
