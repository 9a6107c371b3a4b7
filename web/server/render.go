package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/alexmoore/go-whitted-raytracer/pkg/math"
	"github.com/alexmoore/go-whitted-raytracer/pkg/renderer"
	"github.com/alexmoore/go-whitted-raytracer/pkg/scene"
)

// RenderRequest is the first message a client sends on the render socket.
// MaxDepth is a pointer so an omitted field falls back to the server
// default instead of being read as an explicit zero.
type RenderRequest struct {
	Scene    string `json:"scene"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MaxDepth *int   `json:"maxDepth,omitempty"`
	Workers  int    `json:"workers"`
}

// RenderMessage is every message the server sends back. Type is one of
// "progress", "complete", or "error".
type RenderMessage struct {
	Type      string `json:"type"`
	JobID     string `json:"jobId,omitempty"`
	RowsDone  int    `json:"rowsDone,omitempty"`
	TotalRows int    `json:"totalRows,omitempty"`
	// ImageData is the finished render as a base64-encoded PNG.
	ImageData string `json:"imageData,omitempty"`
	ElapsedMs int64  `json:"elapsedMs,omitempty"`
	Error     string `json:"error,omitempty"`
}

// validate applies the same bounds as the command line config.
func (r *RenderRequest) validate() error {
	if r.Width <= 0 || r.Height <= 0 || r.Width > 2048 || r.Height > 2048 {
		return fmt.Errorf("image size must be between 1x1 and 2048x2048, got %dx%d", r.Width, r.Height)
	}
	if r.MaxDepth != nil && (*r.MaxDepth < 1 || *r.MaxDepth > 16) {
		return fmt.Errorf("maxDepth must be between 1 and 16, got %d", *r.MaxDepth)
	}
	if r.Workers < 0 || r.Workers > 64 {
		return fmt.Errorf("workers must be between 0 and 64, got %d", r.Workers)
	}
	return nil
}

// handleScenes lists the registered scene names.
func (s *Server) handleScenes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"scenes": scene.List()})
}

// handleRender upgrades to a WebSocket, reads one render request, and
// streams progress followed by the completed image.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// WebSocket connections allow one concurrent writer; progress
	// callbacks arrive from render workers.
	var writeMu sync.Mutex
	send := func(msg RenderMessage) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(msg); err != nil {
			s.logger.Debug("websocket write failed", "error", err)
		}
	}

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		send(RenderMessage{Type: "error", Error: "invalid request: " + err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		send(RenderMessage{Type: "error", Error: err.Error()})
		return
	}

	build, err := scene.Get(req.Scene)
	if err != nil {
		send(RenderMessage{Type: "error", Error: err.Error()})
		return
	}
	world, view := build()

	cam := renderer.NewCamera(req.Width, req.Height, view.FieldOfView)
	if err := cam.SetTransform(math.ViewTransform(view.From, view.To, view.Up)); err != nil {
		send(RenderMessage{Type: "error", Error: err.Error()})
		return
	}

	jobID := uuid.NewString()
	s.logger.Info("render job started",
		"job", jobID, "scene", req.Scene, "size", fmt.Sprintf("%dx%d", req.Width, req.Height))

	maxDepth := 0 // zero lets the renderer apply its default
	if req.MaxDepth != nil {
		maxDepth = *req.MaxDepth
	}

	img, stats, err := renderer.Render(r.Context(), world, cam, renderer.Config{
		MaxDepth:   maxDepth,
		NumWorkers: req.Workers,
		Logger:     s.logger,
		Progress: func(rowsDone, totalRows int) {
			send(RenderMessage{Type: "progress", JobID: jobID, RowsDone: rowsDone, TotalRows: totalRows})
		},
	})
	if err != nil {
		send(RenderMessage{Type: "error", JobID: jobID, Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.ToImage()); err != nil {
		send(RenderMessage{Type: "error", JobID: jobID, Error: "encoding image: " + err.Error()})
		return
	}

	send(RenderMessage{
		Type:      "complete",
		JobID:     jobID,
		RowsDone:  req.Height,
		TotalRows: req.Height,
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		ElapsedMs: stats.Elapsed.Milliseconds(),
	})
	s.logger.Info("render job finished", "job", jobID, "elapsed", stats.Elapsed)
}
