package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/prismview/pkg/buildinfo"
	"github.com/matzehuels/prismview/pkg/cache"
	"github.com/matzehuels/prismview/pkg/errors"
	"github.com/matzehuels/prismview/pkg/palette"
	"github.com/matzehuels/prismview/pkg/pipeline"
	"github.com/matzehuels/prismview/pkg/render/draw"
	"github.com/matzehuels/prismview/pkg/scene"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

type sceneInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Stages      int    `json:"stages"`
	Colors      int    `json:"colors"`
}

func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	kinds := scene.All()
	out := make([]sceneInfo, len(kinds))
	for i, k := range kinds {
		h := k.Hierarchy()
		out[i] = sceneInfo{
			Name:        k.String(),
			Title:       k.Title(),
			Description: k.Description(),
			Stages:      len(h),
			Colors:      h.ColorCount(),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"scenes": out})
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	f, hit, err := s.runner.GenerateFrameWithCacheInfo(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := draw.MarshalFrame(f)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeArtifact(w, r, pipeline.FormatJSON, data, hit)
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	s.serveRun(w, r, pipeline.VizTypeScene)
}

func (s *Server) handleHierarchy(w http.ResponseWriter, r *http.Request) {
	s.serveRun(w, r, pipeline.VizTypeHierarchy)
}

func (s *Server) serveRun(w http.ResponseWriter, r *http.Request, vizType string) {
	opts, err := s.requestOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	format := chi.URLParam(r, "format")
	opts.VizType = vizType
	opts.Formats = []string{format}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeArtifact(w, r, format, res.Artifacts[format], res.CacheInfo.RenderHit)
}

// fail logs server-side failures before writing the error response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if statusFor(err) >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestID(r.Context()))
	}
	writeError(w, r, err)
}

// requestOptions starts from the server defaults and applies the scene
// path parameter and query overrides.
func (s *Server) requestOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	opts.Formats = nil
	opts.Logger = s.logger
	opts.Scene = chi.URLParam(r, "scene")

	q := r.URL.Query()
	floats := []struct {
		name string
		dst  *float64
		code errors.Code
	}{
		{"width", &opts.Width, errors.ErrCodeInvalidViewport},
		{"height", &opts.Height, errors.ErrCodeInvalidViewport},
		{"scale", &opts.Scale, errors.ErrCodeInvalidInput},
	}
	for _, f := range floats {
		if v := q.Get(f.name); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return opts, errors.New(f.code, "%s: not a number: %q", f.name, v)
			}
			*f.dst = n
		}
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"caption", &opts.Caption},
		{"detailed", &opts.Detailed},
		{"refresh", &opts.Refresh},
	}
	for _, b := range bools {
		if v := q.Get(b.name); v != "" {
			x, err := strconv.ParseBool(v)
			if err != nil {
				return opts, errors.New(errors.ErrCodeInvalidInput, "%s: not a boolean: %q", b.name, v)
			}
			*b.dst = x
		}
	}

	if v := q.Get("metric"); v != "" {
		opts.Metric = v
	}
	if v := q.Get("background"); v != "" {
		if _, err := palette.ParseHex(v); err != nil {
			return opts, err
		}
		opts.Background = v
	}
	return opts, nil
}

// writeArtifact writes data with a content hash ETag and answers
// conditional requests with 304.
func writeArtifact(w http.ResponseWriter, r *http.Request, format string, data []byte, cached bool) {
	etag := `"` + cache.Hash(data)[:32] + `"`
	h := w.Header()
	h.Set("ETag", etag)
	h.Set("Cache-Control", "public, max-age=3600")
	if cached {
		h.Set("X-Cache", "hit")
	} else {
		h.Set("X-Cache", "miss")
	}
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	h.Set("Content-Type", contentTypes[format])
	h.Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
