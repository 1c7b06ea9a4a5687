package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/thangdevalone/meeting-layout-grid/pkg/cache"
	"github.com/thangdevalone/meeting-layout-grid/pkg/frame"
	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout/pinned"
	"github.com/thangdevalone/meeting-layout-grid/pkg/pipeline"
)

// computeResponse is the body returned by POST /v1/layout.
type computeResponse struct {
	Frame     json.RawMessage `json:"frame"`
	FrameHash string          `json:"frame_hash"`
	CacheHit  bool            `json:"cache_hit"`
}

// applyConfigDefaults fills request fields the caller omitted from the
// server configuration.
func (s *Server) applyConfigDefaults(opts *pipeline.Options) {
	if opts.Layout.AspectRatio == "" {
		opts.Layout.AspectRatio = s.cfg.Layout.AspectRatio
	}
	if opts.Layout.Gap == 0 && s.cfg.Layout.Gap > 0 {
		opts.Layout.Gap = s.cfg.Layout.Gap
	}
	if len(opts.Layout.FloatBreakpoints) == 0 {
		opts.Layout.FloatBreakpoints = s.cfg.Layout.Breakpoints
	}
}

// handleComputeLayout computes a frame from JSON options.
// POST /v1/layout
func (s *Server) handleComputeLayout(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid JSON body: "+err.Error())
		return
	}
	s.applyConfigDefaults(&opts)

	f, hit, err := s.runner.ComputeWithCacheInfo(r.Context(), opts)
	if err != nil {
		status, code := http.StatusUnprocessableEntity, ErrCodeComputeFailed
		var ratioErr *geometry.InvalidRatioError
		if errors.As(err, &ratioErr) {
			status, code = http.StatusBadRequest, ErrCodeInvalidRequest
		}
		writeError(w, r, status, code, err.Error())
		return
	}

	frameData, err := frame.Marshal(f)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, computeResponse{
		Frame:     frameData,
		FrameHash: cache.Hash(frameData),
		CacheHit:  hit,
	})
}

// handleLayoutSVG renders a layout directly to SVG from query parameters.
// GET /v1/layout/svg?count=6&width=1280&height=720
func (s *Server) handleLayoutSVG(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	s.applyConfigDefaults(&opts)
	opts.Formats = []string{pipeline.FormatSVG}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, ErrCodeRenderFailed, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
}

// optionsFromQuery builds pipeline options from URL query parameters.
func optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options
	q := r.URL.Query()

	intParam := func(name string, dst *int) error {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.New("invalid " + name + ": " + v)
			}
			*dst = n
		}
		return nil
	}
	floatParam := func(name string, dst *float64) error {
		if v := q.Get(name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return errors.New("invalid " + name + ": " + v)
			}
			*dst = f
		}
		return nil
	}

	if err := intParam("count", &opts.Layout.Count); err != nil {
		return opts, err
	}
	if err := floatParam("width", &opts.Layout.Dimensions.Width); err != nil {
		return opts, err
	}
	if err := floatParam("height", &opts.Layout.Dimensions.Height); err != nil {
		return opts, err
	}
	if err := floatParam("gap", &opts.Layout.Gap); err != nil {
		return opts, err
	}
	if v := q.Get("ratio"); v != "" {
		opts.Layout.AspectRatio = v
	}
	if v := q.Get("mode"); v != "" {
		opts.Layout.Mode = layout.Mode(v)
	}
	if v := q.Get("pin"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New("invalid pin: " + v)
		}
		opts.Layout.PinnedIndex = &n
	}
	if v := q.Get("others"); v != "" {
		opts.Layout.OthersPosition = pinned.Side(v)
	}
	if err := intParam("page_size", &opts.Layout.MaxItemsPerPage); err != nil {
		return opts, err
	}
	if err := intParam("page", &opts.Layout.CurrentPage); err != nil {
		return opts, err
	}
	if err := intParam("max_visible", &opts.Layout.MaxVisible); err != nil {
		return opts, err
	}
	if err := intParam("visible_page", &opts.Layout.CurrentVisiblePage); err != nil {
		return opts, err
	}

	opts.Background = q.Get("background")
	opts.NoLabels = q.Get("labels") == "false"
	opts.Refresh = q.Get("refresh") == "true"

	return opts, nil
}
