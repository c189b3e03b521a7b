package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/elphtools/kmesh/pkg/defaults"
	kerrors "github.com/elphtools/kmesh/pkg/errors"
	"github.com/elphtools/kmesh/pkg/mesh"
	"github.com/elphtools/kmesh/pkg/preset"
	"github.com/elphtools/kmesh/pkg/serializer"
)

// handleMesh handles GET /v1/mesh.
//
// Query parameters:
//
//	n1, n2, n3  axis counts (positive integers), or
//	preset      named preset (overrides the counts)
//	weights     include uniform weights (true/false)
//	format      mesh (default, native text) or json
func (s *Server) handleMesh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, kerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	spec, err := specFromQuery(r)
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	n, err := spec.Points()
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", string(serializer.FormatMesh):
		// Bound the stream without buffering it; TimeoutHandler would
		// hold the whole point list in memory.
		rc := http.NewResponseController(w)
		if err := rc.SetWriteDeadline(time.Now().Add(defaults.MeshHandlerTimeout)); err != nil {
			slog.Debug("write deadline unsupported", "error", err)
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := spec.Encode(w); err != nil {
			// Headers are out; nothing to do but log.
			slog.Warn("mesh stream interrupted",
				"error", err,
				"requestID", r.Context().Value(contextKeyRequestID))
			return
		}
	case string(serializer.FormatJSON):
		grid, err := spec.Grid(defaults.MaxMaterializedPoints)
		if err != nil {
			s.writeStructuredError(w, r, err)
			return
		}
		serializer.RespondJSON(w, http.StatusOK, grid)
	default:
		s.writeError(w, r, http.StatusBadRequest, kerrors.ErrCodeInvalidInput,
			"unknown format", false, map[string]any{"format": format})
		return
	}

	meshesGenerated.Inc()
	meshPointsGenerated.Add(float64(n))
}

// handlePresets handles GET /v1/presets.
func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, kerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, preset.Builtin())
}

// specFromQuery builds a validated mesh spec from request query parameters.
func specFromQuery(r *http.Request) (mesh.Spec, error) {
	q := r.URL.Query()

	weighted := false
	if weightsStr := q.Get("weights"); weightsStr != "" {
		var err error
		weighted, err = strconv.ParseBool(weightsStr)
		if err != nil {
			return mesh.Spec{}, kerrors.WrapWithContext(kerrors.ErrCodeInvalidInput,
				"weights must be a boolean", err, map[string]any{"weights": weightsStr})
		}
	}

	if name := q.Get("preset"); name != "" {
		p, err := preset.Resolve(name, nil)
		if err != nil {
			return mesh.Spec{}, err
		}
		spec := p.Spec()
		if q.Get("weights") != "" {
			spec.Weighted = weighted
		}
		return spec, nil
	}

	var counts [3]int
	for i, key := range []string{"n1", "n2", "n3"} {
		text := q.Get(key)
		if text == "" {
			return mesh.Spec{}, kerrors.NewWithContext(kerrors.ErrCodeInvalidInput,
				"missing axis count", map[string]any{"param": key})
		}
		n, err := mesh.ParseCount(i+1, text)
		if err != nil {
			return mesh.Spec{}, err
		}
		counts[i] = n
	}

	return mesh.New(counts[0], counts[1], counts[2], weighted)
}
