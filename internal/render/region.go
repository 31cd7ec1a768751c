// Package render isolates fallible output behind a placeholder boundary.
package render

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/pkg/utils"
)

// StatusUnavailable marks a placeholder body.
const StatusUnavailable = "unavailable"

// Placeholder replaces the output of a region that failed to render.
type Placeholder struct {
	Status  string `json:"status"`
	Region  string `json:"region"`
	Message string `json:"message"`
	Retry   string `json:"retry,omitempty"`
}

// Func produces the JSON payload for a region.
type Func func(r *http.Request) (any, error)

// Region is a render boundary: failures inside it are logged and answered
// with a Placeholder instead of an error response.
type Region struct {
	name   string
	logger *zap.Logger
}

// NewRegion names a boundary for logging.
func NewRegion(name string, logger *zap.Logger) *Region {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Region{name: name, logger: logger.With(zap.String("region", name))}
}

// Handler adapts fn into an http.HandlerFunc guarded by the region.
func (g *Region) Handler(fn Func) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := g.run(fn, r)
		if err != nil {
			g.logger.Error("render failed, serving placeholder", zap.Error(err))
			utils.RespondJSON(w, http.StatusOK, Placeholder{
				Status:  StatusUnavailable,
				Region:  g.name,
				Message: "This section is temporarily unavailable.",
				Retry:   r.URL.RequestURI(),
			})
			return
		}
		utils.RespondJSON(w, http.StatusOK, payload)
	}
}

func (g *Region) run(fn Func, r *http.Request) (payload any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			g.logger.Debug("render panic", zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn(r)
}
