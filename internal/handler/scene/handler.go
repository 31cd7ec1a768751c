package scene

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/render"
	sceneService "github.com/zhouzirui/folio/backend/internal/service/scene"
)

const maxMeshes = 64

// Handler serves the decorative scene inside a render region.
type Handler struct {
	region  *render.Region
	compose func(count int) (sceneService.Scene, error)
}

// New creates the scene handler.
func New(logger *zap.Logger) *Handler {
	return &Handler{
		region:  render.NewRegion("scene", logger),
		compose: sceneService.Compose,
	}
}

// RegisterRoutes 注册场景路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/scene", h.region.Handler(h.render))
}

func (h *Handler) render(r *http.Request) (any, error) {
	count := sceneService.DefaultMeshCount
	if raw := r.URL.Query().Get("meshes"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse meshes: %w", err)
		}
		if n > maxMeshes {
			n = maxMeshes
		}
		count = n
	}
	return h.compose(count)
}
