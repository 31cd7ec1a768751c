package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/handler/chat"
	"github.com/zhouzirui/folio/backend/internal/handler/contact"
	"github.com/zhouzirui/folio/backend/internal/handler/content"
	"github.com/zhouzirui/folio/backend/internal/handler/scene"
	"github.com/zhouzirui/folio/backend/internal/handler/stream"
	middlewarePkg "github.com/zhouzirui/folio/backend/internal/middleware"
	"github.com/zhouzirui/folio/backend/internal/model/profile"
	chatService "github.com/zhouzirui/folio/backend/internal/service/chat"
	contactService "github.com/zhouzirui/folio/backend/internal/service/contact"
	"github.com/zhouzirui/folio/backend/pkg/utils"
)

// Deps groups what the router needs.
type Deps struct {
	Profiles       profile.Store
	Chat           *chatService.Service
	Contact        *contactService.Service
	Logger         *zap.Logger
	AllowedOrigins []string
	// AdminToken guards the contact submissions listing.
	AdminToken string
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(deps.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Route("/api", func(api chi.Router) {
		content.New(deps.Profiles).RegisterRoutes(api)
		contact.New(deps.Contact, logger, deps.AdminToken).RegisterRoutes(api)
		scene.New(logger).RegisterRoutes(api)

		api.Route("/chat", func(cr chi.Router) {
			chat.New(deps.Chat, logger).RegisterRoutes(cr)
			stream.New(deps.Chat, logger).RegisterRoutes(cr)
			chat.NewWebSocketHandler(deps.Chat, logger).RegisterWebSocketRoutes(cr)
		})
	})

	return r
}
