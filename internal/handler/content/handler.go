package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/folio/backend/internal/model/profile"
	"github.com/zhouzirui/folio/backend/pkg/utils"
)

// Handler 页面静态内容的HTTP处理器
type Handler struct {
	profiles profile.Store
}

// New 创建内容处理器
func New(profiles profile.Store) *Handler {
	return &Handler{
		profiles: profiles,
	}
}

// RegisterRoutes 注册内容相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/content/profile", h.handleProfile)
	r.Get("/content/sections", h.handleListSections)
	r.Get("/content/sections/{sectionID}", h.handleGetSection)
	r.Get("/content/links", h.handleListLinks)
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.profiles.Profile())
}

// handleListSections 按页面顺序列出锚点区块
func (h *Handler) handleListSections(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.profiles.Sections())
}

func (h *Handler) handleGetSection(w http.ResponseWriter, r *http.Request) {
	section, ok := h.profiles.FindSection(chi.URLParam(r, "sectionID"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "section not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, section)
}

func (h *Handler) handleListLinks(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.profiles.Links())
}
