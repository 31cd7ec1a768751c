package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/folio/backend/internal/middleware"
	"github.com/zhouzirui/folio/backend/internal/model/contact"
	contactService "github.com/zhouzirui/folio/backend/internal/service/contact"
	"github.com/zhouzirui/folio/backend/pkg/utils"
)

const defaultListLimit = 50

// Handler 联系表单的HTTP处理器
type Handler struct {
	contactSvc *contactService.Service
	logger     *zap.Logger
	adminToken string
}

// New 创建联系表单处理器。adminToken 为空时提交列表接口始终返回 401。
func New(contactSvc *contactService.Service, logger *zap.Logger, adminToken string) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{contactSvc: contactSvc, logger: logger, adminToken: adminToken}
}

// RegisterRoutes 注册联系表单路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
	r.With(middleware.BearerToken(h.adminToken)).Get("/contact/submissions", h.handleList)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var form contact.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.contactSvc.Submit(r.Context(), form)
	if err != nil {
		var verr *contactService.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.RespondErrorDetails(w, http.StatusUnprocessableEntity, contactService.ErrInvalidForm.Error(), verr.Fields)
		case errors.Is(err, contactService.ErrInvalidForm):
			utils.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		case r.Context().Err() != nil:
			// client went away during the simulated delay
		default:
			h.logger.Error("contact submission failed", zap.Error(err))
			utils.RespondError(w, http.StatusInternalServerError, "failed to send message")
		}
		return
	}

	utils.RespondJSON(w, http.StatusCreated, receipt)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.RespondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	items, err := h.contactSvc.Submissions(r.Context(), limit)
	if err != nil {
		h.logger.Error("list submissions failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "failed to list submissions")
		return
	}
	if items == nil {
		items = []contact.Submission{}
	}
	utils.RespondJSON(w, http.StatusOK, items)
}
