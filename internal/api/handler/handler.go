package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"complaintdesk/backend/internal/models"
	"complaintdesk/backend/internal/notify"
	"complaintdesk/backend/internal/storage"
)

// SessionStore is what the auth layer needs from the session backend.
type SessionStore interface {
	Create(ctx context.Context, userID uint) (string, error)
	UserID(ctx context.Context, sid string) (uint, error)
	Delete(ctx context.Context, sid string) error
}

// Handler wires the REST surface to the stores, the session backend and
// the optional Telegram notifier.
type Handler struct {
	Stores   *storage.Service
	Sessions SessionStore
	Telegram *notify.Telegram

	jwtSecret []byte
	log       *zap.SugaredLogger
}

func NewHandler(stores *storage.Service, sessions SessionStore, tg *notify.Telegram, jwtSecret []byte, log *zap.SugaredLogger) *Handler {
	return &Handler{
		Stores:    stores,
		Sessions:  sessions,
		Telegram:  tg,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

// RegisterRoutes mounts the login endpoint and, behind auth, the five
// CRUD resources plus the dashboard and export routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/login", h.Login)

	authed := r.Group("/", h.RequireAuth)
	authed.POST("/logout", h.Logout)
	authed.GET("/profile", h.Profile)

	registerResource(authed, h, "categories", "category", h.Stores.Categories, nil)
	registerResource(authed, h, "roles", "role", h.Stores.Roles, nil)
	registerResource(authed, h, "users", "user", h.Stores.Users, nil)
	registerResource(authed, h, "complainers", "complainer", h.Stores.Complainers, nil)
	registerResource(authed, h, "complaints", "complaint", h.Stores.Complaints, &resourceHooks[models.Complaint]{
		created: func(c *models.Complaint) {
			h.Telegram.ComplaintCreated(c)
		},
		updated: func(before, after *models.Complaint) {
			if before.Status != models.StatusResolved && after.Status == models.StatusResolved {
				h.Telegram.ComplaintResolved(after)
			}
		},
	})

	authed.GET("/dashboard/stats", h.DashboardStats)
	authed.GET("/dashboard/live", h.ServeStatsSocket)
	authed.GET("/export/complaints", h.ExportComplaints)
}

// writeError translates store failures into the JSON error responses the
// dashboard expects. Unknown failures are logged and masked.
func (h *Handler) writeError(c *gin.Context, name string, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": name + " not found"})
	case errors.Is(err, storage.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
	case errors.Is(err, storage.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": name + " already exists"})
	default:
		h.log.Errorw("request failed", "resource", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
