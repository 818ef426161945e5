package admin

import (
	"context"
	"net/http"

	"log/slog"

	"geotrail/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PollerControl interface {
	Start(ctx context.Context) error
	Stop() error
	Status() domain.PollerStatus
}

type Handler struct {
	logger *slog.Logger
	poller PollerControl

	// lifecycle context handed to Start so the poller outlives the request
	appCtx context.Context
}

func NewHandler(logger *slog.Logger, poller PollerControl, appCtx context.Context) *Handler {
	return &Handler{
		logger: logger,
		poller: poller,
		appCtx: appCtx,
	}
}

func (h *Handler) PollerStart(w http.ResponseWriter, r *http.Request) {
	if err := h.poller.Start(h.appCtx); err != nil {
		h.handleError(w, err)
		return
	}
	h.log(r).Info("poller started via admin API")
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "started"})
}

func (h *Handler) PollerStop(w http.ResponseWriter, r *http.Request) {
	if err := h.poller.Stop(); err != nil {
		h.handleError(w, err)
		return
	}
	h.log(r).Info("poller stopped via admin API")
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "stopped"})
}

func (h *Handler) PollerStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.poller.Status())
}
