package public

import (
	"context"
	"net/http"
	"time"

	"log/slog"

	"geotrail/internal/domain"
	"geotrail/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type LocationService interface {
	RecordFix(ctx context.Context, fix domain.Fix) (domain.LocationRecord, error)
	Snapshot() domain.Snapshot
	RemoveAt(previousIndex int) error
	ClearPrevious()
}

type Handler struct {
	logger          *slog.Logger
	LocationService LocationService
}

func NewHandler(logger *slog.Logger, locationService LocationService) *Handler {
	return &Handler{
		logger:          logger,
		LocationService: locationService,
	}
}

// ListLocations returns the current/previous partition, recomputed on every
// read.
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	snap := h.LocationService.Snapshot()
	h.writeJSON(w, http.StatusOK, snap)
}

// ReportFix records a fix pushed by a device through the same
// resolve → append → telemetry path the poller uses.
func (h *Handler) ReportFix(w http.ResponseWriter, r *http.Request) {
	var req domain.ReportFixRequest
	if !h.bindJSON(w, r, &req) {
		return
	}

	fix := domain.Fix{
		Latitude:   req.Lat,
		Longitude:  req.Lng,
		CapturedAt: time.Now().UTC(),
	}

	rec, err := h.LocationService.RecordFix(r.Context(), fix)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.log(r).Info("fix reported", slog.String("id", rec.ID.String()))
	h.writeJSON(w, http.StatusCreated, domain.ReportFixResponse{Record: rec})
}

// RemovePrevious removes one entry from the previous view by its index.
func (h *Handler) RemovePrevious(w http.ResponseWriter, r *http.Request) {
	idx, ok := h.parseIndex(w, r)
	if !ok {
		return
	}

	if err := h.LocationService.RemoveAt(idx); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// ClearPrevious drops every previous location; the current one survives.
func (h *Handler) ClearPrevious(w http.ResponseWriter, r *http.Request) {
	h.LocationService.ClearPrevious()
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// CurrentMap returns the map payload for the current location.
func (h *Handler) CurrentMap(w http.ResponseWriter, r *http.Request) {
	snap := h.LocationService.Snapshot()
	if snap.Current == nil {
		h.handleError(w, e.ErrNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, domain.NewMapPayload(*snap.Current))
}

// PreviousMap returns the map payload for one previous location.
func (h *Handler) PreviousMap(w http.ResponseWriter, r *http.Request) {
	idx, ok := h.parseIndex(w, r)
	if !ok {
		return
	}

	snap := h.LocationService.Snapshot()
	if idx < 0 || idx >= len(snap.Previous) {
		h.handleError(w, e.ErrNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, domain.NewMapPayload(snap.Previous[idx]))
}
