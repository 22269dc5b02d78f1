package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mugshot-app/mugshot/internal/domain"
	"github.com/mugshot-app/mugshot/internal/infra/metrics"
)

// createVisitRequest is the POST /api/v1/visits payload.
type createVisitRequest struct {
	CafeID    string     `json:"cafe_id"`
	CafeName  string     `json:"cafe_name"`
	CreatedAt *time.Time `json:"created_at,omitempty"` // defaults to now
	DrinkType string     `json:"drink_type"`
	Rating    int        `json:"rating"`
	Caption   string     `json:"caption"`
	Notes     string     `json:"notes"`
	PhotoURL  string     `json:"photo_url"`
}

func (s *Server) handleCreateVisit(w http.ResponseWriter, r *http.Request) {
	var req createVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	visit, err := buildVisit(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.InsertVisit(visit); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.VisitsLogged.WithLabelValues(string(visit.Drink)).Inc()
	s.log.Info().
		Str("visit_id", visit.ID).
		Str("cafe_id", visit.CafeID).
		Str("drink", string(visit.Drink)).
		Msg("visit logged")

	writeJSON(w, http.StatusCreated, visit)
}

// buildVisit validates the request and fills in generated fields.
func buildVisit(req createVisitRequest) (domain.Visit, error) {
	var v domain.Visit

	if strings.TrimSpace(req.CafeID) == "" {
		return v, domain.ErrMissingCafe
	}

	drink := domain.DrinkType(req.DrinkType)
	if req.DrinkType == "" {
		drink = domain.DrinkCoffee
	}
	if !drink.Valid() {
		return v, domain.ErrInvalidDrink
	}

	if req.Rating < 0 || req.Rating > 5 {
		return v, domain.ErrInvalidRating
	}

	createdAt := time.Now()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	return domain.Visit{
		ID:        uuid.NewString(),
		CafeID:    req.CafeID,
		CafeName:  req.CafeName,
		CreatedAt: createdAt,
		Drink:     drink,
		Rating:    req.Rating,
		Caption:   req.Caption,
		Notes:     req.Notes,
		PhotoURL:  req.PhotoURL,
	}, nil
}

func (s *Server) handleListVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := s.store.ListVisits()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if visits == nil {
		visits = []domain.Visit{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"visits": visits,
		"count":  len(visits),
	})
}

func (s *Server) handleGetVisit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	visit, err := s.store.GetVisit(id)
	if errors.Is(err, domain.ErrVisitNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, visit)
}

func (s *Server) handleDeleteVisit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.store.DeleteVisit(id)
	if errors.Is(err, domain.ErrVisitNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.VisitsDeleted.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
