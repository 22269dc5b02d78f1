package api

import (
	"net/http"
	"time"

	"github.com/mugshot-app/mugshot/internal/app/badge"
	"github.com/mugshot-app/mugshot/internal/domain"
	"github.com/mugshot-app/mugshot/internal/infra/metrics"
)

// badgeResponse is the per-badge wire shape: the evaluated state plus its
// derived display fields.
type badgeResponse struct {
	domain.BadgeState
	Progress     float64 `json:"progress"`
	ProgressText string  `json:"progress_text"`
}

func (s *Server) handleBadges(w http.ResponseWriter, r *http.Request) {
	visits, err := s.store.ListVisits()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	states := badge.Compute(visits, time.Now(), time.Local)
	unlocked := badge.UnlockedCount(states)

	metrics.BadgeEvaluations.Inc()
	metrics.BadgesUnlocked.Set(float64(unlocked))
	s.log.Debug().
		Int("visits", len(visits)).
		Int("unlocked", unlocked).
		Int("total", len(states)).
		Msg("badges evaluated")

	out := make([]badgeResponse, len(states))
	for i, st := range states {
		out[i] = badgeResponse{
			BadgeState:   st,
			Progress:     st.Progress(),
			ProgressText: st.ProgressText(),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"badges":   out,
		"unlocked": unlocked,
		"total":    len(states),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	visits, err := s.store.ListVisits()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	agg := badge.Aggregate(visits, time.Now(), time.Local)
	writeJSON(w, http.StatusOK, agg)
}
