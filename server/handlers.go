package server

import (
	"encoding/json"
	"net/http"

	"github.com/etnz/dashboard"
	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	p := s.dashboard().Panel()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"rows":   p.Len(),
		"from":   p.First(),
		"to":     p.Last(),
	})
}

// handleTotals handles GET /api/totals?range=YTD
func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	totals := s.dashboard().Totals(r.URL.Query().Get("range"))
	if totals == nil {
		totals = []dashboard.DateTotal{}
	}
	s.writeJSON(w, http.StatusOK, totals)
}

// handleTypes handles GET /api/types?range=1Y
func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	totals := s.dashboard().CompositionByType(r.URL.Query().Get("range"))
	if totals == nil {
		totals = []dashboard.DatedTypeTotal{}
	}
	s.writeJSON(w, http.StatusOK, totals)
}

// handleComposition handles GET /api/composition?area=2024-01-02&totals=2024-01-03
func (s *Server) handleComposition(w http.ResponseWriter, r *http.Request) {
	var sel dashboard.Selection
	for param, dst := range map[string]*dashboard.Date{"area": &sel.Area, "totals": &sel.Totals} {
		value := r.URL.Query().Get(param)
		if value == "" {
			continue
		}
		on, err := dashboard.ParseDate(value)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		*dst = on
	}
	s.writeJSON(w, http.StatusOK, s.dashboard().SelectedComposition(sel))
}

// handleSummary handles GET /api/summary
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary := s.dashboard().Summary()
	if summary.ByType == nil {
		summary.ByType = []dashboard.TypeTotal{}
	}
	s.writeJSON(w, http.StatusOK, summary)
}

// handleAccounts handles GET /api/accounts
func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	p := s.dashboard().Panel()
	accounts := p.AccountNames()
	if accounts == nil {
		accounts = []dashboard.AccountMeta{}
	}
	dropped := p.Dropped()
	if dropped == nil {
		dropped = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"accounts":   accounts,
		"categories": p.Categories(),
		"dropped":    dropped,
	})
}

// handleAccountBalances handles GET /api/accounts/{account}?range=1Y
func (s *Server) handleAccountBalances(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")
	series, ok := s.dashboard().Balances(account, r.URL.Query().Get("range"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "unknown account "+account)
		return
	}
	if series == nil {
		series = []dashboard.DailyBalance{}
	}
	s.writeJSON(w, http.StatusOK, series)
}

// handleReload handles POST /api/reload
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.reload(); err != nil {
		s.log.Error().Err(err).Msg("Failed to reload dashboard")
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	p := s.dashboard().Panel()
	s.log.Info().Int("rows", p.Len()).Msg("Dashboard reloaded")
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "reloaded", "rows": p.Len()})
}
