package server

import (
	"net/http"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	"github.com/brensch/trapcat/store"
)

type statsResponse struct {
	Variants []store.StatsRow `json:"variants"`
}

// HandleStats reports per-cat self-play results. The optional "cat" query
// parameter narrows the reply to one variant.
func (s *Server) HandleStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withCORS(w)

		rows, err := store.QueryStats(r.Context(), s.outcomeDir)
		if err != nil {
			log.WithError(err).WithField("dir", s.outcomeDir).Error("query stats")
			http.Error(w, "stats unavailable", http.StatusInternalServerError)
			return
		}

		if cat := r.URL.Query().Get("cat"); cat != "" {
			filtered := rows[:0]
			for _, row := range rows {
				if row.Variant == cat {
					filtered = append(filtered, row)
				}
			}
			rows = filtered
		}
		if rows == nil {
			rows = []store.StatsRow{}
		}
		writeJSON(w, statsResponse{Variants: rows})
	}
}

func withCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
