package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bighasbula/ITEENS/internal/iteens_errors"
	log "github.com/sirupsen/logrus"
)

const defaultLeaderboardLimit = 10

func (a *Api) HandlerGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	if a.LeaderboardServiceConfig == nil {
		http.Error(w, "leaderboard is not enabled", http.StatusServiceUnavailable)
		return
	}

	limit := int64(defaultLeaderboardLimit)
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || parsed < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := a.LeaderboardServiceConfig.Top(r.Context(), limit)
	if err != nil {
		handlerError(err, w)
		return
	}

	responseBytes, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("unable to marshal leaderboard, %v", err)
		http.Error(w, iteens_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}

	respondWithJson(w, http.StatusOK, responseBytes)
}
