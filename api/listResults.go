package api

import (
	"context"
	"encoding/json"
	"net/http"
)

func listResults(ctx context.Context, w http.ResponseWriter) error {
	return json.NewEncoder(w).Encode(getSession(ctx).Results())
}

// leaderboard lists the same results ordered by comparison count,
// cheapest run first.
func leaderboard(ctx context.Context, w http.ResponseWriter) error {
	return json.NewEncoder(w).Encode(getSession(ctx).Leaderboard())
}
