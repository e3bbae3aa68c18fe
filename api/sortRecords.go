package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sortlab/sortlab/session"
)

func sortByName(ctx context.Context, w http.ResponseWriter) error {
	return runSort(ctx, w, getSession(ctx).SortByName)
}

func sortByCategory(ctx context.Context, w http.ResponseWriter) error {
	return runSort(ctx, w, getSession(ctx).SortByCategory)
}

func sortByPriority(ctx context.Context, w http.ResponseWriter) error {
	return runSort(ctx, w, getSession(ctx).SortByPriority)
}

func runSort(ctx context.Context, w http.ResponseWriter, run func() (*session.Result, error)) error {

	result, err := run()
	if err != nil {
		return err
	}

	return json.NewEncoder(w).Encode(result)
}
