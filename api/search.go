package api

import (
	"context"
	"encoding/json"
	"net/http"
)

func search(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	input := struct {
		Key string `json:"key"`
	}{}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	s := getSession(ctx)
	result, err := s.Search(input.Key)
	if err != nil {
		return err
	}

	if !result.Found {
		w.WriteHeader(http.StatusNotFound)
	}

	return json.NewEncoder(w).Encode(result)
}
