package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SierraSoftworks/connor"

	"github.com/sortlab/sortlab/utils"
)

// find lists records matching a connor filter, one JSON row per line.
// An empty filter matches everything.
func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	params := &struct {
		Filter map[string]interface{} `json:"filter"`
	}{
		Filter: map[string]interface{}{},
	}
	err := json.NewDecoder(r.Body).Decode(&params)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	hasFilter := len(params.Filter) > 0

	s := getSession(ctx)
	jsonWriter := json.NewEncoder(w)
	for _, record := range s.Records() {

		if hasFilter {
			recordData := map[string]interface{}{}
			err := utils.Remarshal(record, &recordData)
			if err != nil {
				return fmt.Errorf("remarshal: %w", err)
			}

			match, err := connor.Match(params.Filter, recordData)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		err := jsonWriter.Encode(record)
		if err != nil {
			return err
		}
	}

	return nil
}
