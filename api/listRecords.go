package api

import (
	"context"
	"encoding/json"
	"net/http"
)

func listRecords(ctx context.Context, w http.ResponseWriter) error {

	s := getSession(ctx)

	jsonWriter := json.NewEncoder(w)
	for _, record := range s.Records() {
		err := jsonWriter.Encode(record)
		if err != nil {
			return err
		}
	}

	return nil
}
