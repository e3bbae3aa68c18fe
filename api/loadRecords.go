package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/sortlab/sortlab/registry"
)

// loadRecords replaces the whole registry with the records from the
// request body, either a JSON array or a stream of objects, one per row:
//
//	{"name":"Alpha","category":"control","priority":5}
//	{"name":"Zeta","category":"support","priority":1}
func loadRecords(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	records := []registry.Record{}

	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		err := json.Unmarshal(trimmed, &records)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return err
		}
	} else {
		jsonReader := json.NewDecoder(bytes.NewReader(body))
		for {
			record := registry.Record{}
			err := jsonReader.Decode(&record)
			if err == io.EOF {
				break
			}
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return err
			}
			records = append(records, record)
		}
	}

	s := getSession(ctx)
	err = s.Load(records)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(map[string]interface{}{
		"total":   s.Len(),
		"records": s.Records(),
	})
}
