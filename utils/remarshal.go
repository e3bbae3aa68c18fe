package utils

import (
	"encoding/json"
	"fmt"
)

// Remarshal converts input into output through a JSON round trip,
// typically a struct into a map for filter matching.
func Remarshal(input interface{}, output interface{}) error {
	b, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return json.Unmarshal(b, output)
}
