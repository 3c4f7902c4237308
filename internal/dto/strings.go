package dto

import (
	"encoding/json"
	"strings"
)

// TrimmedString strips surrounding whitespace while decoding, so min/max
// length validation runs against the value that will actually be stored.
type TrimmedString string

func (s *TrimmedString) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = TrimmedString(strings.TrimSpace(raw))
	return nil
}
