package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an identifier the backend may send either as a JSON number or as a
// string. It is kept in its textual form; "" means absent.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Or returns id, or fallback when id is absent.
func (id ID) Or(fallback ID) ID {
	if id != "" {
		return id
	}
	return fallback
}
