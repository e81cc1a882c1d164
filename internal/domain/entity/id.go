package entity

import (
	"bytes"
	"encoding/json"
)

// ID identifies a backend resource. The API is inconsistent about the JSON
// type (some endpoints send numbers, others strings), so it decodes both and
// is handled as a string everywhere else.
type ID string

// UnmarshalJSON accepts a JSON string, number or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON always encodes as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }
