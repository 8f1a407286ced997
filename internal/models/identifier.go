package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Identifier is a reference id sent by clients. It decodes from either a
// JSON string or a JSON number and keeps the text form, so {"author_id": 42}
// and {"author_id": "42"} are the same value. Form values bind as plain
// strings through the underlying kind.
type Identifier string

// UnmarshalJSON implements json.Unmarshaler
func (id *Identifier) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = Identifier(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or a number, got %s", data)
	}
	*id = Identifier(n.String())
	return nil
}

// String returns the text form
func (id Identifier) String() string {
	return string(id)
}
