package bitrix

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// flexString decodes Bitrix values that arrive as a string, a number, null,
// or a single-element list (multiple list fields).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte("false")):
		*f = ""
		return nil

	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		*f = flexString(s)

		return nil

	case b[0] == '[':
		var list []flexString
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}

		*f = ""
		if len(list) > 0 {
			*f = list[0]
		}

		return nil

	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("decode flexible value %s: %w", b, err)
		}

		*f = flexString(n.String())

		return nil
	}
}

func (f flexString) String() string {
	return string(f)
}

// parseID reads an entity id returned as a bare number or string.
func parseID(raw json.RawMessage) (string, error) {
	var id flexString

	err := json.Unmarshal(raw, &id)
	if err != nil {
		return "", err
	}

	if id == "" {
		return "", fmt.Errorf("empty id in %s", raw)
	}

	if _, err := strconv.ParseInt(id.String(), 10, 64); err != nil {
		return "", fmt.Errorf("invalid id %q: %w", id, err)
	}

	return id.String(), nil
}
