package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexString accepts any JSON scalar from a form post and keeps its text.
// Falsy values (null, false, "", 0) decode to the empty string so that a
// plain presence check rejects them.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*f = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
	case 'n', 'f':
		// null, false
		*f = ""
	case 't':
		*f = "true"
	case '{', '[':
		return fmt.Errorf("expected a scalar, got %s", string(data))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		v, err := n.Float64()
		if err != nil {
			return err
		}
		if v == 0 {
			*f = ""
			return nil
		}
		*f = FlexString(strings.TrimSpace(n.String()))
	}
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
