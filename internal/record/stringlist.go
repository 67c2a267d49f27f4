package record

import (
	"encoding/json"
	"strings"
)

// StringList can unmarshal from a JSON array of strings, a JSON string that
// itself encodes an array, or a bare scalar (string or number). A string that
// looks like an encoded array but fails to parse degrades to a single-element
// list holding the raw string; it never produces an error for messy input.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	// Handle null
	if string(data) == "null" {
		*l = nil
		return nil
	}

	// Try native array first
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = StringList(items)
		return nil
	}

	// Try string: either a JSON-encoded array or a bare value
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = parseEncodedList(s)
		return nil
	}

	// Try number
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*l = StringList{n.String()}
		return nil
	}

	// Mixed-type arrays: accept anything stringable
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err == nil {
		out := make(StringList, 0, len(raw))
		for _, m := range raw {
			var elem string
			if err := json.Unmarshal(m, &elem); err == nil {
				out = append(out, elem)
				continue
			}
			out = append(out, string(m))
		}
		*l = out
		return nil
	}

	// Last resort: keep the raw token as a single element
	*l = StringList{strings.Trim(string(data), `"`)}
	return nil
}

// parseEncodedList interprets a string field that may hold a JSON-encoded
// array. Unparsable input is returned as a one-element list of the raw string.
func parseEncodedList(s string) StringList {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
			return StringList(items)
		}
	}
	return StringList{s}
}

// Strings returns the list as a plain string slice.
func (l StringList) Strings() []string {
	return []string(l)
}
