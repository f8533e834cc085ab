package repository

import "encoding/json"

// encodeStrings serializes a string slice for storage in a JSON column.
// A nil slice is stored as an empty array so reads never yield NULL.
func encodeStrings(ss []string) (string, error) {
	if ss == nil {
		ss = []string{}
	}
	b, err := json.Marshal(ss)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeStrings parses a JSON column back into a string slice.
func decodeStrings(raw string) ([]string, error) {
	var ss []string
	if err := json.Unmarshal([]byte(raw), &ss); err != nil {
		return nil, err
	}
	if ss == nil {
		ss = []string{}
	}
	return ss, nil
}
