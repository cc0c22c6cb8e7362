package ghl

import "encoding/json"

// ExtractCollection pulls the resource collection out of an upstream payload.
// The API is inconsistent about wrapping: some endpoints return a bare array,
// some an object with a field named after the resource, some an object with a
// generic "data" field. Strategies are tried in that order; an unrecognized
// shape yields an empty collection and ok=false so the caller can log it.
func ExtractCollection(body []byte, field string) (items []json.RawMessage, ok bool) {
	if len(body) == 0 {
		return []json.RawMessage{}, false
	}

	var topLevel []json.RawMessage
	if err := json.Unmarshal(body, &topLevel); err == nil {
		return topLevel, true
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return []json.RawMessage{}, false
	}

	for _, key := range []string{field, "data"} {
		raw, exists := wrapper[key]
		if !exists {
			continue
		}
		var nested []json.RawMessage
		if err := json.Unmarshal(raw, &nested); err == nil {
			return nested, true
		}
	}

	return []json.RawMessage{}, false
}

// ExtractObject pulls a single wrapped object out of an upstream payload,
// unwrapping a field named after the resource when present. Tag creation
// responds with {"tag": {...}}; other writes return the object bare.
func ExtractObject(body []byte, field string) json.RawMessage {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err == nil {
		if raw, exists := wrapper[field]; exists {
			return raw
		}
	}
	return body
}

// DecodeCollection decodes every extracted item into T, skipping items that
// fail to decode rather than failing the whole collection.
func DecodeCollection[T any](items []json.RawMessage) []T {
	decoded := make([]T, 0, len(items))
	for _, item := range items {
		var value T
		if err := json.Unmarshal(item, &value); err != nil {
			continue
		}
		decoded = append(decoded, value)
	}
	return decoded
}
