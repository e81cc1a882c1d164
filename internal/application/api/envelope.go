package api

import "encoding/json"

// decodeList accepts the three listing envelopes the backend is known to
// produce, in this fallback order: a bare array, the array under "data",
// the array under the resource key (e.g. "companies"). Anything else
// decodes to an empty list.
func decodeList[T any](body []byte, resourceKey string) []T {
	var arr []T
	if err := json.Unmarshal(body, &arr); err == nil {
		return arr
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(body, &keyed); err != nil {
		return nil
	}
	for _, key := range []string{"data", resourceKey} {
		raw, ok := keyed[key]
		if !ok {
			continue
		}
		arr = nil
		if err := json.Unmarshal(raw, &arr); err == nil && arr != nil {
			return arr
		}
	}
	return nil
}

// decodeItem accepts a single resource either bare or nested under "data".
func decodeItem[T any](body []byte) (*T, error) {
	var keyed struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &keyed); err == nil && len(keyed.Data) > 0 && string(keyed.Data) != "null" {
		var item T
		if err := json.Unmarshal(keyed.Data, &item); err == nil {
			return &item, nil
		}
	}
	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
