package record

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Serialize renders a record as a JSON-ready map restricted to its
// declared fields. When only is non-empty the output is further
// restricted to that subset; this is how create payloads omit
// server-managed fields like id.
func Serialize(m Model, only ...string) (map[string]any, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("serialize record: %w", err)
	}

	var full map[string]any
	if err := json.Unmarshal(raw, &full); err != nil {
		return nil, fmt.Errorf("serialize record: %w", err)
	}

	schema := m.RecordSchema()
	subset := map[string]bool{}
	for _, name := range only {
		subset[name] = true
	}

	out := make(map[string]any, len(schema))
	for _, f := range schema {
		if len(subset) > 0 && !subset[f.Name] {
			continue
		}
		if v, ok := full[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out, nil
}

// Decode populates out from a raw JSON map. Keys the target does not
// declare are ignored; declared fields missing from the map are left at
// their zero value.
func Decode(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	return nil
}

// Merge overwrites fields of a live record with the values present in
// raw. Fields absent from raw keep their current values, so the record
// identity and anything the server did not return survive the merge.
func Merge(raw map[string]any, into Model) error {
	return Decode(raw, into)
}

// normalize passes a value through a JSON round trip so that cache
// queries compare like with like (ints become float64 and so on).
func normalize(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
