package dto

import (
	"bytes"
	"encoding/json"
	"sort"
)

// OrderedCount is one entry of an OrderedCounts object.
type OrderedCount struct {
	Name  string
	Count int
}

// OrderedCounts marshals as a JSON object whose keys appear in slice
// order. The dashboard renders browser and device breakdowns as objects
// but relies on descending-count key order, which a Go map cannot
// guarantee.
type OrderedCounts []OrderedCount

// MarshalJSON implements json.Marshaler.
func (c OrderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, entry := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(entry.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler. Decoding goes through a Go
// map, which loses the source key order, so entries are re-sorted by
// descending count with a name tie-break to restore the order MarshalJSON
// emits.
func (c *OrderedCounts) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	out := make(OrderedCounts, 0, len(m))
	for name, count := range m {
		out = append(out, OrderedCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	*c = out
	return nil
}
