package analysis

import (
	"bytes"
	"encoding/json"

	"github.com/chriscorrea/skim/internal/classify"
)

// Summary is the result of analyzing one source.
type Summary struct {
	Kind       classify.Kind
	Lines      int
	Words      int
	Chars      int
	Insights   []string   // order of extraction
	Statistics Statistics // named, pre-formatted values

	// Fallback is set when the source kind was unknown and the plain text
	// analyzer summarized it instead.
	Fallback bool
}

// newSummary starts a summary of kind carrying the document's basic counts.
func newSummary(kind classify.Kind, doc *Document) Summary {
	return Summary{
		Kind:     kind,
		Lines:    doc.Stats.Lines,
		Words:    doc.Stats.Words,
		Chars:    doc.Stats.Chars,
		Insights: []string{},
	}
}

// Statistics is a set of named values that remembers insertion order.
// Setting an existing name replaces its value in place.
type Statistics struct {
	keys   []string
	values map[string]string
}

// Set records value under name.
func (s *Statistics) Set(name, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, exists := s.values[name]; !exists {
		s.keys = append(s.keys, name)
	}
	s.values[name] = value
}

// Get returns the value recorded under name.
func (s Statistics) Get(name string) (string, bool) {
	value, ok := s.values[name]
	return value, ok
}

// Keys returns the names in insertion order.
func (s Statistics) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Len returns the number of statistics.
func (s Statistics) Len() int {
	return len(s.keys)
}

// MarshalJSON encodes the statistics as a JSON object in insertion order.
func (s Statistics) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
