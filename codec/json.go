package codec

import (
	"encoding/json"

	"github.com/hupe1980/vecgeom/vector"
)

// JSON is the standard-library JSON codec.
//
// Its output is byte-compatible with GoJSON.
type JSON struct{}

// Marshal encodes the batch.
func (JSON) Marshal(b *vector.Batch) ([]byte, error) {
	doc, err := newDocument(b)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// Unmarshal decodes and validates a batch.
func (JSON) Unmarshal(data []byte) (*vector.Batch, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.batch()
}

// Name returns "json".
func (JSON) Name() string { return "json" }
