package codec

import (
	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/vecgeom/vector"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
type GoJSON struct{}

// Marshal encodes the batch.
func (GoJSON) Marshal(b *vector.Batch) ([]byte, error) {
	doc, err := newDocument(b)
	if err != nil {
		return nil, err
	}
	return gojson.Marshal(doc)
}

// Unmarshal decodes and validates a batch.
func (GoJSON) Unmarshal(data []byte) (*vector.Batch, error) {
	var doc document
	if err := gojson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.batch()
}

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }
