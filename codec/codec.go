// Package codec encodes vector batches for interchange.
//
// Two families are provided:
//   - text codecs (JSON, GoJSON) implementing Codec, both writing
//     {"dim":D,"vectors":[[...],...]}
//   - a binary frame (EncodeBatch/DecodeBatch) holding raw float64 values,
//     optionally LZ4 or ZSTD compressed
//
// Codec names are stable; frames record their compression so readers need no
// out-of-band configuration.
package codec

import (
	"fmt"

	"github.com/hupe1980/vecgeom/vector"
)

// Codec converts vector batches to and from a text form.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(b *vector.Batch) ([]byte, error)
	Unmarshal(data []byte) (*vector.Batch, error)
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

type document struct {
	Dim     int         `json:"dim"`
	Vectors [][]float64 `json:"vectors"`
}

func newDocument(b *vector.Batch) (document, error) {
	if b.Len() == 0 {
		return document{}, vector.ErrEmptyBatch
	}
	return document{Dim: b.Dim(), Vectors: b.Rows()}, nil
}

// batch validates the decoded document. dim is optional; when present it
// must agree with the vector lengths.
func (d document) batch() (*vector.Batch, error) {
	b, err := vector.FromRows(d.Vectors)
	if err != nil {
		return nil, fmt.Errorf("decode vector batch: %w", err)
	}
	if d.Dim != 0 && d.Dim != b.Dim() {
		return nil, fmt.Errorf("decode vector batch: %w",
			&vector.InvalidDimensionError{Dimension: b.Dim(), Expected: d.Dim})
	}
	return b, nil
}
