package vector

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

type batchJSON struct {
	Dim     int         `json:"dim"`
	Vectors [][]float64 `json:"vectors"`
}

// MarshalJSON encodes the batch as {"dim":D,"vectors":[[...],...]}.
func (b *Batch) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(batchJSON{Dim: b.Dim(), Vectors: b.Rows()})
}

// UnmarshalJSON decodes and validates a batch. The dim field is optional;
// when present it must agree with the vector lengths.
func (b *Batch) UnmarshalJSON(data []byte) error {
	var raw batchJSON
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := FromRows(raw.Vectors)
	if err != nil {
		return fmt.Errorf("decode vector batch: %w", err)
	}
	if raw.Dim != 0 && raw.Dim != decoded.dim {
		return fmt.Errorf("decode vector batch: %w",
			&InvalidDimensionError{Dimension: decoded.dim, Expected: raw.Dim})
	}
	*b = *decoded
	return nil
}
