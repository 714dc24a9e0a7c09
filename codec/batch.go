package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/vecgeom/vector"
)

// ErrInvalidFrame is returned for malformed binary frames.
var ErrInvalidFrame = errors.New("invalid batch frame")

// MaxFrameValues is the largest number of float64 values a frame may hold.
const MaxFrameValues = 1 << 27

var frameMagic = [4]byte{'V', 'G', 'B', '1'}

// Frame layout (little endian):
//
//	magic [4]byte | compression u8 | dim u32 | n u32 | rawLen u32 | payloadLen u32 | payload
const frameHeaderSize = 4 + 1 + 4 + 4 + 4 + 4

// EncodeBatch writes b as a binary frame. The payload falls back to
// CompressionNone when c does not help.
func EncodeBatch(b *vector.Batch, c Compression) ([]byte, error) {
	if b.Len() == 0 {
		return nil, vector.ErrEmptyBatch
	}
	values := b.Data()
	if len(values) > MaxFrameValues {
		return nil, fmt.Errorf("%w: %d values exceed frame capacity", ErrInvalidFrame, len(values))
	}

	raw := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(raw[8*i:], math.Float64bits(v))
	}

	payload, used, err := compress(raw, c)
	if err != nil {
		return nil, err
	}

	out := make([]byte, frameHeaderSize+len(payload))
	copy(out, frameMagic[:])
	out[4] = byte(used)
	binary.LittleEndian.PutUint32(out[5:], uint32(b.Dim()))
	binary.LittleEndian.PutUint32(out[9:], uint32(b.Len()))
	binary.LittleEndian.PutUint32(out[13:], uint32(len(raw)))
	binary.LittleEndian.PutUint32(out[17:], uint32(len(payload)))
	copy(out[frameHeaderSize:], payload)
	return out, nil
}

// DecodeBatch reads a frame written by EncodeBatch.
func DecodeBatch(data []byte) (*vector.Batch, error) {
	if len(data) < frameHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidFrame, len(data))
	}
	if [4]byte(data[:4]) != frameMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidFrame, data[:4])
	}

	c := Compression(data[4])
	dim := int(binary.LittleEndian.Uint32(data[5:]))
	n := int(binary.LittleEndian.Uint32(data[9:]))
	rawLen := int(binary.LittleEndian.Uint32(data[13:]))
	payloadLen := int(binary.LittleEndian.Uint32(data[17:]))

	if dim < 1 || n < 1 || rawLen%8 != 0 || (rawLen/8)%dim != 0 || rawLen/8/dim != n {
		return nil, fmt.Errorf("%w: inconsistent shape (%d, %d) for %d bytes", ErrInvalidFrame, n, dim, rawLen)
	}
	if rawLen/8 > MaxFrameValues {
		return nil, fmt.Errorf("%w: %d values exceed frame capacity", ErrInvalidFrame, rawLen/8)
	}
	if len(data)-frameHeaderSize != payloadLen {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d",
			ErrInvalidFrame, len(data)-frameHeaderSize, payloadLen)
	}

	raw, err := decompress(data[frameHeaderSize:], c, rawLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFrame, err)
	}

	values := make([]float64, dim*n)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
	}
	return vector.New(dim, values)
}
