package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses code-set payloads with S2, the Snappy-compatible format from
// klauspost/compress. It suits cache entries that are read far more often than written.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor returns the S2 codec. It holds no state.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes a delta-varint payload as an S2 block. An empty payload yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress restores a payload written by Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
