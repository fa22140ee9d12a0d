package codeset

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/jismesh/compress"
	"github.com/arloliu/jismesh/errs"
	"github.com/arloliu/jismesh/internal/hash"
)

// Decode parses a blob produced by Encode.
//
// Structural problems are reported with an error wrapping errs.ErrInvalidCodeSet, and a payload
// that decompresses but fails verification with one wrapping errs.ErrChecksumMismatch.
func Decode(data []byte) (*Set, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	body := data[HeaderSize:]
	if uint64(len(body)) != uint64(header.PayloadLen) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", errs.ErrInvalidCodeSet, len(body), header.PayloadLen)
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCodeSet, err)
	}
	payload, err := codec.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("%w: decompress %s payload: %w", errs.ErrInvalidCodeSet, header.Compression, err)
	}

	if sum := hash.Sum(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: payload hashes to 0x%016X, header says 0x%016X", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	codes, err := readDeltas(payload, int(header.Count))
	if err != nil {
		return nil, err
	}

	return &Set{Level: header.Level, Codes: codes}, nil
}

func readDeltas(payload []byte, count int) ([]int64, error) {
	// every code takes at least one byte
	if count > len(payload) {
		return nil, fmt.Errorf("%w: %d codes cannot fit in %d payload bytes", errs.ErrInvalidCodeSet, count, len(payload))
	}

	codes := make([]int64, count)
	prev := int64(0)
	offset := 0
	for i := range codes {
		zigzag, n := binary.Uvarint(payload[offset:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: malformed varint for code %d", errs.ErrInvalidCodeSet, i)
		}
		offset += n

		delta := int64(zigzag>>1) ^ -int64(zigzag&1) //nolint:gosec
		prev += delta
		codes[i] = prev
	}

	if offset != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrInvalidCodeSet, len(payload)-offset)
	}

	return codes, nil
}
