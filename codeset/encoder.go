package codeset

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/jismesh/compress"
	"github.com/arloliu/jismesh/endian"
	"github.com/arloliu/jismesh/errs"
	"github.com/arloliu/jismesh/internal/hash"
	"github.com/arloliu/jismesh/internal/options"
	"github.com/arloliu/jismesh/internal/pool"
	"github.com/arloliu/jismesh/mesh"
)

// Encode serializes codes, the numeric mesh codes of one level, into a code-set blob.
//
// Order and duplicates in codes are not preserved: the blob holds the sorted, distinct codes.
// codes itself is not modified.
func Encode(level mesh.Level, codes []int64, opts ...Option) ([]byte, error) {
	cfg := defaultEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidLevel, level)
	}

	sorted, cleanup := pool.GetInt64Slice(len(codes))
	defer cleanup()

	copy(sorted, codes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	if uint64(len(sorted)) > math.MaxUint32 {
		return nil, fmt.Errorf("code set holds %d codes, limit is %d", len(sorted), uint32(math.MaxUint32))
	}

	buf := pool.GetCodeSetBuffer()
	defer pool.PutCodeSetBuffer(buf)

	appendDeltas(buf, sorted)
	payload := buf.Bytes()

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress code set: %w", err)
	}
	if uint64(len(compressed)) > math.MaxUint32 {
		return nil, fmt.Errorf("compressed payload of %d bytes exceeds the format limit", len(compressed))
	}

	header := Header{
		Level:       level,
		Compression: cfg.compression,
		Count:       uint32(len(sorted)),    //nolint:gosec
		Checksum:    hash.Sum(payload),
		PayloadLen:  uint32(len(compressed)), //nolint:gosec
	}
	if endian.IsBigEndian(cfg.engine) {
		header.Flags |= FlagBigEndian
	}

	// compressed may alias the pooled buffer, so it is copied out before the buffer is returned
	out := make([]byte, 0, HeaderSize+len(compressed))
	out = header.AppendTo(out)
	out = append(out, compressed...)

	return out, nil
}

// appendDeltas writes the first code and then each gap to its predecessor, zigzag and varint encoded.
func appendDeltas(buf *pool.ByteBuffer, sorted []int64) {
	var tmp [binary.MaxVarintLen64]byte

	// gaps between neighbouring cells mostly fit in one or two bytes
	buf.Grow(binary.MaxVarintLen64 + 2*len(sorted))

	prev := int64(0)
	for _, code := range sorted {
		delta := code - prev
		zigzag := (delta << 1) ^ (delta >> 63)

		n := binary.PutUvarint(tmp[:], uint64(zigzag)) //nolint:gosec
		buf.MustWrite(tmp[:n])
		prev = code
	}
}
