package codeset

import (
	"fmt"

	"github.com/arloliu/jismesh/endian"
	"github.com/arloliu/jismesh/errs"
	"github.com/arloliu/jismesh/format"
	"github.com/arloliu/jismesh/mesh"
)

const (
	// HeaderSize is the fixed size of the code-set header in bytes.
	HeaderSize = 24

	// Magic identifies a code-set blob.
	Magic uint16 = 0x4A4D
	// Version is the format version written by Encode.
	Version uint8 = 1

	// FlagBigEndian marks a header whose multi-byte fields are big endian.
	FlagBigEndian uint8 = 0x01
)

// Header is the fixed-size header at the start of a code-set blob.
type Header struct {
	Level       mesh.Level             // byte offset 3
	Compression format.CompressionType // byte offset 4
	Flags       uint8                  // byte offset 5
	Count       uint32                 // byte offset 8-11
	Checksum    uint64                 // byte offset 12-19
	PayloadLen  uint32                 // byte offset 20-23
}

// Engine returns the byte order selected by the header flags.
func (h *Header) Engine() endian.EndianEngine {
	if h.Flags&FlagBigEndian != 0 {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Parse parses the header from data, which must hold at least HeaderSize bytes.
//
// Returns an error wrapping errs.ErrInvalidCodeSet when the magic, version, level or
// compression type is not recognised.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes is shorter than the %d byte header", errs.ErrInvalidCodeSet, len(data), HeaderSize)
	}

	// the flags byte decides how the remaining fields are read
	h.Flags = data[5]
	engine := h.Engine()

	if magic := engine.Uint16(data[0:2]); magic != Magic {
		return fmt.Errorf("%w: bad magic 0x%04X", errs.ErrInvalidCodeSet, magic)
	}
	if version := data[2]; version != Version {
		return fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidCodeSet, version)
	}

	h.Level = mesh.Level(data[3])
	if !h.Level.Valid() {
		return fmt.Errorf("%w: %w: %d", errs.ErrInvalidCodeSet, errs.ErrInvalidLevel, data[3])
	}
	h.Compression = format.CompressionType(data[4])
	if !h.Compression.Valid() {
		return fmt.Errorf("%w: unknown compression type %d", errs.ErrInvalidCodeSet, data[4])
	}

	h.Count = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[12:20])
	h.PayloadLen = engine.Uint32(data[20:24])

	return nil
}

// AppendTo appends the serialized header to b.
func (h *Header) AppendTo(b []byte) []byte {
	engine := h.Engine()

	b = engine.AppendUint16(b, Magic)
	b = append(b, Version, uint8(h.Level), uint8(h.Compression), h.Flags)
	b = engine.AppendUint16(b, 0)
	b = engine.AppendUint32(b, h.Count)
	b = engine.AppendUint64(b, h.Checksum)
	b = engine.AppendUint32(b, h.PayloadLen)

	return b
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// ParseHeader parses the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
