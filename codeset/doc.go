// Package codeset stores a set of mesh codes of one level in a compact binary blob.
//
// Enumerating a viewport at a fine level yields many thousands of codes whose numeric values
// are close together. A code set sorts them, stores the first code and the gaps between
// neighbours as zigzag varints, and compresses the result with one of the codecs in package
// compress.
//
// # Layout
//
// Every blob starts with a fixed 24-byte header:
//
//	offset  size  field
//	0       2     magic 0x4A4D
//	2       1     format version (1)
//	3       1     mesh level (1-6)
//	4       1     compression type (format.CompressionType)
//	5       1     flags; bit 0 set means the multi-byte fields are big endian
//	6       2     reserved, zero
//	8       4     number of codes
//	12      8     xxHash64 of the uncompressed payload
//	20      4     length of the compressed payload
//
// The compressed payload follows immediately. Decode verifies the magic, version, level,
// payload length and checksum before returning a Set.
//
// # Usage
//
//	codes, _ := enumerator.Codes(viewport, mesh.Level5)
//	blob, err := codeset.Encode(mesh.Level5, codes, codeset.WithCompression(format.CompressionS2))
//	...
//	set, err := codeset.Decode(blob)
//	set.Contains("5339359921")
package codeset
