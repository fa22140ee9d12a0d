// Package compress provides the compression codecs applied to encoded mesh-code set payloads.
//
// A code-set payload is a run of varint deltas between sorted mesh codes. Neighbouring cells
// produce small, repetitive deltas, so a general-purpose compressor on top of the delta
// encoding shrinks large enumerations considerably.
//
// Supported algorithms:
//   - None (format.CompressionNone): payload stored as is
//   - Zstd (format.CompressionZstd): best ratio, used for cached and archived sets
//   - S2 (format.CompressionS2): fast with a good ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Zstd is implemented with github.com/klauspost/compress/zstd. Building with the gozstd tag
// and cgo enabled switches to the libzstd binding github.com/valyala/gozstd; both produce
// standard Zstandard frames and can read each other's output.
//
// Use GetCodec for the shared, stateless codec of a compression type:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//		return err
//	}
//	compressed, err := codec.Compress(payload)
//
// All codecs are safe for concurrent use.
package compress
