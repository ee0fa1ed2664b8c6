package sizeof

import (
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/vecbench/codec"
	"github.com/hupe1980/vecbench/vector"
)

// EncodedLoose returns the byte length of the loose rows serialized
// with c (codec.Default when nil). This is what shipping the boxed
// representation over a text or binary wire would cost.
func EncodedLoose(rows []vector.Loose, c codec.Codec) (int64, error) {
	if c == nil {
		c = codec.Default
	}
	b, err := c.Marshal(rows)
	if err != nil {
		return 0, err
	}
	return int64(len(b)), nil
}

// EncodedPacked returns the byte length of the packed buffer serialized
// as raw little-endian element bytes. The packed form has no framing, so
// its wire cost equals its resident cost.
func EncodedPacked(p *vector.Packed) int64 {
	return p.ByteSize()
}

// CompressedZstd returns the zstd-compressed length of p at the
// default speed level.
func CompressedZstd(p []byte) (int64, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, err
	}
	defer enc.Close()

	return int64(len(enc.EncodeAll(p, nil))), nil
}

// CompressedLZ4 returns the lz4 block-compressed length of p.
// Incompressible input reports its raw length, the cost of an
// uncompressed store.
func CompressedLZ4(p []byte) (int64, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(p)))
	n, err := lz4.CompressBlock(p, dst, nil)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return int64(len(p)), nil
	}
	return int64(n), nil
}
