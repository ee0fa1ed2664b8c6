package simd

import "runtime"

// ISA identifies a vector instruction set tier.
type ISA uint8

const (
	// Generic means no vector extension worth reporting.
	Generic ISA = iota
	// NEON is ARM64 ASIMD (128-bit).
	NEON
	// SVE2 is ARM64 scalable vectors.
	SVE2
	// AVX2 is x86-64 256-bit SIMD with FMA.
	AVX2
	// AVX512 is x86-64 512-bit SIMD (Foundation + BW).
	AVX512
)

func (i ISA) String() string {
	switch i {
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "generic"
	}
}

// Feature flags, filled in by the build-tagged init for the host
// architecture. They stay false on everything else.
var (
	hasASIMD    bool
	hasSVE2     bool
	hasAVX2     bool
	hasAVX512F  bool
	hasAVX512BW bool
)

// Best reports the highest vector ISA tier the host CPU supports.
func Best() ISA {
	switch runtime.GOARCH {
	case "arm64":
		if hasSVE2 {
			return SVE2
		}
		if hasASIMD {
			return NEON
		}
	case "amd64":
		if hasAVX512F && hasAVX512BW {
			return AVX512
		}
		if hasAVX2 {
			return AVX2
		}
	}
	return Generic
}

// Describe returns the host architecture and its best vector tier,
// e.g. "amd64/avx2".
func Describe() string {
	return runtime.GOARCH + "/" + Best().String()
}
