// Package simd holds the float32 reduction kernels shared by every
// measured code path, plus host vector-ISA detection.
//
// The kernels are portable Go on purpose: the quantity under test is
// data-preparation cost, so the arithmetic must behave identically on
// every platform and on every call. The detected ISA is never used to
// swap implementations; it is surfaced as run metadata because timing
// numbers are hard to interpret without knowing the host's vector
// capability.
package simd
