// Package mem provides aligned slice allocation.
//
// Packed vector buffers are allocated through this package so their
// starting addresses do not vary between the compared code paths.
package mem
