// Package bitword provides fixed-width bit vectors sized to hold one Census
// signature, plus a precomputed popcount lookup table for fast Hamming
// distance between two signatures.
//
// A BitWord holds up to MaxBits bits, packed into 32-bit words. Only the
// first N words (N = ceil(L/32) for a signature length L) participate in
// HammingDistance; the rest of the backing array is unused zero padding,
// which keeps BitWord a fixed-size value type — safe to store directly in a
// matrix.Array2D without per-pixel heap allocation.
package bitword
