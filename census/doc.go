// Package census computes the Census transform of a stereo image pair and
// the Hamming-distance matching cost derived from it.
//
// For each pixel, a square window of radius r is compared intensity-wise
// against the center pixel; each comparison contributes one bit to a
// bitword.BitWord signature (1 if the neighbor is strictly darker than the
// center, 0 otherwise). Pixels whose window would spill off the image use a
// mirrored-border variant that reflects the out-of-range coordinate back
// across the nearest edge, so every pixel — including the image border —
// gets a full-length signature.
package census
