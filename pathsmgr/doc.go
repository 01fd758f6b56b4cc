// Package pathsmgr owns the per-pixel arena of sgmpath.Path handles and
// their cached best-disparity path costs, and seeds every border pixel's
// path with its zero-step cost before aggregation begins.
//
// Aggregation only ever needs a path handle at the image border: every
// interior pixel's path state is derived, step by step, from its
// predecessor along the same direction, so the arena only has to hold (and
// initialize) the paths whose direction originates at each border pixel.
package pathsmgr
