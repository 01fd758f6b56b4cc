// Package matrix provides the row-major dense containers every other
// package in this module builds on: Array2D[T] for per-pixel state (Census
// signatures, the disparity map) and Array3D[T] for per-(pixel,path) state
// (path handles, best-path-cost caches).
//
// Both types store elements in one flat slice for cache-friendly access,
// following the same layout as a classic dense matrix: row-major, with
// index(r,c) = r*cols+c (Array2D) and index(r,c,d) = (r*cols+c)*dim+d
// (Array3D). Unlike a linear-algebra matrix, there is no notion of addition,
// multiplication, or symmetry here — these are plain typed grids.
package matrix
