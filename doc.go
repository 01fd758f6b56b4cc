// Package camsgm is the root of a dense stereo-matching engine: a
// Semi-Global Matching (SGM) implementation that turns a rectified grey
// image pair into two disparity maps (left→right and right→left) using
// Census-transform local costs and eight-direction path-wise cost
// aggregation.
//
// The module has no logic of its own at this path — it exists to give the
// whole tree a landing page. The actual API lives in subpackages, organized
// leaf-first the same way the algorithm itself is layered:
//
//	bitword/    — fixed-width bit vectors + Hamming-distance lookup table
//	matrix/     — row-major Array2D/Array3D generic dense containers
//	rimage/     — Grey/Masked image views over a matrix
//	census/     — Census transform + Hamming cost lookup
//	sgmpath/    — the eight directional path walkers, collapsed to one type
//	pathsmgr/   — owns path instances and per-pixel best-cost cache
//	disparity/  — trimmed-mean disparity selection from eight path votes
//	aggregator/ — the SGM energy minimisation proper (one image side)
//	taskqueue/  — static dependency-graph scheduler with bounded parallelism
//	sgm/        — Parameters, Creator dispatch, and the Controller (Process/
//	              Terminate/Status) that runs both image sides concurrently
//
// Entry point for callers: sgm.NewController, sgm.Parameters, and
// (*sgm.Controller).Process.
//
// Out of scope (treated as external collaborators): host interop/marshaling,
// image and disparity-map file I/O, visualization, CLI/GUI, profiling,
// cross-check / hole-filling / sub-pixel refinement beyond what the
// disparity selector already stores.
package camsgm
