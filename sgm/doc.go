// Package sgm assembles bitword, rimage, census, sgmpath, pathsmgr,
// disparity, aggregator, and taskqueue into the engine's external control
// surface: Parameters describes one matching run, Creator validates and
// clamps those parameters against a concrete image pair, and Controller
// drives the two-sided (left-base, right-base) aggregation through a
// ten-task dependency graph and exposes the resulting disparity maps.
package sgm
