// Package disparity turns the eight per-direction path disparities an
// aggregator found for one pixel into a single final disparity estimate,
// using a trimmed-mean selection that discards outlying path votes before
// averaging.
package disparity
