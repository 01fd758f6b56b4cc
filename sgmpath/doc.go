// Package sgmpath walks one of the eight directional paths a pixel's
// aggregated cost accumulates over during semi-global matching.
//
// The eight directions are the four cardinal steps plus the four diagonals;
// each is just a (dRow, dCol) pair, so a single Path type parameterized by
// Direction replaces what the original implementation expressed as eight
// near-duplicate subclasses, one per direction.
package sgmpath
