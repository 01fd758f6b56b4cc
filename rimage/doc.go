// Package rimage provides the grayscale and masked-grayscale image views the
// matching engine operates on, plus a thin adapter to Go's standard image
// types.
//
// Only Grey and MaskedGrey images are accepted by the matching engine itself;
// Color and MaskedColor are rejected at creation time (see sgm.Creator) since
// the algorithm always matches on single-channel intensity.
package rimage
