// Package aggregator runs semi-global cost aggregation for one image side
// (left-base or right-base): it computes the Census cost volume, walks all
// eight directional paths over two sweeps accumulating the SGM recurrence,
// and reduces each pixel's eight path costs to a final disparity.
package aggregator
