package pathsmgr

import "errors"

// ErrInvalidDimensions is returned when a Manager is constructed with a
// non-positive row or column count.
var ErrInvalidDimensions = errors.New("pathsmgr: invalid dimensions")
