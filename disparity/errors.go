package disparity

import "errors"

// ErrTooManyVotes is returned by Computer.Store when more than pathsCount
// votes are stored for the same pixel without an intervening Finalize.
var ErrTooManyVotes = errors.New("disparity: too many votes stored for one pixel")
