package circuit

import "errors"

// ErrIndexOutOfRange indicates a box index outside [0, N).
var ErrIndexOutOfRange = errors.New("circuit: box index out of range")

// ErrInsufficientEdges indicates that fewer edges exist than connections
// were requested.
var ErrInsufficientEdges = errors.New("circuit: not enough edges")

// ErrInsufficientPartitions indicates that fewer circuits remain than the
// number of largest ones requested.
var ErrInsufficientPartitions = errors.New("circuit: not enough circuits")

// ErrNeverCompletes indicates that every edge was connected without joining
// all boxes into one circuit. With no edges at all (N <= 1) this is always
// the case.
var ErrNeverCompletes = errors.New("circuit: edges exhausted before all boxes were connected")
