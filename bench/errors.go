package bench

import "errors"

var (
	// ErrNoCases is returned when a run is started without cases.
	ErrNoCases = errors.New("no benchmark cases")
	// ErrNoAlgorithms is returned when a run is started without matchers.
	ErrNoAlgorithms = errors.New("no algorithms to benchmark")
	// ErrDisagreement is returned when matchers report different indexes for
	// the same case. It always indicates a matcher bug.
	ErrDisagreement = errors.New("algorithms disagree on match index")
)
