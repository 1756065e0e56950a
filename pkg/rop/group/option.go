package group

import (
	"runtime"
	"time"
)

// option is option for the group combinators.
type option struct {
	procs   int
	timeout time.Duration
}

// Option is option for the group combinators.
type Option func(*option)

// Procs specifies max num of inputs awaited at the same time.
//
// If 0 or less is specified, there is no limit.
func Procs(n int) Option {
	return func(o *option) {
		o.procs = n
	}
}

// ProcsNumCPU sets [runtime.NumCPU] to [Procs].
func ProcsNumCPU() Option {
	return Procs(runtime.NumCPU())
}

// Timeout bounds the wait for each input.
//
// If 0 or less is specified, no timeout is set.
func Timeout(d time.Duration) Option {
	return func(o *option) {
		o.timeout = d
	}
}

func newOption(opts []Option) *option {
	o := new(option)
	for _, opt := range opts {
		opt(o)
	}
	return o
}
