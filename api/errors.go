// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the hioload-fifo library. The allocator hot path
// is error-free by design; these surface only from construction and from
// platform helpers.

package api

import "fmt"

var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrNotSupported    = fmt.Errorf("operation not supported")
)
