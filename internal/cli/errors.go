package cli

import "errors"

// Error kinds returned by the commands.
var (
	ErrRejected = errors.New("calculation rejected")
	ErrRemote   = errors.New("remote calculation failed")
)
