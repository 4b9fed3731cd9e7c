package sample

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrCaptureOutOfOrder = fmt.Errorf("capture out of order: %w", commerr.ErrOutOfRange)
	ErrInvalidTimestamp  = fmt.Errorf("invalid timestamp: %w", commerr.ErrInvalidArgument)
)
