package colorrule

import "errors"

var ErrUnknownCondition = errors.New("unknown color rule condition")
