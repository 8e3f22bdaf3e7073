package stack

import "errors"

// ErrEmptyStack is returned by Pop and Peek when no frame is stored.
var ErrEmptyStack = errors.New("stack: empty stack")
