package sessions

import "errors"

var ErrNotFound = errors.New("not found")
