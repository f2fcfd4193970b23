package model

import "errors"

var ErrInvalidContent = errors.New("invalid site content")
