package model

import "errors"

var ErrThemeNotFound = errors.New("theme not found")
