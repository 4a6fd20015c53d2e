package core

import "errors"

var (
	ErrInvalidPosition      = errors.New("invalid position")
	ErrNoFileName           = errors.New("no file name")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrPromptActive         = errors.New("prompt already active")
)
