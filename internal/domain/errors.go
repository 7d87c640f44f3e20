package domain

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrConflict      = errors.New("resource conflict")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyImage    = errors.New("meal image is empty")
	ErrDuplicateUser = errors.New("user with this email already exists")
)
