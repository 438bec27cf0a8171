// Package businessflow contains the core business logic and use cases for the content management system
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Collection-related errors
	ErrItemNotFound    = errors.New("collection item not found")
	ErrUnknownTags     = errors.New("one or more tags do not exist")
	ErrItemIDRequired  = errors.New("collection item ID is required")
	ErrInvalidItemBody = errors.New("collection item body is invalid")

	// Tag-related errors
	ErrTagNotFound   = errors.New("tag not found")
	ErrTagIDRequired = errors.New("tag ID is required")

	// Post-related errors
	ErrPostNotFound   = errors.New("post not found")
	ErrPostIDRequired = errors.New("post ID is required")

	// Category-related errors
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryIDRequired = errors.New("category ID is required")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsItemNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound)
}

func IsUnknownTags(err error) bool {
	return errors.Is(err, ErrUnknownTags)
}

func IsTagNotFound(err error) bool {
	return errors.Is(err, ErrTagNotFound)
}

func IsPostNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}

func IsCategoryNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}
