// Package dto defines the request and response shapes of the public API
package dto

// ErrorResponse is the body returned for every failure class
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned by delete confirmations
type MessageResponse struct {
	Message string `json:"message"`
}
