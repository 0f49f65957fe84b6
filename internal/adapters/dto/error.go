// Package dto provides shared data transfer objects for API responses.
package dto

// ErrorResponse is the body of every failed API call.
// Kind is machine-readable; Detail is safe to show to users.
type ErrorResponse struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}
