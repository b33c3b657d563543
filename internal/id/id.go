// Package id issues the opaque unique tokens used for entries, list
// items, and expenses.
package id

import "github.com/google/uuid"

// New returns a fresh opaque id.
func New() string {
	return uuid.NewString()
}
