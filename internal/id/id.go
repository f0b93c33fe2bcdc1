// Package id generates the short opaque identifiers assigned to catalog records.
package id

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Length is the number of characters in every generated id.
const Length = 6

// New returns a fresh 6-character URL-safe id.
// Ids carry no ordering information.
func New() (string, error) {
	return gonanoid.New(Length)
}
