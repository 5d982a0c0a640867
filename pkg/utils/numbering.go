package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateDocumentNo builds a document number like "PO-1A2B3C4D". The
// random tail keeps numbers unique without a counter round-trip.
func GenerateDocumentNo(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateItemCode generates a unique catalog item code
func GenerateItemCode() string {
	return "ITM-" + strings.ToUpper(uuid.New().String()[:8])
}
