package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewReferenceCode builds a short booking reference like "CR-9F2A41C7",
// shown to the customer and quoted in every email.
func NewReferenceCode() string {
	id := uuid.New().String()
	return "CR-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
