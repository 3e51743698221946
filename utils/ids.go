package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateReservationID returns "r" followed by 8 hex characters.
func GenerateReservationID() string {
	return "r" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
