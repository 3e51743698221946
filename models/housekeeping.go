package models

import "fmt"

type HousekeepingState string

const (
	Clean HousekeepingState = "clean"
	Dirty HousekeepingState = "dirty"
)

func (h *HousekeepingState) UnmarshalText(b []byte) error {
	switch st := HousekeepingState(b); st {
	case Clean, Dirty:
		*h = st
		return nil
	default:
		return fmt.Errorf("unknown housekeeping state %q", string(b))
	}
}

// Housekeeping maps room id to cleanliness. A missing entry means clean.
type Housekeeping map[string]HousekeepingState

func (h Housekeeping) State(roomID string) HousekeepingState {
	if st, ok := h[roomID]; ok && st == Dirty {
		return Dirty
	}
	return Clean
}
