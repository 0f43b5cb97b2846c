// Package settings holds the runtime-editable booking configuration: the
// global list of bookable time-of-day slots shown by the time picker.
package settings

import (
	"sort"
	"sync"
)

// SlotSettingsService manages the shared time slot list.
type SlotSettingsService interface {
	// ListSlots returns the current bookable slots in ascending order.
	ListSlots() []string
	// ToggleSlot removes the slot if present, otherwise inserts it,
	// keeping the list sorted. Returns the resulting list.
	ToggleSlot(slot string) []string
}

// DefaultSlotSettingsService keeps the slot list in process memory.
type DefaultSlotSettingsService struct {
	mu    sync.RWMutex
	slots []string
}

// NewSlotSettings seeds the service with the configured defaults.
func NewSlotSettings(defaults []string) *DefaultSlotSettingsService {
	slots := make([]string, len(defaults))
	copy(slots, defaults)
	sort.Strings(slots)
	return &DefaultSlotSettingsService{slots: slots}
}

func (s *DefaultSlotSettingsService) ListSlots() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.slots))
	copy(out, s.slots)
	return out
}

func (s *DefaultSlotSettingsService) ToggleSlot(slot string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]string, 0, len(s.slots)+1)
	removed := false
	for _, existing := range s.slots {
		if existing == slot {
			removed = true
			continue
		}
		updated = append(updated, existing)
	}
	if !removed {
		updated = append(updated, slot)
		sort.Strings(updated)
	}
	s.slots = updated

	out := make([]string, len(updated))
	copy(out, updated)
	return out
}
