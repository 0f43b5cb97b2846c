package settings

import (
	"reflect"
	"testing"
)

func TestToggleSlot_RemovesExisting(t *testing.T) {
	svc := NewSlotSettings([]string{"09:00", "10:00", "11:00"})

	got := svc.ToggleSlot("10:00")
	want := []string{"09:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestToggleSlot_ReAddsSorted(t *testing.T) {
	svc := NewSlotSettings([]string{"09:00", "10:00", "11:00"})

	svc.ToggleSlot("10:00")
	got := svc.ToggleSlot("10:00")
	want := []string{"09:00", "10:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListSlots_ReturnsCopy(t *testing.T) {
	svc := NewSlotSettings([]string{"09:00", "10:00"})

	first := svc.ListSlots()
	first[0] = "mutated"
	if got := svc.ListSlots(); got[0] != "09:00" {
		t.Fatalf("internal slot list mutated through returned slice: %v", got)
	}
}
