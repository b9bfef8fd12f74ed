package availability

import (
	"fmt"
	"sync"

	"github.com/noah-isme/tutor-dashboard-api/internal/models"
)

// Default slot used when a tutor adds a slot without choosing times.
const (
	DefaultSlotStart = "09:00"
	DefaultSlotEnd   = "17:00"
)

// ScheduleStore holds the editable weekly template. Time strings are not
// validated here; the marketplace owns that rule.
type ScheduleStore struct {
	mu       sync.RWMutex
	schedule models.WeeklySchedule
	fallback models.TimeSlot
}

// NewScheduleStore hydrates a store from initial, which may be nil.
func NewScheduleStore(initial models.WeeklySchedule) (*ScheduleStore, error) {
	s := &ScheduleStore{
		schedule: models.EmptyWeeklySchedule(),
		fallback: models.TimeSlot{StartTime: DefaultSlotStart, EndTime: DefaultSlotEnd},
	}
	if err := s.ReplaceAll(initial); err != nil {
		return nil, err
	}
	return s, nil
}

// WithDefaultSlot overrides the slot appended by AddDefaultSlot.
func (s *ScheduleStore) WithDefaultSlot(slot models.TimeSlot) *ScheduleStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slot.StartTime != "" && slot.EndTime != "" {
		s.fallback = slot
	}
	return s
}

// AddSlot appends slot to day.
func (s *ScheduleStore) AddSlot(day models.Weekday, slot models.TimeSlot) error {
	if !day.Valid() {
		return fmt.Errorf("unknown weekday %q", string(day))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule[day] = append(s.schedule[day], slot)
	return nil
}

// AddDefaultSlot appends the default slot to day.
func (s *ScheduleStore) AddDefaultSlot(day models.Weekday) error {
	s.mu.RLock()
	slot := s.fallback
	s.mu.RUnlock()
	return s.AddSlot(day, slot)
}

// RemoveSlot deletes the slot at index. An out-of-range index is ignored.
func (s *ScheduleStore) RemoveSlot(day models.Weekday, index int) error {
	if !day.Valid() {
		return fmt.Errorf("unknown weekday %q", string(day))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	slots := s.schedule[day]
	if index < 0 || index >= len(slots) {
		return nil
	}
	next := make([]models.TimeSlot, 0, len(slots)-1)
	next = append(next, slots[:index]...)
	next = append(next, slots[index+1:]...)
	s.schedule[day] = next
	return nil
}

// UpdateSlot sets one field of the slot at index, keeping the other field.
func (s *ScheduleStore) UpdateSlot(day models.Weekday, index int, field models.SlotField, value string) error {
	if !day.Valid() {
		return fmt.Errorf("unknown weekday %q", string(day))
	}
	if field != models.SlotFieldStart && field != models.SlotFieldEnd {
		return fmt.Errorf("unknown slot field %q", string(field))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	slots := s.schedule[day]
	if index < 0 || index >= len(slots) {
		return nil
	}
	if field == models.SlotFieldStart {
		slots[index].StartTime = value
	} else {
		slots[index].EndTime = value
	}
	return nil
}

// ReplaceAll swaps the whole template, typically after loading settings.
func (s *ScheduleStore) ReplaceAll(schedule models.WeeklySchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	next := schedule.Clone()
	s.mu.Lock()
	s.schedule = next
	s.mu.Unlock()
	return nil
}

// Snapshot returns a deep copy safe to hand to the resolver or the wire.
func (s *ScheduleStore) Snapshot() models.WeeklySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schedule.Clone()
}

// SlotCount returns the number of slots configured for day.
func (s *ScheduleStore) SlotCount(day models.Weekday) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.schedule[day])
}
