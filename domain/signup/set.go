package signup

import (
	"slices"

	"github.com/samber/lo"
)

// AttendeeSet is an immutable set of attendee identifiers.
// Add and Remove return a new set and leave the receiver untouched,
// so every sheet value built from a previous set stays valid.
// The zero value is the empty set.
type AttendeeSet struct {
	members map[AttendeeID]struct{}
}

func NewAttendeeSet(ids ...AttendeeID) AttendeeSet {
	if len(ids) == 0 {
		return AttendeeSet{}
	}
	members := make(map[AttendeeID]struct{}, len(ids))
	for _, id := range ids {
		members[id] = struct{}{}
	}
	return AttendeeSet{members: members}
}

// Add returns a set containing id. Adding a member that is already
// present returns the receiver unchanged.
func (s AttendeeSet) Add(id AttendeeID) AttendeeSet {
	if s.Contains(id) {
		return s
	}
	members := make(map[AttendeeID]struct{}, len(s.members)+1)
	for member := range s.members {
		members[member] = struct{}{}
	}
	members[id] = struct{}{}
	return AttendeeSet{members: members}
}

// Remove returns a set without id. Removing an absent member returns
// the receiver unchanged.
func (s AttendeeSet) Remove(id AttendeeID) AttendeeSet {
	if !s.Contains(id) {
		return s
	}
	members := make(map[AttendeeID]struct{}, len(s.members)-1)
	for member := range s.members {
		if member != id {
			members[member] = struct{}{}
		}
	}
	return AttendeeSet{members: members}
}

func (s AttendeeSet) Contains(id AttendeeID) bool {
	_, ok := s.members[id]
	return ok
}

func (s AttendeeSet) Len() int {
	return len(s.members)
}

// IDs returns the members sorted, for deterministic persistence and output.
func (s AttendeeSet) IDs() []AttendeeID {
	ids := lo.Keys(s.members)
	slices.Sort(ids)
	return ids
}
