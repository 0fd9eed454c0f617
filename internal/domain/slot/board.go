package slot

import (
	"maps"
	"slices"
)

type Set map[string]struct{}

func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Board is every reservation record for one date and location.
type Board struct {
	date     Date
	location string
	global   Set
	scoped   map[string]Set
}

func NewBoard(date Date, location string) *Board {
	return &Board{
		date:     date,
		location: location,
		global:   Set{},
		scoped:   map[string]Set{},
	}
}

func (b *Board) Date() Date       { return b.date }
func (b *Board) Location() string { return b.location }

// Add records ids as booked in scope.
func (b *Board) Add(scope Scope, ids ...string) {
	pkg, ok := scope.Package()
	if !ok {
		for _, id := range ids {
			b.global[id] = struct{}{}
		}
		return
	}
	set, exists := b.scoped[pkg]
	if !exists {
		set = Set{}
		b.scoped[pkg] = set
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
}

// IsAvailable is false when slotID is booked in the global set, or in the
// package set named by scope. A global scope consults only the global set.
func (b *Board) IsAvailable(scope Scope, slotID string) bool {
	if b.global.Has(slotID) {
		return false
	}
	if pkg, ok := scope.Package(); ok {
		return !b.scoped[pkg].Has(slotID)
	}
	return true
}

// Booked returns the sorted ids of one scope's own set.
func (b *Board) Booked(scope Scope) []string {
	pkg, ok := scope.Package()
	if !ok {
		return b.global.Sorted()
	}
	return b.scoped[pkg].Sorted()
}

// Packages lists packages that have a reservation record, sorted.
func (b *Board) Packages() []string {
	return slices.Sorted(maps.Keys(b.scoped))
}
