package types

import (
	"encoding/json"
	"sort"
	"strings"
)

// SubBreeds is the optional list of sub-breeds that belong to a breed.
//
// The Dog API reports a breed without sub-breeds as an empty array. Rather
// than handing that back as an empty slice, which can't be told apart from a
// list that is present but happens to hold nothing, the zero value of
// SubBreeds means "no sub-breeds" and Present reports whether a list exists.
type SubBreeds struct {
	names   []string
	present bool
}

// NoSubBreeds returns the absent SubBreeds value. It is equal to the zero
// value.
func NoSubBreeds() SubBreeds {
	return SubBreeds{}
}

// NewSubBreeds returns a present SubBreeds holding a copy of names. A nil or
// empty names still produces a present value.
func NewSubBreeds(names []string) SubBreeds {
	cp := make([]string, len(names))
	copy(cp, names)
	return SubBreeds{names: cp, present: true}
}

// Present reports whether the breed has a sub-breed list.
func (s SubBreeds) Present() bool {
	return s.present
}

// Names returns a copy of the sub-breed names and whether the list is present.
func (s SubBreeds) Names() ([]string, bool) {
	if !s.present {
		return nil, false
	}
	cp := make([]string, len(s.names))
	copy(cp, s.names)
	return cp, true
}

func (s SubBreeds) Len() int {
	return len(s.names)
}

func (s SubBreeds) String() string {
	if !s.present {
		return "<none>"
	}
	return "[" + strings.Join(s.names, " ") + "]"
}

// MarshalJSON encodes an absent list as null and a present one as an array.
func (s SubBreeds) MarshalJSON() ([]byte, error) {
	if !s.present {
		return []byte("null"), nil
	}
	if s.names == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.names)
}

func (s *SubBreeds) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NoSubBreeds()
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = NewSubBreeds(names)
	return nil
}

// BreedCatalog maps every breed name known to the Dog API to its sub-breeds.
type BreedCatalog map[string]SubBreeds

// Breeds returns the breed names in the catalog in sorted order.
func (c BreedCatalog) Breeds() []string {
	breeds := make([]string, 0, len(c))
	for b := range c {
		breeds = append(breeds, b)
	}
	sort.Strings(breeds)
	return breeds
}

func (c BreedCatalog) Has(breed string) bool {
	_, ok := c[breed]
	return ok
}

// SubBreeds returns the sub-breeds of breed. If the breed is not in the
// catalog the absent value is returned and ok is false.
func (c BreedCatalog) SubBreeds(breed string) (subBreeds SubBreeds, ok bool) {
	subBreeds, ok = c[breed]
	return subBreeds, ok
}
