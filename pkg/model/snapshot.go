package model

// Snapshot is an immutable view of a form's canonical sequence at one version.
// The zero value is an empty sequence at version 0.
type Snapshot struct {
	version  uint64
	elements []PlacedElement
}

// NewSnapshot copies elements into a snapshot stamped with version.
func NewSnapshot(version uint64, elements []PlacedElement) Snapshot {
	return Snapshot{
		version:  version,
		elements: cloneElements(elements),
	}
}

// Version reports how many committed mutations produced this snapshot.
func (s Snapshot) Version() uint64 {
	return s.version
}

// Len reports the number of placed elements.
func (s Snapshot) Len() int {
	return len(s.elements)
}

// Empty reports whether the sequence has no elements.
func (s Snapshot) Empty() bool {
	return len(s.elements) == 0
}

// At returns a copy of the element at index i. The boolean is false when i is
// outside the sequence.
func (s Snapshot) At(i int) (PlacedElement, bool) {
	if i < 0 || i >= len(s.elements) {
		return PlacedElement{}, false
	}
	return s.elements[i].Clone(), true
}

// Elements returns a deep copy of the sequence.
func (s Snapshot) Elements() []PlacedElement {
	return cloneElements(s.elements)
}

// IDs lists element ids in sequence order.
func (s Snapshot) IDs() []string {
	ids := make([]string, len(s.elements))
	for i, el := range s.elements {
		ids[i] = el.ID
	}
	return ids
}

// IndexOf returns the position of the element with the given id, or -1.
func (s Snapshot) IndexOf(id string) int {
	for i, el := range s.elements {
		if el.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether i addresses an existing slot.
func (s Snapshot) Contains(i int) bool {
	return i >= 0 && i < len(s.elements)
}

func cloneElements(in []PlacedElement) []PlacedElement {
	if len(in) == 0 {
		return nil
	}
	out := make([]PlacedElement, len(in))
	for i, el := range in {
		out[i] = el.Clone()
	}
	return out
}
