// Package layout implements the ordered list store: the single source of truth
// for a form's field order. Two mutations exist. InsertAt materialises a
// catalog template with a fresh id and clamps the drop index into range.
// MoveTo relocates an existing element, reading the target index as the
// element's final position. Each committed mutation bumps the store version and
// publishes an immutable snapshot to every listener before returning, so all
// views observe the same sequence.
package layout
