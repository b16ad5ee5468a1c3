// Package model defines the element types shared by the catalog, the ordered
// list store and the views. Element templates are immutable blueprints owned by
// the catalog; placed elements are concrete, uniquely identified fields living
// in a form's canonical sequence. Snapshots expose that sequence read-only and
// carry a version that increases with every committed mutation, so views can
// tell which state they rendered.
package model
