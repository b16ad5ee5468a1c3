// Package template defines the template rendering seam used by the preview
// view. Implementations live in subpackages so views depend on the interface
// only.
package template
