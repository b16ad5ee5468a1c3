// Package prompt runs a line-oriented builder session: each answer is turned
// into a complete drag gesture against a workspace.
package prompt
