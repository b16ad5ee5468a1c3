// Package testsupport holds fixture and golden-file helpers shared by tests.
package testsupport
