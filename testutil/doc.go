// Package testutil provides helpers for deterministic tests: a seeded,
// thread-safe random number generator and vector fixture generation.
package testutil
