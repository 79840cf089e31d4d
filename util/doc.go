// Package util provides the small helpers shared by the dispatcher and every
// provider adapter.
//
// It covers trait/property maps (one-level cloning, key aliasing, typed
// lookups), identity heuristics, timestamp conversion and query-string
// parsing, plus a few generic slice helpers.
package util
