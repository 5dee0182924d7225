// Package coerce implements a format-aware value conversion engine. Given a
// source value of one recognized category and a requested target type it
// attempts a best-effort, deterministic conversion and reports success with a
// comma-ok flag instead of an error; structurally incompatible pairs and
// malformed text degrade to the target's zero value, never to a panic.
//
// The engine recognizes a closed set of categories: booleans, the integral
// widths, floats, arbitrary-precision decimals, strings, byte sequences,
// GUIDs, URIs, date-times with and without explicit offsets, durations,
// registered enum types, type descriptors and pointer (nullable) wrappers
// around any of these. Everything else is opaque and never convertible.
package coerce
