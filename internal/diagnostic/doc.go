// Package diagnostic provides structured errors, warnings, and notes
// produced while reconstructing attribute trees.
//
// Key capabilities:
//   - Precondition violations (empty segments, duplicate keys)
//   - Key collisions that forced dotted keys to be kept literal
//   - "Did you mean" suggestions for lookups that found nothing
package diagnostic
