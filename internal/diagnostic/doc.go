// Package diagnostic provides structured, non-fatal quality reports
// for the flattener.
//
// Key capabilities:
//   - Marshaled-key collision reports with every colliding location
//   - Missing-origin and missing-catalog notices
//   - Severity-tagged formatting for CLI output
package diagnostic
