// Package diagnostic provides structured errors, warnings and notes
// collected while record schemas and configuration files are checked.
//
// Key capabilities:
//   - Stable codes for every kind of schema problem
//   - Field paths and "did you mean" suggestions
//   - A combined error for callers that only need pass/fail
package diagnostic
