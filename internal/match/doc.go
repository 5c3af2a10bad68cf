// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking used to suggest container keys that were probably
// meant when a required field is missing.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankKeys: ranks container keys against a field name
//   - Suggest: the best few keys for a "did you mean" hint
package match
