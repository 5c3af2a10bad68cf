package match

import (
	"sort"
)

// Candidate is a container key scored against a field name.
type Candidate struct {
	Key string

	// NameScore is the normalized Levenshtein similarity (0-1).
	NameScore float64

	// NormalizedKey is kept for explanations.
	NormalizedKey string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// DefaultSuggestScore is the minimum similarity for a key to be suggested.
const DefaultSuggestScore = 0.5

// RankKeys scores every key against the field name and returns them sorted by
// score (descending).
func RankKeys(field string, keys []string) CandidateList {
	candidates := make(CandidateList, 0, len(keys))

	for _, key := range keys {
		score := max(
			NormalizedLevenshteinScore(field, key),
			NormalizedLevenshteinScoreWithSuffixStrip(field, key),
		)

		candidates = append(candidates, Candidate{
			Key:           key,
			NameScore:     score,
			NormalizedKey: NormalizeIdent(key),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns at most limit keys that look like a misspelling of field.
func Suggest(field string, keys []string, limit int) []string {
	var out []string
	for _, c := range RankKeys(field, keys).AboveThreshold(DefaultSuggestScore).Top(limit) {
		out = append(out, c.Key)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by key for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].NameScore != c[j].NameScore {
		return c[i].NameScore > c[j].NameScore
	}

	return c[i].Key < c[j].Key
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// AboveThreshold returns candidates with score above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.NameScore >= threshold {
			result = append(result, cand)
		}
	}
	return result
}
