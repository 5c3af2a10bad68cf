// Package keys derives the container keys of a field: the single key it is
// written under and the ladder of candidate keys it is read from.
package keys

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"record-mapper/convention"
)

const cacheSize = 4096

type ladderKey struct {
	name, alias string
}

var ladders *lru.Cache[ladderKey, []string]

func init() {
	cache, err := lru.New[ladderKey, []string](cacheSize)
	if err != nil {
		panic(err)
	}

	ladders = cache
}

// Ladder returns the keys a field is looked up by, in priority order:
// alias, name, camelCase, dash-case, PascalCase, lowercase and SCREAMING_CASE
// renditions of the name. Duplicates and empty keys are dropped, the first
// occurrence wins.
func Ladder(name, alias string) []string {
	key := ladderKey{name: name, alias: alias}
	if cached, ok := ladders.Get(key); ok {
		return slices.Clone(cached)
	}

	candidates := []string{
		alias,
		name,
		convention.ToCamel(name),
		convention.ToDash(name),
		convention.ToPascal(name),
		convention.ToLower(name),
		convention.ToScreaming(name),
	}

	ladder := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c != "" && !slices.Contains(ladder, c) {
			ladder = append(ladder, c)
		}
	}

	ladders.Add(key, ladder)

	return slices.Clone(ladder)
}

// WriteKey is the key a field is written under: the alias when present,
// otherwise the name transformed by the convention.
func WriteKey(name, alias string, c convention.Convention) string {
	if alias != "" {
		return alias
	}

	return convention.Transform(name, c)
}
