package codec

import (
	"go.uber.org/zap"

	"record-mapper/container"
	"record-mapper/internal/match"
	"record-mapper/schema"
)

// resolve looks the field up by each key of its ladder, first match wins.
func resolve(src container.Source, ladder []string) (raw any, key string, found bool) {
	for _, k := range ladder {
		if v, ok := src.Lookup(k); ok {
			return v, k, true
		}
	}

	return nil, "", false
}

func (e *engine) lookup(s *schema.Schema, f *schema.FieldDescriptor, src container.Source, path string) (any, bool) {
	raw, key, found := resolve(src, f.ReadKeys)
	if found && key != f.ReadKeys[0] {
		e.logger.Debug("field resolved by fallback key",
			zap.String("record", s.Name()),
			zap.String("field", path),
			zap.String("key", key),
		)
	}

	return raw, found
}

func missing(f *schema.FieldDescriptor, src container.Source, path string) *MissingFieldError {
	return &MissingFieldError{
		Path:        path,
		Tried:       f.ReadKeys,
		Suggestions: match.Suggest(f.Name, src.Keys(), 3),
	}
}
