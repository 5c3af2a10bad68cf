package main

import (
	"fmt"
	"strings"

	"github.com/bndr/gotabulate"
	"github.com/fatih/color"

	"record-mapper/internal/analyze"
	"record-mapper/internal/diagnostic"
)

var recordHeaders = []string{"Field", "Go type", "Kind", "Key", "Read keys", "Flags", "Default"}

func renderRecord(r *analyze.Record) string {
	title := fmt.Sprintf("%s (%s)", analyze.QualifiedName(r.ID), r.Convention.Name())
	if len(r.Fields) == 0 {
		return title + ": no fields"
	}

	rows := make([][]any, 0, len(r.Fields))
	for _, f := range r.Fields {
		rows = append(rows, []any{
			f.Path,
			f.GoType,
			f.Kind.String(),
			f.WriteKey,
			strings.Join(f.ReadKeys, " "),
			flags(f),
			f.Default,
		})
	}

	t := gotabulate.Create(rows)
	t.SetHeaders(recordHeaders)
	t.SetAlign("left")
	t.SetEmptyString("-")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(40)

	return fmt.Sprintf("%s:\n%s", title, t.Render("grid"))
}

func flags(f analyze.Field) string {
	var out []string
	if f.Nullable {
		out = append(out, "nullable")
	}
	if f.Required {
		out = append(out, "required")
	}
	return strings.Join(out, ",")
}

func severity(s diagnostic.DiagnosticSeverity) string {
	label := s.String() + ":"
	switch s {
	case diagnostic.DiagnosticError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diagnostic.DiagnosticWarning:
		return color.YellowString(label)
	default:
		return color.CyanString(label)
	}
}
