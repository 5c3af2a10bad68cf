package analyze

import (
	"fmt"
	"slices"
	"strings"

	"record-mapper/convention"
	"record-mapper/internal/common"
	"record-mapper/internal/config"
	"record-mapper/internal/diagnostic"
	"record-mapper/internal/match"
	"record-mapper/schema"
)

// QualifiedName is the configuration name of a type: "pkg.Type".
func QualifiedName(id TypeID) string {
	if alias := common.PkgAlias(id.PkgPath); alias != "" {
		return alias + "." + id.Name
	}
	return id.Name
}

// Find looks up a struct type by its configuration name: "pkg.Type",
// "import/path.Type" or a bare "Type".
func (g *TypeGraph) Find(name string) *TypeInfo {
	for _, path := range g.packagePaths() {
		for _, t := range g.Structs(path) {
			switch {
			case name == t.ID.String(), name == QualifiedName(t.ID):
				return t
			case !strings.Contains(name, ".") && name == t.ID.Name:
				return t
			}
		}
	}

	return nil
}

func (g *TypeGraph) packagePaths() []string {
	paths := make([]string, 0, len(g.Packages))
	for path := range g.Packages {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// Skeleton builds a configuration listing every struct type of the loaded
// packages with the settings already present in their tags. Fields that
// cannot be mapped are ignored.
func Skeleton(g *TypeGraph, defaults config.Defaults) *config.File {
	f := &config.File{Version: "1", Defaults: defaults}

	for _, path := range g.packagePaths() {
		for _, t := range g.Structs(path) {
			ct := config.Type{
				Name:   QualifiedName(t.ID),
				Fields: make(map[string]config.Field),
			}

			for _, fi := range recordFields(t) {
				tag := fi.DictTag()
				if _, _, ok := Classify(fi.Type); tag.Skip || !ok {
					ct.Ignore = append(ct.Ignore, fi.Name)
					continue
				}
				ct.Fields[fi.Name] = config.Field{Alias: tag.Alias, Optional: tag.Optional, Default: tag.DefaultExpr}
			}

			f.Types = append(f.Types, ct)
		}
	}

	return f
}

// CheckConfig validates a configuration file against the loaded types: the
// file on its own first, then every configured type as it would be built.
func CheckConfig(g *TypeGraph, f *config.File) diagnostic.Diagnostics {
	diags := schema.CheckConfig(f)

	var known []string
	for _, path := range g.packagePaths() {
		for _, t := range g.Structs(path) {
			known = append(known, QualifiedName(t.ID))
		}
	}

	for i := range f.Types {
		ct := &f.Types[i]
		if ct.Name == "" {
			continue
		}

		t := g.Find(ct.Name)
		if t == nil {
			diags.AddError(diagnostic.CodeUnknownType, fmt.Sprintf("type %q is not defined in the loaded packages", ct.Name),
				ct.Name, "", match.Suggest(ct.Name, known, 3)...)
			continue
		}

		name := ct.Convention
		if name == "" {
			name = f.Defaults.Convention
		}
		c, _ := convention.Parse(name)
		r := Describe(t, Overrides{Convention: c, Fields: ct.Fields, Ignore: ct.Ignore})
		diags.Merge(r.Diagnostics)
	}

	return diags
}
