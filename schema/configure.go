package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/hashicorp/go-version"

	"record-mapper/convention"
	"record-mapper/internal/common"
	"record-mapper/internal/config"
	"record-mapper/internal/diagnostic"
	"record-mapper/internal/match"
)

// Configure registers the options of every type in the configuration file.
// Go cannot find types by name, so the candidate types are passed in; a
// configured name matches "pkg.Type", "import/path.Type" or a bare "Type".
func (r *Registry) Configure(f *config.File, types ...reflect.Type) error {
	diags := CheckConfig(f)
	if diags.HasErrors() {
		return &SchemaError{Type: "configuration", Diagnostics: diags}
	}

	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, qualifiedName(t))
	}

	for i := range f.Types {
		ct := &f.Types[i]

		t, ok := matchType(ct.Name, types)
		if !ok {
			diags.AddError(diagnostic.CodeUnknownType, fmt.Sprintf("type %q is not known", ct.Name),
				ct.Name, "", match.Suggest(ct.Name, names, 3)...)
			continue
		}

		r.Register(t, TypeOptions(ct)...)
	}

	if diags.HasErrors() {
		return &SchemaError{Type: "configuration", Diagnostics: diags}
	}

	return nil
}

// TypeOptions turns a configured type into options. Invalid flavors and
// conventions are left out, CheckConfig reports them.
func TypeOptions(ct *config.Type) []Option {
	var opts []Option

	if ct.Flavor != "" {
		if f, err := ParseFlavor(ct.Flavor); err == nil {
			opts = append(opts, WithFlavor(f))
		}
	}

	if ct.Convention != "" {
		if c, err := convention.Parse(ct.Convention); err == nil {
			opts = append(opts, WithConvention(c))
		}
	}

	for _, name := range sortedKeys(ct.Fields) {
		field := ct.Fields[name]
		if field.Alias != "" {
			opts = append(opts, WithAlias(name, field.Alias))
		}
		if field.Optional {
			opts = append(opts, WithOptional(name))
		}
		if field.Default != "" {
			opts = append(opts, WithDefault(name, field.Default))
		}
	}

	if len(ct.Ignore) > 0 {
		opts = append(opts, WithIgnore(ct.Ignore...))
	}

	return opts
}

// CheckConfig validates a configuration file on its own, without the types
// it configures.
func CheckConfig(f *config.File) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	checkVersion(&diags, f.Version)

	checkFlavor(&diags, f.Defaults.Flavor, "defaults")
	checkConvention(&diags, f.Defaults.Convention, "defaults")

	seen := make(map[string]bool)
	for i := range f.Types {
		ct := &f.Types[i]

		if ct.Name == "" {
			diags.AddError(diagnostic.CodeEmptyName, fmt.Sprintf("type #%d has no name", i+1), "", "")
			continue
		}

		if seen[ct.Name] {
			diags.AddError(diagnostic.CodeDuplicateKey, "type is configured twice", ct.Name, "")
		}
		seen[ct.Name] = true

		checkFlavor(&diags, ct.Flavor, ct.Name)
		checkConvention(&diags, ct.Convention, ct.Name)

		aliases := make(map[string]string)
		for _, name := range sortedKeys(ct.Fields) {
			if name == "" {
				diags.AddError(diagnostic.CodeEmptyName, "field without a name", ct.Name, "")
				continue
			}

			alias := ct.Fields[name].Alias
			if alias == "" {
				continue
			}

			if other, dup := aliases[alias]; dup {
				diags.AddError(diagnostic.CodeDuplicateKey,
					fmt.Sprintf("alias %q is also used by field %s", alias, other), ct.Name, name)
				continue
			}
			aliases[alias] = name
		}
	}

	return diags
}

// supportedVersions are the configuration file versions this package reads.
var supportedVersions = version.MustConstraints(version.NewConstraint(">= 1, < 2"))

func checkVersion(diags *diagnostic.Diagnostics, v string) {
	parsed, err := version.NewVersion(v)
	switch {
	case err != nil:
		diags.AddError(diagnostic.CodeBadVersion, fmt.Sprintf("version %q: %v", v, err), "", "")
	case !supportedVersions.Check(parsed):
		diags.AddError(diagnostic.CodeBadVersion,
			fmt.Sprintf("unsupported version %q, want %s", v, supportedVersions), "", "")
	}
}

func checkFlavor(diags *diagnostic.Diagnostics, flavor, typeName string) {
	if flavor == "" {
		return
	}

	if _, err := ParseFlavor(flavor); err != nil {
		diags.AddError(diagnostic.CodeBadFlavor, err.Error(), typeName, "",
			match.Suggest(flavor, []string{"generic", "graph"}, 1)...)
	}
}

func checkConvention(diags *diagnostic.Diagnostics, name, typeName string) {
	if name == "" {
		return
	}

	if _, err := convention.Parse(name); err != nil {
		var known []string
		for c := range convention.Convention(convention.ConventionTotal) {
			known = append(known, c.Name())
		}
		diags.AddError(diagnostic.CodeBadConvention, err.Error(), typeName, "", match.Suggest(name, known, 1)...)
	}
}

func qualifiedName(t reflect.Type) string {
	if alias := common.PkgAlias(t.PkgPath()); alias != "" {
		return alias + "." + t.Name()
	}
	return t.Name()
}

func matchType(name string, types []reflect.Type) (reflect.Type, bool) {
	for _, t := range types {
		switch {
		case name == t.PkgPath()+"."+t.Name(), name == qualifiedName(t):
			return t, true
		case !strings.Contains(name, ".") && name == t.Name():
			return t, true
		}
	}

	return nil, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
