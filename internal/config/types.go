package config

import (
	"gopkg.in/yaml.v3"
)

// File is a configuration file.
type File struct {
	Version  string   `yaml:"version"`
	Defaults Defaults `yaml:"defaults,omitempty"`
	Types    []Type   `yaml:"types"`
}

// Defaults apply to every type that does not set its own value.
type Defaults struct {
	Flavor     string `yaml:"flavor,omitempty"`
	Convention string `yaml:"convention,omitempty"`
}

// Type configures a single record type.
type Type struct {
	// Name is "pkg.Type" (package name or full import path) or a bare type name.
	Name       string           `yaml:"name"`
	Flavor     string           `yaml:"flavor,omitempty"`
	Convention string           `yaml:"convention,omitempty"`
	Fields     map[string]Field `yaml:"fields,omitempty"`
	Ignore     StringOrArray    `yaml:"ignore,omitempty"`
}

// Field configures a single field by its Go name.
type Field struct {
	Alias    string `yaml:"alias,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
	Default  string `yaml:"default,omitempty"`
}

// StringOrArray accepts a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		*s = StringOrArray{}
		if str != "" {
			*s = StringOrArray{str}
		}
		return nil
	}

	var arr []string
	if err := node.Decode(&arr); err != nil {
		return err
	}

	*s = arr
	return nil
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}
