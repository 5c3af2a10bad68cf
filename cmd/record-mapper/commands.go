package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"record-mapper/convention"
	"record-mapper/internal/analyze"
	"record-mapper/internal/config"
	"record-mapper/internal/diagnostic"
	"record-mapper/internal/match"
	"record-mapper/schema"
)

const defaultConfigFile = "record-mapper.yaml"

func runDescribe(a *app, args []string) error {
	fs := newFlagSet(a, "describe")
	pkg := fs.String("pkg", ".", "package pattern to load")
	typeName := fs.String("type", "", "record type: Order, shop.Order or the full import path")
	conv := fs.String("convention", a.env.Convention, "naming convention of the written keys")
	configFile := fs.String("config", "", "configuration file with field overrides")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *typeName == "" {
		return errors.New("-type is required")
	}

	graph, err := a.load(*pkg)
	if err != nil {
		return err
	}

	t := graph.Find(*typeName)
	if t == nil {
		return unknownType(graph, *typeName)
	}

	var o analyze.Overrides
	if *configFile != "" {
		f, err := config.LoadFile(*configFile)
		if err != nil {
			return err
		}

		if ct, ok := f.Lookup(analyze.QualifiedName(t.ID)); ok {
			o.Fields = ct.Fields
			o.Ignore = ct.Ignore
			if !flagSet(fs.Visit, "convention") && ct.Convention != "" {
				*conv = ct.Convention
			}
		}
	}

	if o.Convention, err = convention.Parse(*conv); err != nil {
		return err
	}

	r := analyze.Describe(t, o)
	fmt.Fprintln(a.stdout, renderRecord(r))

	return a.report(r.Diagnostics)
}

func runInit(a *app, args []string) error {
	fs := newFlagSet(a, "init")
	pkg := fs.String("pkg", ".", "package pattern to load")
	out := fs.String("out", defaultConfigFile, "file to write, - for standard output")
	flavor := fs.String("flavor", a.env.Flavor, "default flavor: generic or graph")
	conv := fs.String("convention", a.env.Convention, "default naming convention")
	force := fs.Bool("force", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out != "-" && !*force {
		if _, err := os.Stat(*out); err == nil {
			return fmt.Errorf("%s already exists, use -force to overwrite it", *out)
		}
	}

	graph, err := a.load(*pkg)
	if err != nil {
		return err
	}

	f := analyze.Skeleton(graph, config.Defaults{Flavor: *flavor, Convention: *conv})
	if diags := schema.CheckConfig(f); diags.HasErrors() {
		return a.report(diags)
	}

	if *out == "-" {
		data, err := config.Marshal(f)
		if err != nil {
			return err
		}
		_, err = a.stdout.Write(data)
		return err
	}

	if err := config.WriteFile(f, *out); err != nil {
		return err
	}

	a.logger.Info("configuration written", zap.String("file", *out), zap.Int("types", len(f.Types)))
	fmt.Fprintf(a.stdout, "wrote %d types to %s\n", len(f.Types), *out)

	return nil
}

func runCheck(a *app, args []string) error {
	fs := newFlagSet(a, "check")
	configFile := fs.String("config", defaultConfigFile, "configuration file to check")
	pkg := fs.String("pkg", "", "package pattern to check the configured types against")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f, err := config.LoadFile(*configFile)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics
	if *pkg == "" {
		diags = schema.CheckConfig(f)
	} else {
		graph, err := a.load(*pkg)
		if err != nil {
			return err
		}
		diags = analyze.CheckConfig(graph, f)
	}

	if err := a.report(diags); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%s: %d types ok\n", *configFile, len(f.Types))
	return nil
}

func (a *app) load(pattern string) (*analyze.TypeGraph, error) {
	a.logger.Debug("loading packages", zap.String("pattern", pattern))

	graph, err := analyze.NewAnalyzer().LoadPackages(pattern)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("packages loaded", zap.Int("packages", len(graph.Packages)), zap.Int("types", len(graph.Types)))
	return graph, nil
}

// report prints the diagnostics and returns errInvalid if any is an error.
func (a *app) report(diags diagnostic.Diagnostics) error {
	for _, d := range diags.All() {
		fmt.Fprintf(a.stderr, "%s %s\n", severity(d.Severity), d)
	}

	if diags.HasErrors() {
		a.logger.Debug("diagnostics reported", zap.Int("errors", len(diags.Errors)))
		return errInvalid
	}

	return nil
}

func unknownType(graph *analyze.TypeGraph, name string) error {
	var known []string
	for _, t := range graph.Types {
		if t.Kind == analyze.TypeKindStruct {
			known = append(known, analyze.QualifiedName(t.ID))
		}
	}

	err := fmt.Errorf("type %q not found", name)
	if suggestions := match.Suggest(name, known, 3); len(suggestions) > 0 {
		err = fmt.Errorf("%w; did you mean %s?", err, strings.Join(suggestions, ", "))
	}

	return err
}

func flagSet(visit func(func(*flag.Flag)), name string) bool {
	found := false
	visit(func(f *flag.Flag) {
		found = found || f.Name == name
	})
	return found
}
