// Package main provides the CLI entrypoint for record-mapper.
//
// record-mapper inspects record types the way the codec sees them:
//   - describe prints the fields of a record with their kinds and keys
//   - init writes a configuration skeleton for the records of a package
//   - check validates a configuration file, optionally against the packages
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"record-mapper/internal/config"
	"record-mapper/internal/logging"
)

// errInvalid is returned once the diagnostics have been printed.
var errInvalid = errors.New("invalid")

var commands = map[string]func(a *app, args []string) error{
	"describe": runDescribe,
	"init":     runInit,
	"check":    runCheck,
}

var usages = map[string]string{
	"describe": "describe -type Order [-pkg ./model] [-convention camel] [-config file]",
	"init":     "init [-pkg ./model] [-out record-mapper.yaml] [-flavor generic] [-convention camel] [-force]",
	"check":    "check [-config record-mapper.yaml] [-pkg ./model]",
}

type app struct {
	env    config.Env
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(stderr)
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "record-mapper: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}

	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(stderr, "record-mapper: %v\n", err)
		return 1
	}

	logger, flush, err := logging.New(logging.Options{Level: env.LogLevel, File: env.LogFile})
	if err != nil {
		fmt.Fprintf(stderr, "record-mapper: %v\n", err)
		return 1
	}
	defer flush()

	color.NoColor = !isTerminal(stderr)

	a := &app{env: env, logger: logger.Named(args[0]), stdout: stdout, stderr: stderr}
	if err := cmd(a, args[1:]); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errInvalid):
		default:
			fmt.Fprintf(stderr, "record-mapper %s: %v\n", args[0], err)
		}
		return 1
	}

	return 0
}

func usage(w io.Writer) {
	names := make([]string, 0, len(usages))
	for name := range usages {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Usage: record-mapper <command> [flags]")
	for _, name := range names {
		fmt.Fprintf(w, "  record-mapper %s\n", usages[name])
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newFlagSet(a *app, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: record-mapper %s\n", usages[name])
		fs.PrintDefaults()
	}
	return fs
}
