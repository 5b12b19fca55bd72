// Package config turns the raw argument vector into validated search
// parameters. The resolver is a pure function: the process environment is
// observed by the caller and passed in as a value, so the package has no
// side effects and is fully testable.
package config

import (
	"errors"
	"strings"
)

// Parse-failure errors. All of them abort the invocation with exit code 1
// behind a "Problem parsing arguments:" prefix.
var (
	ErrNotEnoughArguments   = errors.New("not enough arguments")
	ErrConflictingCaseFlags = errors.New("cannot combine -s and -S")
	ErrMissingOutputPath    = errors.New("--output requires a path")
)

// Config contains the validated parameters for a single search run.
// Immutable once constructed.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool

	// Verbose enables debug logging to stderr.
	Verbose bool

	// OutputFile, when non-empty, is the path of a JSON report written in
	// addition to the normal stdout output.
	OutputFile string
}

// Resolve builds a Config from the full argument vector, program name at
// position 0. Query and filename are the two positional arguments; anything
// after them is treated as a flag.
//
// Case sensitivity: an explicit -s (sensitive) or -S (insensitive) flag
// always wins; supplying both is an error. With neither flag the search is
// case-insensitive exactly when the CASE_INSENSITIVE environment variable is
// set, which the caller reports through caseInsensitiveEnvSet. The
// variable's value is never inspected, only its presence.
//
// Unrecognized trailing arguments are ignored.
func Resolve(args []string, caseInsensitiveEnvSet bool) (Config, error) {
	if len(args) < 3 {
		return Config{}, ErrNotEnoughArguments
	}

	cfg := Config{
		Query:         args[1],
		Filename:      args[2],
		CaseSensitive: !caseInsensitiveEnvSet,
	}

	var forceSensitive, forceInsensitive bool
	rest := args[3:]
	for i := 0; i < len(rest); i++ {
		switch arg := rest[i]; {
		case arg == "-s":
			forceSensitive = true
		case arg == "-S":
			forceInsensitive = true
		case arg == "--verbose":
			cfg.Verbose = true
		case arg == "--output":
			if i == len(rest)-1 {
				return Config{}, ErrMissingOutputPath
			}
			i++
			cfg.OutputFile = rest[i]
		case strings.HasPrefix(arg, "--output="):
			cfg.OutputFile = strings.TrimPrefix(arg, "--output=")
		}
	}

	if forceSensitive && forceInsensitive {
		return Config{}, ErrConflictingCaseFlags
	}
	if forceSensitive {
		cfg.CaseSensitive = true
	}
	if forceInsensitive {
		cfg.CaseSensitive = false
	}

	return cfg, nil
}

// IsParseError reports whether err comes from argument resolution, as
// opposed to a failure while running the search.
func IsParseError(err error) bool {
	return errors.Is(err, ErrNotEnoughArguments) ||
		errors.Is(err, ErrConflictingCaseFlags) ||
		errors.Is(err, ErrMissingOutputPath)
}
