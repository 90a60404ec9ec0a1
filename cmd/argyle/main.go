// Command argyle classifies command-line tokens against a declared
// keyword set and prints one line per event. It exists for debugging
// keyword files and inspecting how a given command line will be seen by
// a consumer of the library.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Blobfolio/argyle"
	"github.com/Blobfolio/argyle/argsrc"
	"github.com/Blobfolio/argyle/kwfile"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("argyle", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprint(stderr, `
argyle - classify command-line tokens against a keyword set.

Usage:
  argyle -keywords FILE [options] [--] [TOKEN ...]

Options:
`)
		flagSet.PrintDefaults()
	}

	keywordsFlag := flagSet.String("keywords", "", "Path to a YAML or TOML keyword declaration file.")
	argsFileFlag := flagSet.String("args-file", "", "Read tokens line by line from this file instead of the command line. '-' means stdin.")
	pathsFlag := flagSet.Bool("paths", false, "Probe unmatched tokens for filesystem existence.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(stderr, *logLevelFlag, *logFormatFlag)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if *keywordsFlag == "" {
		flagSet.Usage()
		return errors.New("a -keywords file is required")
	}
	reg, err := kwfile.Load(*keywordsFlag)
	if err != nil {
		return err
	}
	slog.Debug("Keywords loaded.", "file", *keywordsFlag, "count", reg.Len())

	var src argsrc.Source
	if *argsFileFlag != "" {
		fileSrc, err := argsrc.Open(*argsFileFlag)
		if err != nil {
			return err
		}
		defer fileSrc.Close()
		src = fileSrc
		slog.Debug("Reading tokens from file.", "path", *argsFileFlag)
	} else {
		src = argsrc.Slice(flagSet.Args())
	}

	c := argyle.New(src, reg)
	if *pathsFlag {
		c = c.WithPathDetection()
	}

	for c.Next() {
		fmt.Fprintln(stdout, describe(c.Argument()))
	}
	return c.Err()
}

func describe(a argyle.Argument) string {
	switch a.Kind {
	case argyle.ArgKindCommand:
		return "command  " + a.Key
	case argyle.ArgKindKey:
		return "switch   " + a.Key
	case argyle.ArgKindKeyWithValue:
		return fmt.Sprintf("option   %s = %q", a.Key, a.Value)
	case argyle.ArgKindPath:
		return "path     " + a.Raw
	case argyle.ArgKindInvalidUTF8:
		return fmt.Sprintf("invalid  %q", a.Raw)
	default:
		return "other    " + a.Raw
	}
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", format)
	}
}
