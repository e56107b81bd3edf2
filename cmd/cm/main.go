package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/suykerbuyk/chatmark/internal/config"
	"github.com/suykerbuyk/chatmark/internal/document"
	"github.com/suykerbuyk/chatmark/internal/source"
	"github.com/suykerbuyk/chatmark/internal/stats"
	"github.com/suykerbuyk/chatmark/internal/watch"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	switch os.Args[1] {
	case "process":
		args := os.Args[2:]
		path := positional(args)
		if path == "" {
			fatal("usage: cm process [--force] [-o <out>] <transcript|->")
		}
		out := flagValue(args, "-o")
		if out == "" {
			out = defaultOutput(path)
		}
		if err := process(path, out, cfg, hasFlag(args, "--force")); err != nil {
			fatal("process: %v", err)
		}

	case "watch":
		dir := positional(os.Args[2:])
		if dir == "" {
			fatal("usage: cm watch <dir>")
		}
		opts := watch.Options{
			Debounce:   time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
			Extensions: cfg.Watch.Extensions,
		}
		err := watch.Watch(dir, opts, func(path string) error {
			return process(path, defaultOutput(path), cfg, false)
		})
		if err != nil {
			fatal("watch: %v", err)
		}

	case "stats":
		path := positional(os.Args[2:])
		if path == "" {
			fatal("usage: cm stats <transcript|->")
		}
		text, err := source.Read(path)
		if err != nil {
			fatal("%v", err)
		}
		summary, err := document.Analyze(text, document.Options{
			User:  cfg.User,
			Agent: cfg.Agent,
		})
		if err != nil {
			fatal("stats: %v", err)
		}
		fmt.Print(stats.Format(summary, displayName(path)))

	case "version":
		fmt.Printf("cm v%s (chatmark)\n", version)

	case "help", "--help", "-h":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

// process runs one transcript through the pipeline and writes the
// result. A document that is already processed is left untouched.
func process(path, out string, cfg config.Config, force bool) error {
	text, err := source.Read(path)
	if err != nil {
		return err
	}

	result, err := document.Process(text, document.Options{
		User:   cfg.User,
		Agent:  cfg.Agent,
		Force:  force,
		Source: displayName(path),
	})
	if err != nil {
		return err
	}

	if result.Skipped {
		fmt.Fprintf(os.Stderr, "skipped: %s (already processed)\n", displayName(path))
		return nil
	}

	if err := source.Write(out, result.Output); err != nil {
		return err
	}
	if out != "-" {
		fmt.Fprintf(os.Stderr, "processed: %s (%d turns)\n", out, result.Turns)
	}
	return nil
}

// defaultOutput rewrites in place, except stdin goes to stdout and
// compressed inputs shed their .zst suffix.
func defaultOutput(path string) string {
	if path == "-" {
		return "-"
	}
	return strings.TrimSuffix(path, ".zst")
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}

func usage() {
	fmt.Fprintf(os.Stderr, `cm v%s — chatmark transcript formatter

Usage:
  cm process [--force] [-o <out>] <file|->   Re-render a raw transcript
  cm watch <dir>                             Process exports as they appear
  cm stats <file|->                          Show document structure counts
  cm version                                 Print version
  cm help                                    Show this help

Processing is idempotent: a document carrying the processed marker is
returned unchanged unless --force is given.

Configuration: ~/.config/chatmark/config.toml
`, version)
}

// positional returns the first argument that is not a flag or a flag
// value.
func positional(args []string) string {
	skip := false
	for _, a := range args {
		if skip {
			skip = false
			continue
		}
		if a == "-" {
			return a
		}
		if strings.HasPrefix(a, "-") {
			skip = a == "-o"
			continue
		}
		return a
	}
	return ""
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "cm: "+format+"\n", args...)
	os.Exit(1)
}
