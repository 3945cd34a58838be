// Package main implements a CLI tool to bump the Python SDK version in
// pyproject.toml, culturecoded/__init__.py and CHANGELOG.md.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	sdkversion "github.com/DTB-Carbyne/CultureCoded-SDK/pkg"
)

func usage() {
	msg := `Usage: sdkversion [options] <patch|minor|major|x.y.z>

Bumps the version in pyproject.toml and culturecoded/__init__.py and adds a dated
release heading below "## [Unreleased]" in CHANGELOG.md.

Examples:
  sdkversion patch     # 1.0.0 -> 1.0.1
  sdkversion minor     # 1.0.0 -> 1.1.0
  sdkversion major     # 1.0.0 -> 2.0.0
  sdkversion 1.2.3     # set a specific version
  sdkversion -commit minor

Options:
`
	fmt.Fprint(flag.CommandLine.Output(), msg)
	flag.PrintDefaults()
}

func main() {
	root := flag.String("root", "", "Project root containing pyproject.toml (default: nearest parent of the working directory)")
	configPath := flag.String("config", "", "Path to a TOML config file (default: <root>/.sdkversion.toml if present)")
	dryRun := flag.Bool("dry", false, "Report what would change without modifying any files")
	commit := flag.Bool("commit", false, "Stage, commit and tag the updated files (does not push)")
	showVersion := flag.Bool("version", false, "Show CLI version and exit")
	help := flag.Bool("help", false, "Show help message and exit")

	flag.CommandLine.SetOutput(os.Stdout)
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("sdkversion CLI version", Version)
		os.Exit(0)
	}

	// Guard against misplaced flags after positional args.
	for _, arg := range flag.Args() {
		if strings.HasPrefix(arg, "-") {
			fmt.Fprintln(os.Stderr, "Error: Flags must be specified before the command. Please reorder your arguments.")
			usage()
			os.Exit(1)
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: <version-bump> positional argument is required")
		usage()
		os.Exit(1)
	}

	opts := sdkversion.Options{
		Directive:  args[0],
		Root:       *root,
		ConfigPath: *configPath,
		Commit:     *commit,
		Out:        os.Stdout,
		Warn:       os.Stderr,
	}

	if *dryRun {
		meta, err := sdkversion.DryRun(opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println("Dry run complete, no files were modified.")
		fmt.Printf("Old Version: %s\n", meta.OldVersion)
		fmt.Printf("New Version: %s\n", meta.NewVersion)
		fmt.Printf("Bump Type:   %s\n", meta.BumpType)
		if len(meta.UpdatedFiles) > 0 {
			fmt.Println("Files that would be updated:")
			for _, f := range meta.UpdatedFiles {
				fmt.Printf("  %s\n", f)
			}
		}
		if len(meta.SkippedFiles) > 0 {
			fmt.Println("Files without a version marker:")
			for _, f := range meta.SkippedFiles {
				fmt.Printf("  %s\n", f)
			}
		}
		return
	}

	if _, err := sdkversion.Run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
