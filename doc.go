// Package main implements the sdkversion CLI tool.
//
// The sdkversion tool cuts a release of the CultureCoded Python SDK. It reads the
// current version from the first `version = "X.Y.Z"` assignment in pyproject.toml,
// computes the next version from a directive, writes it back to pyproject.toml and
// to the `__version__` marker in culturecoded/__init__.py, and inserts a
// `## [X.Y.Z] - YYYY-MM-DD` heading below `## [Unreleased]` in CHANGELOG.md.
// It then prints the remaining release steps (commit, tag, push).
//
// Command Usage:
//
//	sdkversion [flags] <patch|minor|major|x.y.z>
//
// Flags:
//
//	-root:    Project root. Defaults to the nearest directory, starting from the
//	          working directory and walking up, that contains pyproject.toml.
//	-config:  TOML file overriding file locations, the tag suffix, and the commit
//	          message. Defaults to <root>/.sdkversion.toml when that file exists.
//	-dry:     Compute the new version and list the files that would change.
//	-commit:  Stage the updated files, commit them, and create the tag locally.
//	-version: Displays the version of the sdkversion CLI tool and exits.
//
// Examples:
//
//	# Bump the patch version (e.g. 1.0.0 → 1.0.1)
//	sdkversion patch
//
//	# Bump the minor version (e.g. 1.0.0 → 1.1.0)
//	sdkversion minor
//
//	# Set an explicit version; lower versions are accepted too
//	sdkversion 2.1.0
//
//	# Commit and tag v1.1.0-python after bumping
//	sdkversion -commit minor
//
// A config file looks like:
//
//	manifest = "pyproject.toml"
//	module_file = "culturecoded/__init__.py"
//	changelog = "CHANGELOG.md"
//	tag_suffix = "-python"
//	commit_message = "chore: bump version to %s"
package main
