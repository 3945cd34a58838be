// Package sdkversion bumps the release version of the Python SDK.
//
// It provides functionalities for:
//   - Reading the current version from the first `version = "X.Y.Z"` assignment in pyproject.toml.
//   - Computing the next version from a directive: major, minor, patch, or an explicit X.Y.Z.
//   - Rewriting the version in pyproject.toml and the `__version__` marker in culturecoded/__init__.py.
//   - Inserting a dated `## [X.Y.Z] - YYYY-MM-DD` heading below `## [Unreleased]` in CHANGELOG.md.
//   - Optionally staging, committing, and tagging the result with git (never pushing).
//
// File locations, the tag suffix, and the commit message can be overridden with an
// optional .sdkversion.toml in the project root.
//
// Usage Example:
//
//	import (
//	    "log"
//	    "os"
//
//	    sdkversion "github.com/DTB-Carbyne/CultureCoded-SDK/pkg"
//	)
//
//	func main() {
//	    meta, err := sdkversion.Run(sdkversion.Options{Directive: "patch", Out: os.Stdout, Warn: os.Stderr})
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Println("bumped to", meta.NewVersion)
//	}
package sdkversion
