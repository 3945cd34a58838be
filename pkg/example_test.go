package sdkversion

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func ExampleBumpVersion() {
	for _, directive := range []string{"patch", "minor", "major", "0.1.0"} {
		next, err := BumpVersion("1.2.3", directive)
		if err != nil {
			fmt.Println("bump failed:", err)
			return
		}
		fmt.Printf("%s: %s\n", directive, next)
	}

	_, err := BumpVersion("1.2.3", "huge")
	fmt.Println(err)

	// Output:
	// patch: 1.2.4
	// minor: 1.3.0
	// major: 2.0.0
	// 0.1.0: 0.1.0
	// invalid version type: huge
}

// ExampleRun lays out a minimal SDK tree in a temporary directory and bumps
// its patch version. The changelog date is pinned with Options.Now.
func ExampleRun() {
	root, err := os.MkdirTemp("", "sdkversion_example")
	if err != nil {
		fmt.Println("failed to create temporary directory:", err)
		return
	}
	defer os.RemoveAll(root)

	files := []struct{ name, content string }{
		{"pyproject.toml", "[project]\nname = \"culturecoded\"\nversion = \"1.0.0\"\n"},
		{filepath.Join("culturecoded", "__init__.py"), "__version__ = \"1.0.0\"\n"},
		{"CHANGELOG.md", "# Changelog\n\n## [Unreleased]\n"},
	}
	for _, f := range files {
		path := filepath.Join(root, f.name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			fmt.Println("failed to create directory:", err)
			return
		}
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			fmt.Println("failed to write file:", err)
			return
		}
	}

	_, err = Run(Options{
		Directive: "patch",
		Root:      root,
		Now:       func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) },
		Out:       os.Stdout,
	})
	if err != nil {
		fmt.Println("version bump failed:", err)
		return
	}

	changelog, _ := os.ReadFile(filepath.Join(root, "CHANGELOG.md"))
	fmt.Print(string(changelog))

	// Output:
	// Bumping version: 1.0.0 -> 1.0.1
	// Updated pyproject.toml to version 1.0.1
	// Updated __init__.py to version 1.0.1
	// Updated CHANGELOG.md for version 1.0.1
	//
	// Version bumped to 1.0.1
	//
	// Next steps:
	//   1. Add changes to CHANGELOG.md under [Unreleased]
	//   2. Commit: git commit -am "chore: bump version to 1.0.1"
	//   3. Tag: git tag v1.0.1-python
	//   4. Push: git push && git push --tags
	// # Changelog
	//
	// ## [Unreleased]
	//
	// ## [1.0.1] - 2026-10-19
}
