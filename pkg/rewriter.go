package sdkversion

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"time"
)

// UnreleasedMarker is the changelog heading that pending entries accumulate under.
const UnreleasedMarker = "## [Unreleased]"

var (
	manifestVersionRe = regexp.MustCompile(`version\s*=\s*"([^"]+)"`)
	moduleVersionRe   = regexp.MustCompile(`__version__\s*=\s*"[^"]+"`)
	unreleasedRe      = regexp.MustCompile(regexp.QuoteMeta(UnreleasedMarker))
)

// Rewriter substitutes the first match of Pattern in a file with the text
// produced by Replace. A file without a match is left as it is.
type Rewriter struct {
	Name    string // label used in progress output
	Pattern *regexp.Regexp
	Replace func(newVersion string) string
}

// ManifestRewriter rewrites the first `version = "..."` assignment.
func ManifestRewriter(name string) Rewriter {
	return Rewriter{
		Name:    name,
		Pattern: manifestVersionRe,
		Replace: func(v string) string { return fmt.Sprintf(`version = "%s"`, v) },
	}
}

// ModuleRewriter rewrites the first `__version__ = "..."` assignment.
func ModuleRewriter(name string) Rewriter {
	return Rewriter{
		Name:    name,
		Pattern: moduleVersionRe,
		Replace: func(v string) string { return fmt.Sprintf(`__version__ = "%s"`, v) },
	}
}

// ChangelogRewriter inserts a dated release heading directly below the
// unreleased marker. The marker itself stays in place.
func ChangelogRewriter(name string, date time.Time) Rewriter {
	return Rewriter{
		Name:    name,
		Pattern: unreleasedRe,
		Replace: func(v string) string {
			return fmt.Sprintf("%s\n\n## [%s] - %s", UnreleasedMarker, v, date.Format(time.DateOnly))
		},
	}
}

// Apply returns content with the first match replaced, and whether a match was found.
// The replacement is inserted literally; `$` has no special meaning.
func (r Rewriter) Apply(content []byte, newVersion string) ([]byte, bool) {
	loc := r.Pattern.FindIndex(content)
	if loc == nil {
		return content, false
	}
	var buf bytes.Buffer
	buf.Grow(len(content) + 64)
	buf.Write(content[:loc[0]])
	buf.WriteString(r.Replace(newVersion))
	buf.Write(content[loc[1]:])
	return buf.Bytes(), true
}

// Matches reports whether the file at path contains the rewriter's pattern.
func (r Rewriter) Matches(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading file %s: %w", path, err)
	}
	return r.Pattern.Match(data), nil
}

// RewriteFile applies the rewriter to the file at path in place.
// It returns false, and leaves the file untouched, when the pattern is absent.
func (r Rewriter) RewriteFile(path, newVersion string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("reading file %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading file %s: %w", path, err)
	}

	updated, ok := r.Apply(data, newVersion)
	if !ok {
		return false, nil
	}
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing file %s: %w", path, err)
	}
	return true, nil
}

// ParseManifestVersion returns the value of the first `version = "..."`
// assignment anywhere in content.
func ParseManifestVersion(content []byte) (string, error) {
	m := manifestVersionRe.FindSubmatch(content)
	if m == nil {
		return "", &NotFoundError{}
	}
	return string(m[1]), nil
}

// ReadCurrentVersion reads the manifest at path and extracts its version.
func ReadCurrentVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read manifest: %w", err)
	}
	v, err := ParseManifestVersion(data)
	if err != nil {
		return "", &NotFoundError{Path: path}
	}
	return v, nil
}
