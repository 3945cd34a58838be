package sdkversion

import (
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// Options configures a single bump.
type Options struct {
	Directive  string // major, minor, patch, or an explicit X.Y.Z
	Root       string // project root; located from the working directory when empty
	ConfigPath string // TOML config; <Root>/.sdkversion.toml is tried when empty
	Commit     bool   // stage, commit and tag the rewritten files

	Now  func() time.Time // date for the changelog heading; time.Now when nil
	Out  io.Writer        // progress output; discarded when nil
	Warn io.Writer        // warnings; discarded when nil
}

// VersionMeta holds metadata about the version bump operation.
type VersionMeta struct {
	OldVersion   string   // The version found in the manifest.
	NewVersion   string   // The version written (or that would be written).
	BumpType     string   // major, minor, patch or explicit.
	Downgrade    bool     // NewVersion sorts below OldVersion.
	Root         string   // Absolute project root.
	UpdatedFiles []string // Files rewritten, relative to Root.
	SkippedFiles []string // Files left alone because their marker was missing.
	Tag          string   // Tag created when committing, or suggested otherwise.
	Committed    bool
}

type target struct {
	path     string
	rewriter Rewriter
	verb     string
}

type session struct {
	opts Options
	cfg  Config
	root string
	out  io.Writer
	warn io.Writer
}

func newSession(opts Options) (*session, error) {
	s := &session{opts: opts, out: opts.Out, warn: opts.Warn}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.warn == nil {
		s.warn = io.Discard
	}
	if s.opts.Now == nil {
		s.opts.Now = time.Now
	}

	cfg := DefaultConfig()
	if opts.ConfigPath != "" {
		c, err := LoadConfig(opts.ConfigPath, false)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	root := opts.Root
	if root == "" {
		r, err := locateProjectRoot(".", cfg.Manifest)
		if err != nil {
			return nil, err
		}
		root = r
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %q: %w", root, err)
	}
	s.root = abs

	if opts.ConfigPath == "" {
		c, err := LoadConfig(filepath.Join(s.root, DefaultConfigFile), true)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	s.cfg = cfg
	return s, nil
}

func (s *session) abs(rel string) string {
	return filepath.Join(s.root, rel)
}

func (s *session) targets() []target {
	return []target{
		{s.cfg.Manifest, ManifestRewriter(filepath.Base(s.cfg.Manifest)), "to"},
		{s.cfg.ModuleFile, ModuleRewriter(filepath.Base(s.cfg.ModuleFile)), "to"},
		{s.cfg.Changelog, ChangelogRewriter(filepath.Base(s.cfg.Changelog), s.opts.Now()), "for"},
	}
}

// plan reads the current version and computes the next one.
func (s *session) plan() (VersionMeta, error) {
	meta := VersionMeta{Root: s.root}

	current, err := ReadCurrentVersion(s.abs(s.cfg.Manifest))
	if err != nil {
		return meta, err
	}
	meta.OldVersion = current

	next, err := BumpVersion(current, s.opts.Directive)
	if err != nil {
		return meta, err
	}
	meta.NewVersion = next
	meta.BumpType = bumpType(s.opts.Directive)
	meta.Downgrade = isDowngrade(current, next)
	meta.Tag = s.cfg.TagName(next)
	return meta, nil
}

// Run bumps the version in the manifest, the module version marker and the
// changelog, in that order. A target whose marker is missing is left
// unchanged and reported as a warning. Files already written are not
// restored when a later step fails.
func Run(opts Options) (VersionMeta, error) {
	s, err := newSession(opts)
	if err != nil {
		return VersionMeta{}, err
	}

	if opts.Commit {
		if err := checkGit(); err != nil {
			return VersionMeta{}, err
		}
	}

	meta, err := s.plan()
	if err != nil {
		return meta, err
	}

	fmt.Fprintf(s.out, "Bumping version: %s -> %s\n", meta.OldVersion, meta.NewVersion)

	for _, t := range s.targets() {
		ok, err := t.rewriter.RewriteFile(s.abs(t.path), meta.NewVersion)
		if err != nil {
			return meta, err
		}
		if !ok {
			fmt.Fprintf(s.warn, "Warning: no version marker found in %s; left unchanged\n", t.path)
			meta.SkippedFiles = append(meta.SkippedFiles, t.path)
			continue
		}
		meta.UpdatedFiles = append(meta.UpdatedFiles, t.path)
		fmt.Fprintf(s.out, "Updated %s %s version %s\n", t.rewriter.Name, t.verb, meta.NewVersion)
	}

	if opts.Commit && len(meta.UpdatedFiles) > 0 {
		if err := gitCommit(s.root, s.cfg.CommitMessageFor(meta.NewVersion), meta.Tag, meta.UpdatedFiles); err != nil {
			return meta, err
		}
		meta.Committed = true
		fmt.Fprintf(s.out, "Committed and tagged %s\n", meta.Tag)
	}

	fmt.Fprintf(s.out, "\nVersion bumped to %s\n", meta.NewVersion)
	fmt.Fprintln(s.out, "\nNext steps:")
	for i, step := range NextSteps(s.cfg, meta.NewVersion, meta.Committed) {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, step)
	}
	return meta, nil
}

// DryRun computes the bump and reports which files would change without
// writing anything.
func DryRun(opts Options) (VersionMeta, error) {
	s, err := newSession(opts)
	if err != nil {
		return VersionMeta{}, err
	}
	meta, err := s.plan()
	if err != nil {
		return meta, err
	}
	for _, t := range s.targets() {
		ok, err := t.rewriter.Matches(s.abs(t.path))
		if err != nil {
			return meta, err
		}
		if ok {
			meta.UpdatedFiles = append(meta.UpdatedFiles, t.path)
		} else {
			meta.SkippedFiles = append(meta.SkippedFiles, t.path)
		}
	}
	return meta, nil
}

// NextSteps lists what is left to do by hand after a bump.
func NextSteps(cfg Config, newVersion string, committed bool) []string {
	push := "Push: git push && git push --tags"
	if committed {
		return []string{push}
	}
	return []string{
		fmt.Sprintf("Add changes to %s under [Unreleased]", filepath.Base(cfg.Changelog)),
		fmt.Sprintf(`Commit: git commit -am "%s"`, cfg.CommitMessageFor(newVersion)),
		fmt.Sprintf("Tag: git tag %s", cfg.TagName(newVersion)),
		push,
	}
}
