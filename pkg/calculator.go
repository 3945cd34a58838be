package sdkversion

import (
	"fmt"
	"math/big"
	"regexp"

	"golang.org/x/mod/semver"
)

// explicitVersionRe matches a directive that sets the version outright.
var explicitVersionRe = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Bump keywords accepted by BumpVersion.
const (
	BumpMajor = "major"
	BumpMinor = "minor"
	BumpPatch = "patch"
	// BumpExplicit is reported in VersionMeta when the directive was an X.Y.Z string.
	BumpExplicit = "explicit"
)

// parseSemVer splits a plain "X.Y.Z" string into its numeric components.
// Components are arbitrary precision so no bump can overflow.
func parseSemVer(version string) (major, minor, patch *big.Int, err error) {
	m := semVerPartsRe.FindStringSubmatch(version)
	if m == nil {
		err = fmt.Errorf("unexpected version format: %s", version)
		return
	}
	major, _ = new(big.Int).SetString(m[1], 10)
	minor, _ = new(big.Int).SetString(m[2], 10)
	patch, _ = new(big.Int).SetString(m[3], 10)
	return
}

var semVerPartsRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// formatSemVer joins the components back into "X.Y.Z".
func formatSemVer(major, minor, patch *big.Int) string {
	return major.String() + "." + minor.String() + "." + patch.String()
}

// BumpVersion computes the version that follows current for the given directive.
//
// The directive is one of "major", "minor", "patch", or an explicit "X.Y.Z"
// which is returned unchanged regardless of current (downgrades included).
// Anything else yields an *InvalidDirectiveError.
func BumpVersion(current, directive string) (string, error) {
	switch directive {
	case BumpMajor, BumpMinor, BumpPatch:
	default:
		if explicitVersionRe.MatchString(directive) {
			return directive, nil
		}
		return "", &InvalidDirectiveError{Directive: directive}
	}

	major, minor, patch, err := parseSemVer(current)
	if err != nil {
		return "", err
	}

	one := big.NewInt(1)
	switch directive {
	case BumpMajor:
		major.Add(major, one)
		minor.SetInt64(0)
		patch.SetInt64(0)
	case BumpMinor:
		minor.Add(minor, one)
		patch.SetInt64(0)
	case BumpPatch:
		patch.Add(patch, one)
	}
	return formatSemVer(major, minor, patch), nil
}

// bumpType names how a directive produced the new version.
func bumpType(directive string) string {
	switch directive {
	case BumpMajor, BumpMinor, BumpPatch:
		return directive
	}
	return BumpExplicit
}

// isDowngrade reports whether next sorts below current. Versions that are
// not valid semver (leading zeros, for instance) are never a downgrade.
func isDowngrade(current, next string) bool {
	cur, nxt := "v"+current, "v"+next
	if !semver.IsValid(cur) || !semver.IsValid(nxt) {
		return false
	}
	return semver.Compare(nxt, cur) < 0
}
