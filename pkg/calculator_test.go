package sdkversion

import (
	"errors"
	"testing"
)

// TestBumpVersion tests BumpVersion for keywords and explicit versions.
func TestBumpVersion(t *testing.T) {
	tests := []struct {
		current   string
		directive string
		expected  string
	}{
		{"1.0.0", "patch", "1.0.1"},
		{"1.2.3", "minor", "1.3.0"},
		{"0.9.9", "major", "1.0.0"},
		{"1.2.3", "patch", "1.2.4"},
		{"1.2.3", "major", "2.0.0"},
		{"1.0.0", "5.0.0", "5.0.0"},
		{"2.0.0", "1.0.0", "1.0.0"}, // downgrades are accepted
		{"1.0.0", "1.0.0", "1.0.0"},
		{"1.0.0", "01.2.3", "01.2.3"}, // explicit versions are used verbatim
		{"0.0.9", "patch", "0.0.10"},
		{"1.2.18446744073709551615", "patch", "1.2.18446744073709551616"},
		{"99999999999999999999.1.1", "major", "100000000000000000000.0.0"},
		{"not-a-version", "3.0.0", "3.0.0"},
	}
	for _, tc := range tests {
		res, err := BumpVersion(tc.current, tc.directive)
		if err != nil {
			t.Errorf("BumpVersion(%q, %q) returned error: %v", tc.current, tc.directive, err)
			continue
		}
		if res != tc.expected {
			t.Errorf("BumpVersion(%q, %q) = %q, expected %q", tc.current, tc.directive, res, tc.expected)
		}
	}
}

func TestBumpVersionInvalidDirective(t *testing.T) {
	for _, directive := range []string{"", "Patch", "prerelease", "1.2", "1.2.3.4", "v1.2.3", "1.2.3-rc1", " 1.2.3"} {
		_, err := BumpVersion("1.2.3", directive)
		if !errors.Is(err, ErrInvalidDirective) {
			t.Errorf("BumpVersion(%q) error = %v, expected ErrInvalidDirective", directive, err)
			continue
		}
		var ide *InvalidDirectiveError
		if !errors.As(err, &ide) || ide.Directive != directive {
			t.Errorf("BumpVersion(%q) error = %#v, expected *InvalidDirectiveError carrying the directive", directive, err)
		}
	}
}

func TestBumpVersionMalformedCurrent(t *testing.T) {
	for _, current := range []string{"1.2", "1.2.3-rc1", "dev", "1.x.3"} {
		_, err := BumpVersion(current, "patch")
		if err == nil {
			t.Errorf("BumpVersion(%q, patch) did not return error", current)
			continue
		}
		if errors.Is(err, ErrInvalidDirective) {
			t.Errorf("BumpVersion(%q, patch) reported an invalid directive: %v", current, err)
		}
	}
}

// TestParseAndFormatSemVer tests the parseSemVer and formatSemVer functions.
func TestParseAndFormatSemVer(t *testing.T) {
	tests := []struct {
		input, expected string
	}{
		{"1.2.3", "1.2.3"},
		{"0.0.0", "0.0.0"},
		{"01.002.3", "1.2.3"},
	}
	for _, tc := range tests {
		major, minor, patch, err := parseSemVer(tc.input)
		if err != nil {
			t.Errorf("parseSemVer(%q) returned error: %v", tc.input, err)
			continue
		}
		if got := formatSemVer(major, minor, patch); got != tc.expected {
			t.Errorf("formatSemVer(parseSemVer(%q)) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestIsDowngrade(t *testing.T) {
	tests := []struct {
		current, next string
		expected      bool
	}{
		{"2.0.0", "1.0.0", true},
		{"1.2.3", "1.2.2", true},
		{"1.0.0", "5.0.0", false},
		{"1.0.0", "1.0.0", false},
		{"1.0.0", "01.0.0", false},
	}
	for _, tc := range tests {
		if got := isDowngrade(tc.current, tc.next); got != tc.expected {
			t.Errorf("isDowngrade(%q, %q) = %v, expected %v", tc.current, tc.next, got, tc.expected)
		}
	}
}

func TestBumpType(t *testing.T) {
	for directive, expected := range map[string]string{
		"major": "major",
		"minor": "minor",
		"patch": "patch",
		"3.1.4": "explicit",
	} {
		if got := bumpType(directive); got != expected {
			t.Errorf("bumpType(%q) = %q, expected %q", directive, got, expected)
		}
	}
}
