package sdkversion

import (
	"errors"
	"fmt"
)

var (
	// ErrVersionNotFound is matched by errors.Is for any *NotFoundError.
	ErrVersionNotFound = errors.New("version not found")
	// ErrInvalidDirective is matched by errors.Is for any *InvalidDirectiveError.
	ErrInvalidDirective = errors.New("invalid version directive")
)

// NotFoundError reports that no version assignment exists in a manifest.
type NotFoundError struct {
	Path string // empty when parsing in-memory content
}

func (e *NotFoundError) Error() string {
	if e.Path == "" {
		return "could not find version in manifest"
	}
	return fmt.Sprintf("could not find version in %s", e.Path)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrVersionNotFound }

// InvalidDirectiveError reports a bump argument that is neither a keyword
// nor an explicit X.Y.Z version.
type InvalidDirectiveError struct {
	Directive string
}

func (e *InvalidDirectiveError) Error() string {
	return fmt.Sprintf("invalid version type: %s", e.Directive)
}

func (e *InvalidDirectiveError) Is(target error) bool { return target == ErrInvalidDirective }
