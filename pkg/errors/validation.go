package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// githubLoginRegex matches GitHub user and organization logins: alphanumeric
// with single inner hyphens, at most 39 characters.
var githubLoginRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9]){0,38}$`)

// ValidateOwner validates the account whose repositories are listed.
func ValidateOwner(owner string) error {
	if owner == "" {
		return New(ErrCodeInvalidOwner, "owner cannot be empty")
	}
	if !githubLoginRegex.MatchString(owner) {
		return New(ErrCodeInvalidOwner, "invalid GitHub login: %q", owner)
	}
	return nil
}

// ValidateProjectName validates a project name used as a config key or URL
// path segment. Repository names are restricted by GitHub; local project
// names are free-form but must not be usable for path traversal.
func ValidateProjectName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "project name cannot be empty")
	}

	if len(name) > 100 {
		return New(ErrCodeInvalidName, "project name too long (max 100 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "project name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "project name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateURL validates that a URL uses http or https.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	return nil
}
