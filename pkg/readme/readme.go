// Package readme derives a short description and a preview image from a
// project's README.
//
// The heuristics are deliberately simple: the description is the first
// prose found after skipping headings, badges, images, code fences, tables,
// quotes and image or badge HTML; the image is the first markdown image, or failing
// that the first bare image URL.
package readme

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinLineLength is the rune count a line must exceed to count as prose.
	MinLineLength = 20

	// MaxDescription is the rune length descriptions are cut to.
	MaxDescription = 150

	// Ellipsis is appended to every extracted description.
	Ellipsis = "..."
)

// skipPrefixes mark lines that are markup rather than prose. HTML is only
// skipped for image and badge tags; other tags may wrap real prose.
var skipPrefixes = []string{"#", "!", "[!", "```", "---", "|", ">", "<img", "<a ", "<picture"}

// Description scans text line by line and returns the first MaxDescription
// runes of prose followed by [Ellipsis]. It reports false when the README
// holds no qualifying prose, in which case the caller keeps its existing
// description.
func Description(text string) (string, bool) {
	var b strings.Builder
	n := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !isProse(line) {
			continue
		}
		b.WriteString(line)
		b.WriteByte(' ')
		n += utf8.RuneCountInString(line) + 1
		if n > MaxDescription {
			break
		}
	}

	if n <= MinLineLength {
		return "", false
	}
	return strings.TrimSpace(truncate(b.String(), MaxDescription)) + Ellipsis, true
}

func isProse(line string) bool {
	if line == "" {
		return false
	}
	for _, p := range skipPrefixes {
		if strings.HasPrefix(line, p) {
			return false
		}
	}
	return utf8.RuneCountInString(line) > MinLineLength
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

var (
	markdownImage = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)
	bareImage     = regexp.MustCompile(`(?i)(https?://.*\.(?:png|jpg|jpeg|gif|webp|svg))`)
)

// Image returns the first image referenced by text, or "" if there is
// none. A markdown image wins over a bare URL; an empty one such as `![]()`
// is ignored and the bare URL scan runs instead. Relative markdown image
// paths are passed to resolve, which turns them into absolute URLs.
func Image(text string, resolve func(path string) string) string {
	if m := markdownImage.FindStringSubmatch(text); m != nil {
		if ref := cleanRef(m[1]); ref != "" {
			if strings.HasPrefix(ref, "http") || resolve == nil {
				return ref
			}
			return resolve(ref)
		}
	}
	if m := bareImage.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// cleanRef strips quotes and an optional markdown title from an image
// reference: `img.png "Screenshot"` becomes `img.png`.
func cleanRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if fields := strings.Fields(ref); len(fields) > 1 {
		ref = fields[0]
	}
	return strings.NewReplacer(`"`, "", `'`, "").Replace(ref)
}

// DefaultImage returns the generated social preview for a repository.
func DefaultImage(fullName string) string {
	return "https://opengraph.githubassets.com/1/" + fullName
}

// LocalImage returns the preview image of a local project's media folder.
func LocalImage(mediaPath string) string {
	return mediaPath + "/2.jpg"
}
