package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/showcase/pkg/cache"
)

// FetchReadme returns the decoded README of owner/repo.
// A missing README yields an error wrapping [integrations.ErrNotFound].
// If refresh is true, cached data is bypassed.
func (c *Client) FetchReadme(ctx context.Context, owner, repo string, refresh bool) (string, error) {
	var text string
	err := c.CachedFor(ctx, c.keyer.ReadmeKey(owner, repo), cache.TTLReadme, refresh, &text, func() error {
		u := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))

		var resp contentResponse
		if err := c.Get(ctx, u, &resp); err != nil {
			return fmt.Errorf("readme %s/%s: %w", owner, repo, err)
		}

		decoded, err := DecodeContent(resp.Content, resp.Encoding)
		if err != nil {
			return fmt.Errorf("readme %s/%s: %w", owner, repo, err)
		}
		text = decoded
		return nil
	})
	return text, err
}

// DecodeContent decodes a contents-API payload into text. Base64 payloads
// are line-wrapped by GitHub; the newlines are stripped before decoding.
// Invalid UTF-8 sequences are replaced with U+FFFD so multi-byte text is
// never split mid-character.
func DecodeContent(content, encoding string) (string, error) {
	var raw []byte
	switch encoding {
	case "base64":
		b, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content, "\n", ""))
		if err != nil {
			return "", fmt.Errorf("decode base64: %w", err)
		}
		raw = b
	case "", "utf-8":
		raw = []byte(content)
	default:
		return "", fmt.Errorf("unsupported encoding %q", encoding)
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}
	return strings.ToValidUTF8(string(raw), "\uFFFD"), nil
}
