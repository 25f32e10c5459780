package github

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// decodeContent turns a contents-API payload back into the original text.
// Whitespace inside a base64 payload is insignificant (GitHub wraps at 60
// columns). The decoded bytes must be valid UTF-8.
func decodeContent(encoding string, content *string) (string, error) {
	if content == nil {
		return "", errors.New("malformed response: null content")
	}

	switch encoding {
	case "base64":
		compact := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, *content)

		raw, err := base64.StdEncoding.DecodeString(compact)
		if err != nil {
			return "", fmt.Errorf("base64: %w", err)
		}
		if !utf8.Valid(raw) {
			return "", errors.New("decoded content is not valid UTF-8")
		}
		return string(raw), nil
	case "":
		return *content, nil
	default:
		return "", fmt.Errorf("unsupported content encoding %q", encoding)
	}
}
