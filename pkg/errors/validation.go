package errors

import (
	"strings"
	"unicode"
)

// maxItemIDLength bounds item identifiers so link ids stay printable.
const maxItemIDLength = 256

// LinkSeparator joins the start and end item ids of a derived link id.
const LinkSeparator = "->"

// ValidateItemID validates an item identifier.
//
// The rules keep derived link ids ("start->end") unambiguous:
//   - No empty ids
//   - No control characters
//   - No link separator ("->")
//   - Maximum length of 256 characters
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "item id cannot be empty")
	}

	if len(id) > maxItemIDLength {
		return New(ErrCodeInvalidInput, "item id too long (max %d characters)", maxItemIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "item id contains invalid control characters")
		}
	}

	if strings.Contains(id, LinkSeparator) {
		return New(ErrCodeInvalidInput, "item id cannot contain %q", LinkSeparator)
	}

	return nil
}

// SplitLinkID splits a link id into its start and end item ids.
func SplitLinkID(linkID string) (start, end string, err error) {
	start, end, ok := strings.Cut(linkID, LinkSeparator)
	if !ok || start == "" || end == "" {
		return "", "", New(ErrCodeInvalidInput, "malformed link id %q", linkID)
	}
	return start, end, nil
}
