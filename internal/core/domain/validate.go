package domain

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Campaign parameter bounds enforced before any network call is made.
const (
	MinDescriptionLength = 50
	MaxDescriptionLength = 5000
	MinTitleLength       = 5
	MaxTitleLength       = 200
	MinDurationDays      = 1
	MaxDurationDays      = 365
)

var imageDataPrefixes = []string{
	"data:image/png;base64,",
	"data:image/jpeg;base64,",
	"data:image/jpg;base64,",
	"data:image/gif;base64,",
	"data:image/webp;base64,",
}

// IsBase64Image reports whether s is a data URI carrying a base64-encoded
// payload with a supported image MIME marker.
func IsBase64Image(s string) bool {
	for _, prefix := range imageDataPrefixes {
		if strings.HasPrefix(s, prefix) {
			payload := s[len(prefix):]
			if payload == "" {
				return false
			}
			_, err := base64.StdEncoding.DecodeString(payload)
			return err == nil
		}
	}
	return false
}

// ValidateDocuments checks that the supplied evidence documents are
// well-formed encoded images. The check is purely local so malformed
// uploads never reach the AI backend.
func ValidateDocuments(documents []string) error {
	if len(documents) == 0 {
		return NewClientError("no medical documents provided")
	}
	for i, doc := range documents {
		if !IsBase64Image(doc) {
			return NewClientError("invalid image format detected in document %d", i+1)
		}
	}
	return nil
}

// ValidateCampaignParams runs the pre-flight checks on campaign creation
// input. It fails fast with a ClientError so no AI or registry budget is
// spent on requests that can never succeed.
func ValidateCampaignParams(title, description, goalAmount string, durationDays int) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return NewClientError("campaign title is required")
	}
	if utf8.RuneCountInString(title) < MinTitleLength {
		return NewClientError("campaign title must be at least %d characters", MinTitleLength)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewClientError("campaign title must be at most %d characters", MaxTitleLength)
	}

	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return NewClientError("campaign description must be at least %d characters", MinDescriptionLength)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return NewClientError("campaign description must be at most %d characters", MaxDescriptionLength)
	}

	goal, err := strconv.ParseFloat(strings.TrimSpace(goalAmount), 64)
	if err != nil || math.IsNaN(goal) || math.IsInf(goal, 0) || goal <= 0 {
		return NewClientError("invalid goal amount")
	}

	if durationDays < MinDurationDays || durationDays > MaxDurationDays {
		return NewClientError("campaign duration must be between %d and %d days", MinDurationDays, MaxDurationDays)
	}
	return nil
}

// IsHexAddress reports whether s looks like a 0x-prefixed 20-byte hex
// account address.
func IsHexAddress(s string) bool {
	if len(s) != 42 || !strings.HasPrefix(s, "0x") {
		return false
	}
	for _, c := range s[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
