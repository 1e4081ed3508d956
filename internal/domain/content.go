package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	MaxPostContentLength = 1000
	MaxCommentLength     = 500
	MinUsernameLength    = 3
	MaxUsernameLength    = 50
	MinPasswordLength    = 8
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidatePostContent trims and checks post content before any network
// dispatch. Trivially invalid input never reaches the transport.
func ValidatePostContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", fmt.Errorf("post content: %w", ErrContentEmpty)
	}
	if len(content) > MaxPostContentLength {
		return "", fmt.Errorf("post content exceeds %d characters: %w", MaxPostContentLength, ErrContentTooLong)
	}
	return content, nil
}

// ValidateCommentContent trims and checks comment content locally.
func ValidateCommentContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", fmt.Errorf("comment: %w", ErrContentEmpty)
	}
	if len(content) > MaxCommentLength {
		return "", fmt.Errorf("comment exceeds %d characters: %w", MaxCommentLength, ErrContentTooLong)
	}
	return content, nil
}

// ValidateUsername applies the server's registration rules locally and
// returns the lowercased canonical form.
func ValidateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if len(username) < MinUsernameLength {
		return "", fmt.Errorf("username must be at least %d characters", MinUsernameLength)
	}
	if len(username) > MaxUsernameLength {
		return "", fmt.Errorf("username must be at most %d characters", MaxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return "", fmt.Errorf("username can only contain letters, numbers, and underscores")
	}
	return strings.ToLower(username), nil
}

func ValidatePassword(raw string) error {
	if len(raw) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}
