// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidStaffKey = errors.New("invalid staff key")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrWrongDomain     = errors.New("email address is outside the school domain")
)

// NewParticipantID returns a random identifier for a signup row
func NewParticipantID() string {
	return uuid.NewString()
}

// GenerateStaffKey creates an HMAC-SHA256 staff key for a school domain,
// encoded as unpadded base64url so it fits in a header unchanged.
func GenerateStaffKey(domain, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(strings.ToLower(domain)))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// ValidateStaffKey checks the provided key against the domain's staff key.
// An empty salt means staff operations are disabled.
func ValidateStaffKey(domain, staffKey, salt string) error {
	if salt == "" || staffKey == "" {
		return ErrInvalidStaffKey
	}
	expected := GenerateStaffKey(domain, salt)
	if !hmac.Equal([]byte(staffKey), []byte(expected)) {
		return ErrInvalidStaffKey
	}
	return nil
}

// NormalizeEmail trims and lowercases an address so duplicates compare equal
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that email is a bare address, and when domain is
// non-empty, that it belongs to that domain.
func ValidateEmail(email, domain string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	if domain == "" {
		return nil
	}
	at := strings.LastIndexByte(email, '@')
	if !strings.EqualFold(email[at+1:], domain) {
		return ErrWrongDomain
	}
	return nil
}
