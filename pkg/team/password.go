// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var _ PasswordVerifierInterface = (*BcryptVerifier)(nil)

type BcryptVerifier struct {
	cost int
}

func (v *BcryptVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash team password: %w", err)
	}

	return string(hash), nil
}

// Verify compares in constant time, an empty or malformed hash never matches
func (v *BcryptVerifier) Verify(hash, password string) bool {
	if hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BcryptVerifier{cost: cost}
}
