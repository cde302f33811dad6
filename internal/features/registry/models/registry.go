package models

import (
	"push-backend/internal/common/validation"
)

// SignupRequest registers a wallet for the waitlist.
// @Description Waitlist signup entry
type SignupRequest struct {
	Wallet string `json:"wallet" binding:"required"`
	Name   string `json:"name"`
	Email  string `json:"email" binding:"required"`
}

func (r *SignupRequest) Validate() error {
	if err := validation.ValidateWallet(r.Wallet); err != nil {
		return err
	}
	if err := validation.ValidateMaxLength(r.Name, "name", validation.MaxNameLength); err != nil {
		return err
	}
	return validation.ValidateEmail(r.Email)
}

// SignupEntry is one persisted signup, keyed by wallet.
type SignupEntry struct {
	Wallet    string `json:"wallet"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"` // epoch ms
}

// AirdropRequest registers the authenticated wallet for the airdrop.
// @Description Airdrop registration details
type AirdropRequest struct {
	Email   string `json:"email" binding:"required"`
	Twitter string `json:"twitter,omitempty"`
	Ref     string `json:"ref,omitempty"`
}

func (r *AirdropRequest) Validate() error {
	if err := validation.ValidateEmail(r.Email); err != nil {
		return err
	}
	if err := validation.ValidateMaxLength(r.Twitter, "twitter", validation.MaxTwitterLength); err != nil {
		return err
	}
	return validation.ValidateMaxLength(r.Ref, "ref", validation.MaxRefLength)
}

// AirdropEntry is one persisted airdrop registration, keyed by the session
// subject address.
type AirdropEntry struct {
	Address   string `json:"address"`
	Email     string `json:"email"`
	Twitter   string `json:"twitter,omitempty"`
	Ref       string `json:"ref,omitempty"`
	CreatedAt int64  `json:"createdAt"` // epoch ms
}

// OKResponse acknowledges an accepted registration.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error" example:"bad_input"`
}
