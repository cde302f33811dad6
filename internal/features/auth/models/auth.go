package models

// ChallengeResponse carries the sign-in challenge a wallet renders to the
// user for approval.
// @Description Login challenge message and its expiry
type ChallengeResponse struct {
	Message string `json:"message" example:"PUSH SIWS v1\nAddress: ...\nNonce: ...\nExpires: ..."`
	Expires int64  `json:"expires" example:"1735689600"` // unix seconds
}

// VerifyRequest is a signed challenge response.
// @Description Signed challenge for session issuance
type VerifyRequest struct {
	Address   string `json:"address" binding:"required" example:"4Nd1mYQkL6pVrHd6vXhzgc3JwbaGHCbnCerjqj9B7Kvk"`
	Message   string `json:"message" binding:"required"`
	Signature string `json:"signature" binding:"required" example:"base64_encoded_signature"`
}

// VerifyResponse returns the session token for the proven address.
// @Description Session token for the verified wallet
type VerifyResponse struct {
	Address string `json:"address"`
	Token   string `json:"token"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error" example:"bad_signature"`
}
