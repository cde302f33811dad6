package service

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"push-backend/internal/common/crypto"
	apperrors "push-backend/internal/common/errors"
	"push-backend/internal/features/auth/models"
)

// Challenge message layout. The expiry is re-extracted from the signed
// message at verification time, so issuance keeps no state.
const challengeTemplate = "PUSH SIWS v1\nAddress: %s\nNonce: %s\nExpires: %d"

const nonceLength = 8
const nonceAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

var expiresPattern = regexp.MustCompile(`Expires:\s*(\d+)`)

// SessionClaims is the JWT payload of a session token.
type SessionClaims struct {
	Scope []string `json:"scope"`
	jwt.RegisteredClaims
}

// Service issues login challenges and exchanges signed challenges for
// session tokens.
type Service struct {
	secret       []byte
	challengeTTL time.Duration
	sessionTTL   time.Duration
}

func NewService(secret string, challengeTTL, sessionTTL time.Duration) *Service {
	return &Service{
		secret:       []byte(secret),
		challengeTTL: challengeTTL,
		sessionTTL:   sessionTTL,
	}
}

// Challenge builds a time-bounded challenge message for address. Nothing is
// persisted; validity is entirely embedded in the message.
func (s *Service) Challenge(address string) (*models.ChallengeResponse, error) {
	if address == "" {
		return nil, apperrors.NewValidationError("address_required")
	}

	nonce, err := newNonce()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "challenge_failed")
	}

	expires := time.Now().Add(s.challengeTTL).Unix()
	return &models.ChallengeResponse{
		Message: fmt.Sprintf(challengeTemplate, address, nonce, expires),
		Expires: expires,
	}, nil
}

// Verify checks a signed challenge and mints a session token for its
// address. Checks run in order and the first failure wins.
func (s *Service) Verify(req *models.VerifyRequest) (*models.VerifyResponse, error) {
	if req.Address == "" || req.Message == "" || req.Signature == "" {
		return nil, apperrors.NewValidationError("missing_fields")
	}

	if !crypto.VerifyByAddress([]byte(req.Message), req.Signature, req.Address) {
		return nil, apperrors.New(apperrors.ErrCodeBadSignature, "bad_signature")
	}

	match := expiresPattern.FindStringSubmatch(req.Message)
	if match == nil {
		return nil, apperrors.NewValidationError("no_exp")
	}
	expires, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return nil, apperrors.NewValidationError("no_exp")
	}
	if expires*1000 < time.Now().UnixMilli() {
		return nil, apperrors.New(apperrors.ErrCodeExpired, "expired")
	}

	token, err := s.mintSession(req.Address)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "verify_failed")
	}

	return &models.VerifyResponse{Address: req.Address, Token: token}, nil
}

// ParseSession validates a session token and returns its subject address.
func (s *Service) ParseSession(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.Subject, nil
}

func (s *Service) mintSession(address string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Scope: []string{"user"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   address,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// newNonce draws a short base-36 nonce from the system CSPRNG.
func newNonce() (string, error) {
	buf := make([]byte, nonceLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	out := make([]byte, nonceLength)
	for i, b := range buf {
		out[i] = nonceAlphabet[int(b)%len(nonceAlphabet)]
	}
	return string(out), nil
}
