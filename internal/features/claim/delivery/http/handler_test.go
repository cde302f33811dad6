package http_test

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"push-backend/internal/common/middleware"
	authhttp "push-backend/internal/features/auth/delivery/http"
	authmodels "push-backend/internal/features/auth/models"
	authservice "push-backend/internal/features/auth/service"
	claimhttp "push-backend/internal/features/claim/delivery/http"
	"push-backend/internal/features/claim/models"
	repo "push-backend/internal/features/claim/repository/docstore"
	claimservice "push-backend/internal/features/claim/service"
	"push-backend/internal/platform/docstore"
)

type apiHarness struct {
	router *gin.Engine
}

func newAPIHarness() *apiHarness {
	gin.SetMode(gin.TestMode)

	authSvc := authservice.NewService("test-secret", 5*time.Minute, time.Hour)
	claimSvc := claimservice.NewService(repo.NewPointsRepository(docstore.NewMemory()))

	router := gin.New()
	v1 := router.Group("/api/v1")
	authhttp.NewHandler(authSvc).RegisterRoutes(v1)
	claimhttp.NewHandler(claimSvc).RegisterRoutes(v1, middleware.SessionAuth(authSvc))
	return &apiHarness{router: router}
}

func (h *apiHarness) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	h.router.ServeHTTP(resp, req)
	return resp
}

func (h *apiHarness) postJSON(t *testing.T, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	h.router.ServeHTTP(resp, req)
	return resp
}

// login walks the full flow: fetch a challenge, sign it, exchange it for a
// session token.
func (h *apiHarness) login(t *testing.T, wallet string, priv ed25519.PrivateKey) string {
	t.Helper()

	resp := h.get(t, "/api/v1/auth/challenge?address="+wallet)
	require.Equal(t, http.StatusOK, resp.Code)

	var challenge authmodels.ChallengeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &challenge))

	sig := base64.StdEncoding.EncodeToString(ed25519.Sign(priv, []byte(challenge.Message)))
	resp = h.postJSON(t, "/api/v1/auth/verify", "", authmodels.VerifyRequest{
		Address:   wallet,
		Message:   challenge.Message,
		Signature: sig,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var verified authmodels.VerifyResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &verified))
	require.NotEmpty(t, verified.Token)
	return verified.Token
}

func testKeypair(t *testing.T) (string, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return base58.Encode(pub), priv
}

func rideProof(wallet string) models.RideProof {
	now := time.Now().UnixMilli()
	return models.RideProof{
		Wallet:         wallet,
		DistanceMeters: 2500,
		Seconds:        600,
		AvgKmh:         15,
		EnergyUsed:     2.5,
		Device:         "saga-001",
		StartedAt:      now - 600_000,
		EndedAt:        now,
	}
}

func signRideProof(t *testing.T, priv ed25519.PrivateKey, proof *models.RideProof) string {
	t.Helper()
	canonical, err := proof.Canonical()
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(ed25519.Sign(priv, canonical))
}

func TestClaimFlow_EndToEnd(t *testing.T) {
	harness := newAPIHarness()
	wallet, priv := testKeypair(t)

	token := harness.login(t, wallet, priv)

	proof := rideProof(wallet)
	resp := harness.postJSON(t, "/api/v1/claims", token, models.ClaimRequest{
		Proof:     proof,
		Signature: signRideProof(t, priv, &proof),
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var claim models.ClaimResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &claim))
	assert.True(t, claim.OK)
	assert.Equal(t, int64(238), claim.Delta)
	assert.Equal(t, int64(238), claim.Total)
}

func TestClaimFlow_DuplicateReturns409(t *testing.T) {
	harness := newAPIHarness()
	wallet, priv := testKeypair(t)

	token := harness.login(t, wallet, priv)

	proof := rideProof(wallet)
	req := models.ClaimRequest{Proof: proof, Signature: signRideProof(t, priv, &proof)}

	resp := harness.postJSON(t, "/api/v1/claims", token, req)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = harness.postJSON(t, "/api/v1/claims", token, req)
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.JSONEq(t, `{"error":"already_claimed"}`, resp.Body.String())
}

func TestClaimFlow_NoTokenRejected(t *testing.T) {
	harness := newAPIHarness()
	wallet, priv := testKeypair(t)

	proof := rideProof(wallet)
	resp := harness.postJSON(t, "/api/v1/claims", "", models.ClaimRequest{
		Proof:     proof,
		Signature: signRideProof(t, priv, &proof),
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, resp.Body.String())
}

func TestClaimFlow_GarbageTokenRejected(t *testing.T) {
	harness := newAPIHarness()
	wallet, priv := testKeypair(t)

	proof := rideProof(wallet)
	resp := harness.postJSON(t, "/api/v1/claims", "not-a-jwt", models.ClaimRequest{
		Proof:     proof,
		Signature: signRideProof(t, priv, &proof),
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestClaimFlow_MalformedBodyRejected(t *testing.T) {
	harness := newAPIHarness()
	wallet, priv := testKeypair(t)

	token := harness.login(t, wallet, priv)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	harness.router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"bad_input"}`, resp.Body.String())
}

func TestVerify_BadSignatureRejected(t *testing.T) {
	harness := newAPIHarness()
	wallet, _ := testKeypair(t)
	_, otherPriv := testKeypair(t)

	resp := harness.get(t, "/api/v1/auth/challenge?address="+wallet)
	require.Equal(t, http.StatusOK, resp.Code)

	var challenge authmodels.ChallengeResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &challenge))

	sig := base64.StdEncoding.EncodeToString(ed25519.Sign(otherPriv, []byte(challenge.Message)))
	resp = harness.postJSON(t, "/api/v1/auth/verify", "", authmodels.VerifyRequest{
		Address:   wallet,
		Message:   challenge.Message,
		Signature: sig,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.JSONEq(t, `{"error":"bad_signature"}`, resp.Body.String())
}

func TestChallenge_MissingAddressRejected(t *testing.T) {
	harness := newAPIHarness()

	resp := harness.get(t, "/api/v1/auth/challenge")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"address_required"}`, resp.Body.String())
}
