package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zenbourg/agency-api/internal/application/auth"
	"github.com/zenbourg/agency-api/internal/domain"
)

// --- mock ---

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) RequestSignUp(ctx context.Context, req domain.SignUpRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAuthSvc) RequestSignInCode(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockAuthSvc) ResendSignUpCode(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockAuthSvc) VerifySignUp(ctx context.Context, email, code string) (*auth.Result, error) {
	args := m.Called(ctx, email, code)
	if r, _ := args.Get(0).(*auth.Result); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthSvc) VerifySignIn(ctx context.Context, email, code string) (*auth.Result, error) {
	args := m.Called(ctx, email, code)
	if r, _ := args.Get(0).(*auth.Result); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

func postJSON(t *testing.T, h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

// --- tests ---

func TestSignUp_HappyPath(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestSignUp", mock.Anything, mock.MatchedBy(func(req domain.SignUpRequest) bool {
		return req.Email == "new@example.com"
	})).Return(nil)

	h := NewAuthHandler(svc)
	rr := postJSON(t, h.SignUp, "/v1/auth/signup", map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "new@example.com",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	out := decodeEnvelope(t, rr)
	assert.Equal(t, true, out["success"])
	svc.AssertExpectations(t)
}

func TestSignUp_MissingFields(t *testing.T) {
	svc := &mockAuthSvc{}
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.SignUp, "/v1/auth/signup", map[string]string{"email": "new@example.com"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "RequestSignUp", mock.Anything, mock.Anything)
}

func TestSignUp_ExistingEmail(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestSignUp", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	h := NewAuthHandler(svc)
	rr := postJSON(t, h.SignUp, "/v1/auth/signup", map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "taken@example.com",
	})

	assert.Equal(t, http.StatusConflict, rr.Code)
	out := decodeEnvelope(t, rr)
	assert.Equal(t, false, out["success"])
}

func TestSendCode_SignInType(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestSignInCode", mock.Anything, "user@example.com").Return(nil)

	h := NewAuthHandler(svc)
	rr := postJSON(t, h.SendCode, "/v1/auth/send-code", map[string]string{
		"email": "user@example.com",
		"type":  "signin",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "ResendSignUpCode", mock.Anything, mock.Anything)
}

func TestSendCode_SignUpType(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("ResendSignUpCode", mock.Anything, "new@example.com").Return(nil)

	h := NewAuthHandler(svc)
	rr := postJSON(t, h.SendCode, "/v1/auth/send-code", map[string]string{
		"email": "new@example.com",
		"type":  "signup",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestSendCode_UnknownType(t *testing.T) {
	svc := &mockAuthSvc{}
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.SendCode, "/v1/auth/send-code", map[string]string{
		"email": "user@example.com",
		"type":  "password-reset",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSendCode_UnknownEmail(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("RequestSignInCode", mock.Anything, "ghost@example.com").Return(domain.ErrNotFound)

	h := NewAuthHandler(svc)
	rr := postJSON(t, h.SendCode, "/v1/auth/send-code", map[string]string{
		"email": "ghost@example.com",
		"type":  "signin",
	})

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestVerifySignIn_HappyPath(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifySignIn", mock.Anything, "user@example.com", "123456").Return(&auth.Result{
		Token: "signed-token",
		User:  &domain.User{UserID: "u1", Email: "user@example.com"},
	}, nil)

	h := NewAuthHandler(svc)
	rr := postJSON(t, h.VerifySignIn, "/v1/auth/verify-code", map[string]string{
		"email": "user@example.com",
		"code":  "123456",
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	out := decodeEnvelope(t, rr)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "signed-token", out["token"])
	require.NotNil(t, out["user"])
}

func TestVerifySignIn_BadCodeFormat(t *testing.T) {
	svc := &mockAuthSvc{}
	h := NewAuthHandler(svc)

	rr := postJSON(t, h.VerifySignIn, "/v1/auth/verify-code", map[string]string{
		"email": "user@example.com",
		"code":  "12345", // five digits
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "VerifySignIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifySignIn_WrongCode(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifySignIn", mock.Anything, "user@example.com", "111111").Return(nil, domain.ErrMismatch)

	h := NewAuthHandler(svc)
	rr := postJSON(t, h.VerifySignIn, "/v1/auth/verify-code", map[string]string{
		"email": "user@example.com",
		"code":  "111111",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifySignUp_ExpiredCode(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("VerifySignUp", mock.Anything, "new@example.com", "222222").Return(nil, domain.ErrExpired)

	h := NewAuthHandler(svc)
	rr := postJSON(t, h.VerifySignUp, "/v1/auth/verify-signup", map[string]string{
		"email": "new@example.com",
		"code":  "222222",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
