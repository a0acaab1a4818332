package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/zenbourg/agency-api/internal/application/auth"
	"github.com/zenbourg/agency-api/internal/domain"
	"github.com/zenbourg/agency-api/internal/pkg/validate"
)

// AuthHandler handles the passwordless signup and signin endpoints.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler { return &AuthHandler{svc: svc} }

// SignUp starts a registration: it stores the pending profile and emails a
// signup code.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req domain.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.RequestSignUp(r.Context(), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{
		Success: true,
		Message: "Verification code sent to your email",
	})
}

// SendCode issues a one-time code: a signin code for existing accounts, or a
// fresh signup code for an in-flight registration.
func (h *AuthHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req domain.SendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var err error
	if req.Type == domain.PurposeSignUp {
		err = h.svc.ResendSignUpCode(r.Context(), req.Email)
	} else {
		err = h.svc.RequestSignInCode(r.Context(), req.Email)
	}
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{
		Success: true,
		Message: "Verification code sent to your email",
	})
}

// VerifySignUp confirms a signup code and activates the account.
func (h *AuthHandler) VerifySignUp(w http.ResponseWriter, r *http.Request) {
	h.verify(w, r, h.svc.VerifySignUp, "Account created successfully")
}

// VerifySignIn confirms a signin code and mints a session credential.
func (h *AuthHandler) VerifySignIn(w http.ResponseWriter, r *http.Request) {
	h.verify(w, r, h.svc.VerifySignIn, "Signed in successfully")
}

func (h *AuthHandler) verify(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, email, code string) (*auth.Result, error), message string) {
	var req domain.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := fn(r.Context(), req.Email, req.Code)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{
		Success: true,
		Message: message,
		Token:   res.Token,
		User:    res.User,
	})
}
