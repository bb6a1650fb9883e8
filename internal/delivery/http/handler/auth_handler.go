package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"healthcare-auth/internal/converter"
	"healthcare-auth/internal/delivery/dto"
	"healthcare-auth/internal/delivery/http/middleware"
	"healthcare-auth/internal/usecase"
	"healthcare-auth/pkg/response"
	"healthcare-auth/pkg/validator"
)

type AuthHandler struct {
	provisionUsecase usecase.ProvisionUsecase
	authUsecase      usecase.AuthUsecase
	validator        *validator.CustomValidator
}

func NewAuthHandler(provisionUsecase usecase.ProvisionUsecase, authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		provisionUsecase: provisionUsecase,
		authUsecase:      authUsecase,
		validator:        validator,
	}
}

// Register handles user registration with role-based profile creation
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FieldErrors(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.provisionUsecase.Register(r.Context(), &req)
	if err != nil {
		var fieldErrs usecase.FieldErrors
		var provErr *usecase.ProvisioningError
		switch {
		case errors.As(err, &fieldErrs):
			response.FieldErrors(w, fieldErrs)
		case errors.As(err, &provErr):
			response.Error(w, http.StatusBadRequest, provErr.Error())
		default:
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	token, err := h.authUsecase.IssueToken(r.Context(), user.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to issue token")
		return
	}

	response.JSON(w, http.StatusCreated, dto.AuthResponse{
		Message: "User registered successfully",
		User:    converter.UserToSummary(user),
		Token:   token,
	})
}

// Login authenticates the credential pair and returns the session token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.FieldErrors(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		// Disabled accounts get the same answer as bad credentials so the
		// endpoint cannot be used to enumerate usernames.
		case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrAccountDisabled):
			response.NonFieldError(w, "Invalid credentials")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	token, err := h.authUsecase.IssueToken(r.Context(), user.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to issue token")
		return
	}

	response.JSON(w, http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    converter.UserToSummary(user),
		Token:   token,
	})
}

// Logout revokes the current user's session token
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.RevokeToken(r.Context(), user.ID); err != nil {
		if errors.Is(err, usecase.ErrTokenNotFound) {
			response.Error(w, http.StatusBadRequest, "Token not found")
			return
		}
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Message(w, http.StatusOK, "Logout successful")
}

// GetProfile returns the authenticated user's full record with its role profile
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	current, err := h.authUsecase.CurrentUser(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.Unauthorized(w, "Invalid token")
			return
		}
		response.InternalServerError(w, "Failed to load profile")
		return
	}

	response.JSON(w, http.StatusOK, converter.UserToProfile(current))
}
