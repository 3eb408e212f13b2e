package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "construtora_xpto/internal/adapter/http/dto/request"
	response "construtora_xpto/internal/adapter/http/dto/response"
	"construtora_xpto/internal/infrastructure/auth"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)

// AuthHandler handles the three role-exclusive login endpoints.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// AdminLogin authenticates a persisted admin, falling back to the
// env-configured bootstrap credentials on first use.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, h.usecase.AdminLogin)
}

func (h *AuthHandler) UserLogin(c *gin.Context) {
	h.login(c, h.usecase.UserLogin)
}

func (h *AuthHandler) SupervisorLogin(c *gin.Context) {
	h.login(c, h.usecase.SupervisorLogin)
}

func (h *AuthHandler) login(
	c *gin.Context,
	authenticate func(ctx context.Context, email, password string) (usecase.LoginResult, error),
) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	result, err := authenticate(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLoginResult(result))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAdminPasswordNotSet):
		return pkg.NewDomainErrorSimple("ADMIN_PASSWORD_NOT_SET", "Admin account has no password set", http.StatusInternalServerError)
	case errors.Is(err, auth.ErrMissingSecret):
		return pkg.NewDomainError("MISSING_JWT_SECRET", "Token signing is not configured", err, http.StatusInternalServerError)
	default:
		log.Printf("[auth][handler] login failed err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
