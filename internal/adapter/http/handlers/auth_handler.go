package handlers

import (
	"errors"
	"log"
	"net/http"

	request "hospital_billing/internal/adapter/http/dto/request"
	response "hospital_billing/internal/adapter/http/dto/response"
	"hospital_billing/internal/adapter/http/middleware"
	"hospital_billing/internal/usecase"
	"hospital_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)

// AuthHandler handles signup, login and the admin approval queue.

type AuthHandler struct {
	usecase usecase.IUserUseCase
}

func NewAuthHandler(uc usecase.IUserUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Signup registers an account. Except for the very first admin, accounts wait
// for admin approval before they can log in to anything useful.
func (h *AuthHandler) Signup(c *gin.Context) {
	var payload request.SignupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Signup(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	message := "Account created, waiting for admin approval"
	if result.AutoApproved {
		message = "Admin account created"
	}
	c.JSON(http.StatusCreated, response.SignupResponse{
		User:    response.FromUser(result.User),
		Message: message,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, token, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[auth][handler] login username=%s role=%s approved=%t", user.Username, user.Role, user.Approved)

	c.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  response.FromUser(user),
	})
}

// Me returns the account behind the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return
	}

	user, err := h.usecase.GetByID(c.Request.Context(), actor.UserID)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// ListPendingUsers returns unapproved accounts, oldest signup first.
func (h *AuthHandler) ListPendingUsers(c *gin.Context) {
	users, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *AuthHandler) ApproveUser(c *gin.Context) {
	user, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) RejectUser(c *gin.Context) {
	user, err := h.usecase.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials), errors.Is(err, usecase.ErrInvalidRole):
		return pkg.NewDomainError("INVALID_AUTH_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "Username already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrAdminExists):
		return pkg.NewDomainErrorSimple("ADMIN_EXISTS", "Only one admin account is allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAccountPending):
		return pkg.NewDomainErrorSimple("ACCOUNT_PENDING", "Account is pending approval", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAccountRejected):
		return pkg.NewDomainErrorSimple("ACCOUNT_REJECTED", "Account registration was rejected", http.StatusForbidden)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserAlreadyApproved), errors.Is(err, usecase.ErrCannotRejectApproved):
		return pkg.NewDomainError("INVALID_APPROVAL_STATE", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
