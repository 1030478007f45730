package handlers

import (
	"errors"
	"net/http"

	"techforum/config"
	"techforum/helper"
	"techforum/middleware"
	"techforum/models"
	"techforum/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

// session key for the reset-password flow
const resetEmailKey = "reset_email"

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.Helper.SendValidationError(c, verrs)
			return
		}
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.authService.SignUp(req); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			h.Helper.SendBadRequest(c, "Email already exists")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendCreated(c, "User created successfully", req.Email)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	user, token, err := h.authService.SignIn(req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			h.Helper.SendUnauthorizedError(c, "Incorrect Email or password")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(config.JWTExpiration.Seconds()), "/", "", false, true)

	h.Helper.SendSuccess(c, "Signed in successfully", gin.H{
		"id":   user.ID,
		"role": user.Role,
		"name": user.FullName(),
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	h.Helper.SendSuccess(c, "Signed Out successfully", nil)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "User not found")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	// The reset endpoint picks the address up from the session cookie, the
	// client never sends it back.
	session := sessions.Default(c)
	session.Set(resetEmailKey, req.Email)
	if err := session.Save(); err != nil {
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendCreated(c, "Reset password email sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	session := sessions.Default(c)
	email, _ := session.Get(resetEmailKey).(string)
	if email == "" {
		h.Helper.SendNotFoundError(c, "Missing email or password")
		return
	}

	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	err := h.authService.ResetPassword(email, req.NewPassword, req.ConfirmPassword)
	switch {
	case errors.Is(err, models.ErrPasswordTooShort):
		h.Helper.SendBadRequest(c, "Password must be at least 6 characters long")
		return
	case errors.Is(err, models.ErrPasswordMismatch):
		h.Helper.SendUnauthorizedError(c, "Password not matched")
		return
	case errors.Is(err, models.ErrNotFound):
		h.Helper.SendBadRequest(c, "Invalid Email or user")
		return
	case err != nil:
		h.Helper.SendServerError(c)
		return
	}

	session.Delete(resetEmailKey)
	session.Save()

	h.Helper.SendCreated(c, "Password updated successfully", nil)
}

func (h *AuthHandler) UserRole(c *gin.Context) {
	id, ok := helper.ParseID(c.Param("id"))
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid Id")
		return
	}

	role, err := h.authService.GetRole(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.Helper.SendNotFoundError(c, "User not found")
			return
		}
		h.Helper.SendServerError(c)
		return
	}

	h.Helper.SendSuccess(c, "User role", gin.H{"userRole": role})
}
