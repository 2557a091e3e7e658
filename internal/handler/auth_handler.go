package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/clc-api/internal/models"
	"github.com/noah-isme/clc-api/internal/service"
	appErrors "github.com/noah-isme/clc-api/pkg/errors"
	"github.com/noah-isme/clc-api/pkg/response"
)

// CookieSettings controls how the session cookie is written. SameSite is
// Strict in development and None+Secure in production so the browser client
// can be deployed cross-origin.
type CookieSettings struct {
	Name     string
	Domain   string
	Path     string
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
	cookie  CookieSettings
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, cookie CookieSettings) *AuthHandler {
	if cookie.Path == "" {
		cookie.Path = "/"
	}
	return &AuthHandler{service: svc, cookie: cookie}
}

// Login godoc
// @Summary Authenticate student
// @Description Authenticate a student by reference id and registered name
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, res.AccessToken, h.cookie.MaxAge)
	response.JSON(c, http.StatusOK, res)
}

// Me godoc
// @Summary Get current student
// @Description Returns the authenticated student's directory profile
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /students/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := sessionFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	student, err := h.service.CurrentStudent(c.Request.Context(), claims.StudentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, student)
}

// Logout godoc
// @Summary Logout current session
// @Description Clears the session cookie; succeeds even without a session
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims := sessionFromContext(c); claims != nil {
		h.service.Logout(c.Request.Context(), claims)
	}

	h.setSessionCookie(c, "", -1)
	response.JSON(c, http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.cookie.SameSite)
	c.SetCookie(h.cookie.Name, value, maxAge, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}
