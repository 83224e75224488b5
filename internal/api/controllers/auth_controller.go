package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"resto/internal/models/request_models"
	"resto/internal/services"
	"resto/pkg/middleware"
	"resto/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	gate        *middleware.AuthGate
}

func NewAuthController(authService services.AuthServiceInterface, gate *middleware.AuthGate) *AuthController {
	return &AuthController{
		authService: authService,
		gate:        gate,
	}
}

func secureCookies() bool {
	return os.Getenv("SECURE_COOKIES") == "true"
}

// Login godoc
// @Summary Sign in through the identity provider
// @Description Delegates the credential check and opens a session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/api/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	login, sessionToken, err := ac.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.gate.CookieName(), sessionToken,
		int(services.SessionTTL.Seconds()), "/", "", secureCookies(), true)

	utils.RespondSuccess(c, login, "Login successful")
}

// Logout godoc
// @Summary Destroy the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [get]
func (ac *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(ac.gate.CookieName()); err == nil {
		ac.authService.Logout(token)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.gate.CookieName(), "", -1, "/", "", secureCookies(), true)

	utils.RespondSuccess(c, nil, "Signed out")
}

func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.RespondSuccess(c, user, "")
}
