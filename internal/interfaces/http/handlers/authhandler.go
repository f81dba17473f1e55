package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mado-app/mado/internal/application/user/usecases"
	"github.com/mado-app/mado/internal/domain/user"
	"github.com/mado-app/mado/internal/interfaces/http/middleware"
	"github.com/mado-app/mado/internal/shared/config"
	"github.com/mado-app/mado/internal/shared/logger"
	"github.com/mado-app/mado/internal/shared/utils"
)

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginWithPasswordCommand) (*usecases.LoginWithPasswordResult, error)
}

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterWithPasswordCommand) (*usecases.RegisterWithPasswordResult, error)
}

type checkUsernameUseCase interface {
	Execute(ctx context.Context, cmd usecases.CheckUsernameCommand) (*usecases.CheckUsernameResult, error)
}

type initiateOAuthUseCase interface {
	Execute(ctx context.Context, cmd usecases.InitiateOAuthLoginCommand) (*usecases.InitiateOAuthLoginResult, error)
}

type oauthCallbackUseCase interface {
	Execute(ctx context.Context, cmd usecases.HandleOAuthCallbackCommand) (*usecases.HandleOAuthCallbackResult, error)
}

type refreshTokenUseCase interface {
	Execute(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.RefreshTokenResult, error)
}

type getAccountUseCase interface {
	Execute(ctx context.Context, query usecases.GetAccountQuery) (*usecases.GetAccountResult, error)
}

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	loginUC         loginUseCase
	registerUC      registerUseCase
	checkUsernameUC checkUsernameUseCase
	initiateOAuthUC initiateOAuthUseCase
	oauthCallbackUC oauthCallbackUseCase
	refreshUC       refreshTokenUseCase
	getAccountUC    getAccountUseCase
	authConfig      config.AuthConfig
	frontendURL     string
	logger          logger.Interface
}

func NewAuthHandler(
	loginUC loginUseCase,
	registerUC registerUseCase,
	checkUsernameUC checkUsernameUseCase,
	initiateOAuthUC initiateOAuthUseCase,
	oauthCallbackUC oauthCallbackUseCase,
	refreshUC refreshTokenUseCase,
	getAccountUC getAccountUseCase,
	authConfig config.AuthConfig,
	frontendURL string,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:         loginUC,
		registerUC:      registerUC,
		checkUsernameUC: checkUsernameUC,
		initiateOAuthUC: initiateOAuthUC,
		oauthCallbackUC: oauthCallbackUC,
		refreshUC:       refreshUC,
		getAccountUC:    getAccountUC,
		authConfig:      authConfig,
		frontendURL:     frontendURL,
		logger:          logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

// Register creates a credential account and signs the new user in. A
// failure of the follow-up login does not undo the registration; the
// response flags it so the client can fall back to the login form.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterWithPasswordCommand{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	autoLogin := true
	login, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnw("post-registration auto-login failed", "error", err, "user_id", result.Account.ID())
		autoLogin = false
	} else {
		h.setAuthCookies(c, login.AccessToken, login.RefreshToken)
	}

	utils.CreatedResponse(c, gin.H{
		"success":    true,
		"user":       userBody(result.Account),
		"auto_login": autoLogin,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)
	utils.OKResponse(c, gin.H{
		"success": true,
		"user":    userBody(result.Account),
	})
}

type checkUsernameRequest struct {
	Username string `json:"username"`
}

// CheckUsername answers the registration form's availability probe.
func (h *AuthHandler) CheckUsername(c *gin.Context) {
	var req checkUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.checkUsernameUC.Execute(c.Request.Context(), usecases.CheckUsernameCommand{
		Username: req.Username,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"available": result.Available,
		"message":   result.Message,
	})
}

// OAuthStart redirects the browser to the provider's authorization page.
func (h *AuthHandler) OAuthStart(c *gin.Context) {
	result, err := h.initiateOAuthUC.Execute(c.Request.Context(), usecases.InitiateOAuthLoginCommand{
		Provider: c.Param("provider"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, result.AuthURL)
}

// OAuthCallback completes the provider round trip, establishes the session
// and sends the browser back to the frontend.
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	result, err := h.oauthCallbackUC.Execute(c.Request.Context(), usecases.HandleOAuthCallbackCommand{
		Provider: c.Param("provider"),
		Code:     c.Query("code"),
		State:    c.Query("state"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)
	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL)
}

// Refresh mints a fresh access token from the refresh cookie.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)
	if token == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Missing refresh token")
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{RefreshToken: token})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAccessTokenCookie(c, h.authConfig.Cookie, result.AccessToken, h.accessMaxAge())
	utils.OKResponse(c, gin.H{"success": true})
}

// Logout clears the session cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.authConfig.Cookie)
	utils.OKResponse(c, gin.H{"success": true})
}

// Me returns the signed-in user's own account.
func (h *AuthHandler) Me(c *gin.Context) {
	result, err := h.getAccountUC.Execute(c.Request.Context(), usecases.GetAccountQuery{
		UserID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, gin.H{"user": userBody(result.Account)})
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	utils.SetAuthCookies(c, h.authConfig.Cookie, accessToken, refreshToken,
		h.accessMaxAge(), h.authConfig.JWT.RefreshExpDays*24*3600)
}

func (h *AuthHandler) accessMaxAge() int {
	return h.authConfig.JWT.AccessExpMinutes * 60
}

// userBody is the account shape returned by the auth endpoints.
func userBody(account *user.Account) gin.H {
	return gin.H{
		"id":       account.ID(),
		"email":    account.Email().String(),
		"username": account.UsernameString(),
		"name":     account.Name(),
	}
}
