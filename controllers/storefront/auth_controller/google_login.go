// Path: controllers/storefront/auth_controller/google_login.go

package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
)

// GoogleLogin godoc
// @Summary Redirect to Google OAuth
// @Description Starts the Google OAuth flow by generating a state token, storing it in a secure cookie, and redirecting the user to Google's OAuth consent page.
// @Tags auth
// @Produce json
// @Success 307 "Temporary redirect to Google OAuth"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/google [get]
func GoogleLogin(c *gin.Context) {
	// Generate state token
	state := uuid.New().String()

	c.SetCookie(
		"oauth_state", // name
		state,         // value
		3600,          // maxAge (1 hour)
		"/",           // path
		"",            // domain (empty = current domain)
		false,         // secure (false for localhost)
		true,          // httpOnly
	)

	c.SetSameSite(http.SameSiteLaxMode)

	url := config.GoogleOAuthConfig.AuthCodeURL(state)

	log.Printf("[auth.google] redirecting to consent page, state %s", state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}
