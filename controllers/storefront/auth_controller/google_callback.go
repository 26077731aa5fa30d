// ════════════════════════════════════════════════════════════
// Path: controllers/storefront/auth_controller/google_callback.go
// Google OAuth Callback Handler
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handles the callback from Google OAuth. Verifies the state token, exchanges the authorization code, retrieves user info, resolves the shopper account upstream, issues a JWT cookie, and redirects back to the app.
// @Tags auth
// @Produce json
// @Success 307 "Redirect to app after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Failure 401 {object} models.ApiResponse "Unauthorized or token exchange failure"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("[auth.google] ❌ state mismatch")
		redirectToAppWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("[auth.google] ❌ no authorization code")
		redirectToAppWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("[auth.google] ❌ exchange failed: %v", err)
		redirectToAppWithError(c, "Failed to exchange token")
		return
	}

	client := config.GoogleOAuthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.Printf("[auth.google] ❌ failed to get user info: %v", err)
		redirectToAppWithError(c, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[auth.google] ❌ failed to read response: %v", err)
		redirectToAppWithError(c, "Failed to read user info")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := json.Unmarshal(body, &googleUser); err != nil {
		log.Printf("[auth.google] ❌ decode failed: %v", err)
		redirectToAppWithError(c, "Failed to decode user info")
		return
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = googleUser.ID
	}
	if googleID == "" {
		log.Printf("[auth.google] ❌ no Google ID in user info")
		redirectToAppWithError(c, "Google ID not found")
		return
	}

	emailVerified := googleUser.EmailVerified || googleUser.VerifiedEmail
	log.Printf("[auth.google] ✅ got user %s (verified: %v)", googleUser.Email, emailVerified)

	profile, err := resolveGoogleUser(c.Request.Context(), &googleUser, googleID, emailVerified)
	if err != nil {
		log.Printf("[auth.google] ❌ account resolution failed: %v", err)
		redirectToAppWithError(c, "Failed to resolve account")
		return
	}

	jwtToken, err := services.GenerateSessionJWT(profile.ID, profile.Email, profile.FirstName+" "+profile.LastName)
	if err != nil {
		log.Printf("[auth.google] ❌ JWT error: %v", err)
		redirectToAppWithError(c, "Failed to generate token")
		return
	}

	// Set HTTP-only cookie with the token
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		jwtToken,
		24*60*60, // 24 hours
		"/",
		"",
		isProd,
		true, // httpOnly
	)

	// Set temporary cookie with profile data (for popup to read)
	profile.Password = ""
	profileJSON, _ := json.Marshal(profile)
	c.SetCookie(
		"user_data",
		string(profileJSON),
		60, // 1 minute (just for transfer)
		"/",
		"",
		isProd,
		false, // NOT httpOnly (popup needs to read it)
	)

	log.Printf("[auth.google] ✅ login successful: %s", profile.Email)

	redirectURL := fmt.Sprintf("%s/auth-popup", config.GetAppURL())
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
