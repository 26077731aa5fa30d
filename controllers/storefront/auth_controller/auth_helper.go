package auth_controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// resolveGoogleUser maps a Google identity to a commerce API account. New
// identities are registered with provider fields; an already-registered
// email falls back to a provider login.
func resolveGoogleUser(
	ctx context.Context,
	googleUser *models.GoogleUserInfo,
	googleID string,
	emailVerified bool,
) (*models.UserProfile, error) {
	client := services.GetUpstreamClient()

	verified := 0
	if emailVerified {
		verified = 1
	}

	firstName, lastName := splitName(googleUser)
	profile := models.UserProfile{
		FirstName:     firstName,
		LastName:      lastName,
		Username:      googleUser.Email,
		Email:         googleUser.Email,
		EmailVerified: verified,
		Provider:      "google",
		ProviderUID:   googleID,
	}

	created, err := client.Register(ctx, profile)
	if err == nil {
		return created, nil
	}

	// Registration is rejected when the email already has an account; a
	// provider login resolves the existing profile.
	existing, loginErr := client.Login(ctx, googleUser.Email, "google:"+googleID)
	if loginErr != nil {
		return nil, fmt.Errorf("register failed (%v), provider login failed: %w", err, loginErr)
	}
	return existing, nil
}

func splitName(googleUser *models.GoogleUserInfo) (first, last string) {
	if googleUser.GivenName != "" || googleUser.FamilyName != "" {
		return googleUser.GivenName, googleUser.FamilyName
	}
	parts := strings.SplitN(googleUser.Name, " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

func redirectToAppWithError(c *gin.Context, errorMsg string) {
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", config.GetAppURL(), errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
