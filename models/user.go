package models

// UserProfile is a registered storefront user as the commerce API returns
// it on login/register.
type UserProfile struct {
	ID            string `json:"ireg_id"`
	CompanyID     string `json:"ireg_cmp_id,omitempty"`
	CustomerID    string `json:"ireg_cu_id,omitempty"`
	Language      string `json:"ireg_language,omitempty"`
	FirstName     string `json:"ireg_firstname"`
	LastName      string `json:"ireg_lastname"`
	Username      string `json:"ireg_username"`
	Password      string `json:"ireg_pass,omitempty"`
	Email         string `json:"ireg_email"`
	EmailVerified int    `json:"ireg_emailverified"`
	Phone1        string `json:"ireg_phone1"`
	Phone2        string `json:"ireg_phone2,omitempty"`
	Country       string `json:"ireg_country,omitempty"`
	Region        string `json:"ireg_region,omitempty"`
	Provider      string `json:"ireg_provider,omitempty"`
	ProviderUID   string `json:"ireg_provideruid,omitempty"`
}

// GoogleUserInfo is the identity document Google's userinfo endpoint
// returns. Sub and ID cover the v3/v2 shapes, same for the two verified
// flags.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// DevicePrefs is the small per-device settings document kept in Redis.
type DevicePrefs struct {
	Theme     string `json:"theme"`
	StoreName string `json:"store_name,omitempty"`
	Language  string `json:"language,omitempty"`
}

// LoginRequest is the credentials payload forwarded to the commerce API.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the upstream profile plus the session token this
// service mints for subsequent requests.
type LoginResponse struct {
	Token   string      `json:"token"`
	Profile UserProfile `json:"profile"`
}
