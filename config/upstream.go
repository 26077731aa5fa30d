package config

import (
	"log"
	"os"
)

// UpstreamBaseURL returns the commerce API base URL every catalog and
// checkout call goes through.
func UpstreamBaseURL() string {
	url := os.Getenv("COMMERCE_API_URL")
	if url == "" {
		url = "http://localhost:4000"
		log.Println("⚠️ COMMERCE_API_URL not set, using local default:", url)
	}
	return url
}

// DefaultStoreName returns the store this deployment serves when a request
// names no store explicitly.
func DefaultStoreName() string {
	return getEnv("STORE_NAME", "demo-store")
}
