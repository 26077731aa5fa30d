package catalog_controller

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/services"
)

// companyTTL bounds how long a resolved store is reused before asking the
// commerce API again.
const companyTTL = 5 * time.Minute

type companyEntry struct {
	company   models.Company
	fetchedAt time.Time
}

var (
	companyMu    sync.RWMutex
	companyCache = map[string]*companyEntry{}
)

// resolveCompany maps the storename query parameter (or the deployment
// default) to a company record, with a short-lived cache in front.
func resolveCompany(c *gin.Context) (*models.Company, error) {
	storeName := c.Query("storename")
	if storeName == "" {
		storeName = config.DefaultStoreName()
	}

	companyMu.RLock()
	entry, ok := companyCache[storeName]
	companyMu.RUnlock()
	if ok && time.Since(entry.fetchedAt) < companyTTL {
		company := entry.company
		return &company, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	company, err := services.GetUpstreamClient().CompanyByName(ctx, storeName)
	if err != nil {
		return nil, err
	}

	companyMu.Lock()
	companyCache[storeName] = &companyEntry{company: *company, fetchedAt: time.Now()}
	companyMu.Unlock()
	return company, nil
}

// brandsParam parses the brands query parameter, a comma-separated list of
// brand ids.
func brandsParam(c *gin.Context) []string {
	raw := c.Query("brands")
	if raw == "" {
		return nil
	}
	var brands []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brands = append(brands, b)
		}
	}
	return brands
}
