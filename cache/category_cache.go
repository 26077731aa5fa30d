package category_cache

import (
	"sync"
	"time"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

const TTL = 5 * time.Minute

// ── Category tree cache, one entry per company ───────────────────────────────
// Stores the assembled root categories with children linked. The tree only
// changes when the merchant edits families upstream, so a short TTL is enough.

type treeEntry struct {
	roots     []*models.Category
	fetchedAt time.Time
}

var (
	treeMu    sync.RWMutex
	treeCache = map[string]*treeEntry{}
)

func GetTree(companyID string) ([]*models.Category, bool) {
	treeMu.RLock()
	defer treeMu.RUnlock()
	if entry, ok := treeCache[companyID]; ok && time.Since(entry.fetchedAt) < TTL {
		return entry.roots, true
	}
	return nil, false
}

func SetTree(companyID string, roots []*models.Category) {
	treeMu.Lock()
	defer treeMu.Unlock()
	treeCache[companyID] = &treeEntry{roots: roots, fetchedAt: time.Now()}
}

// ── Brand list cache, one entry per company ──────────────────────────────────

type brandEntry struct {
	brands    []models.Brand
	fetchedAt time.Time
}

var (
	brandMu    sync.RWMutex
	brandCache = map[string]*brandEntry{}
)

func GetBrands(companyID string) ([]models.Brand, bool) {
	brandMu.RLock()
	defer brandMu.RUnlock()
	if entry, ok := brandCache[companyID]; ok && time.Since(entry.fetchedAt) < TTL {
		return entry.brands, true
	}
	return nil, false
}

func SetBrands(companyID string, brands []models.Brand) {
	brandMu.Lock()
	defer brandMu.Unlock()
	brandCache[companyID] = &brandEntry{brands: brands, fetchedAt: time.Now()}
}

// ── Invalidate one company's cached catalog metadata ─────────────────────────

func Invalidate(companyID string) {
	treeMu.Lock()
	delete(treeCache, companyID)
	treeMu.Unlock()

	brandMu.Lock()
	delete(brandCache, companyID)
	brandMu.Unlock()
}
