package services

import (
	"log"
	"sync"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/cart"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/checkout"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/upstream"
)

var (
	upstreamClient *upstream.Client
	cartManager    *cart.Manager
)

// InitStorefront wires the commerce API client and the cart layer. Call
// after Redis is connected.
func InitStorefront() {
	upstreamClient = upstream.NewClient(config.UpstreamBaseURL(), nil)
	cartManager = cart.NewManager(cart.NewRedisStore(config.RedisClient))
	log.Println("✅ Storefront services initialized")
}

// GetUpstreamClient returns the shared commerce API client.
func GetUpstreamClient() *upstream.Client {
	if upstreamClient == nil {
		upstreamClient = upstream.NewClient(config.UpstreamBaseURL(), nil)
	}
	return upstreamClient
}

// GetCartManager returns the shared per-user cart registry.
func GetCartManager() *cart.Manager {
	if cartManager == nil {
		cartManager = cart.NewManager(cart.NewRedisStore(config.RedisClient))
	}
	return cartManager
}

// ── Checkout session registry ────────────────────────────────────────────────
// One orchestrator per logged-in user, created lazily on checkout entry and
// dropped once the order is confirmed.

var (
	checkoutMu       sync.Mutex
	checkoutSessions = map[string]*checkout.Orchestrator{}
)

// CheckoutSession returns the user's orchestrator, creating one bound to
// the given company when none exists yet.
func CheckoutSession(userID string, user models.UserProfile, company models.Company, storeName string) *checkout.Orchestrator {
	checkoutMu.Lock()
	defer checkoutMu.Unlock()
	if o, ok := checkoutSessions[userID]; ok {
		return o
	}
	ledger := GetCartManager().Ledger(config.Ctx, userID)
	o := checkout.NewOrchestrator(GetUpstreamClient(), ledger, user, company, storeName)
	checkoutSessions[userID] = o
	return o
}

// ActiveCheckoutSession returns the user's orchestrator if one exists.
func ActiveCheckoutSession(userID string) (*checkout.Orchestrator, bool) {
	checkoutMu.Lock()
	defer checkoutMu.Unlock()
	o, ok := checkoutSessions[userID]
	return o, ok
}

// DropCheckoutSession discards the user's orchestrator, e.g. after a
// confirmed order or logout.
func DropCheckoutSession(userID string) {
	checkoutMu.Lock()
	defer checkoutMu.Unlock()
	delete(checkoutSessions, userID)
}
