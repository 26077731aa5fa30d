package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/cart"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// fakeGateway is a scriptable Gateway recording every call.
type fakeGateway struct {
	mu sync.Mutex

	shipping  []models.ShippingMethod
	payments  []models.PaymentMethod
	addresses []models.Address
	wallet    models.Wallet
	walletErr error

	voucherValid bool
	voucherErr   error

	basketID    string
	basketErr   error
	baskets     []models.BasketBody
	checkouts   []models.InCheckout
	emails      []models.ConfirmationEmail
	emailErr    error
	walletHits  int
	addressHits int
}

func (g *fakeGateway) ShippingMethods(context.Context, string) ([]models.ShippingMethod, error) {
	return g.shipping, nil
}

func (g *fakeGateway) PaymentMethods(context.Context, string) ([]models.PaymentMethod, error) {
	return g.payments, nil
}

func (g *fakeGateway) DeliveryAddresses(context.Context, string) ([]models.Address, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addressHits++
	return g.addresses, nil
}

func (g *fakeGateway) Wallet(_ context.Context, userID string) (*models.Wallet, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.walletHits++
	if g.walletErr != nil {
		return nil, g.walletErr
	}
	w := g.wallet
	w.UserID = userID
	return &w, nil
}

func (g *fakeGateway) CheckVoucher(context.Context, string, string, string) (bool, error) {
	return g.voucherValid, g.voucherErr
}

func (g *fakeGateway) AddBasket(_ context.Context, body models.BasketBody) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.basketErr != nil {
		return "", g.basketErr
	}
	g.baskets = append(g.baskets, body)
	return g.basketID, nil
}

func (g *fakeGateway) Checkout(_ context.Context, form models.InCheckout) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checkouts = append(g.checkouts, form)
	return nil
}

func (g *fakeGateway) SendConfirmationEmail(_ context.Context, email models.ConfirmationEmail) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.emails = append(g.emails, email)
	return g.emailErr
}

type nopStore struct{}

func (nopStore) Load(context.Context, string) ([]models.CartLine, error)       { return nil, nil }
func (nopStore) Save(context.Context, string, []models.CartLine) error         { return nil }
func (nopStore) Erase(context.Context, string) error                           { return nil }

func readyGateway() *fakeGateway {
	return &fakeGateway{
		shipping: []models.ShippingMethod{{ID: "sh-1", Name: "Courier"}, {ID: "sh-2", Name: "Pickup"}},
		payments: []models.PaymentMethod{
			{ID: "pm-cash", ModeName: "Cash"},
			{ID: "pm-wallet", ModeName: "Wallet"},
		},
		addresses: []models.Address{{ID: "ad-1", UserID: "u1", City: "Beirut"}},
		wallet:    models.Wallet{ID: "w1", Amount: 500},
		basketID:  "bk-1",
	}
}

func sessionWith(t *testing.T, gw Gateway, items ...models.CartLine) (*Orchestrator, *cart.Ledger) {
	t.Helper()
	ledger := cart.NewLedger("u1", nopStore{})
	for _, line := range items {
		require.NoError(t, ledger.Add(context.Background(), line.Item, line.Quantity))
	}
	o := NewOrchestrator(gw, ledger, models.UserProfile{ID: "u1", Email: "u1@example.com"},
		models.Company{ID: "cmp-1", Name: "Demo"}, "demo-store")
	o.now = func() time.Time { return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC) }
	return o, ledger
}

func line(id string, price, disc float64, qty int) models.CartLine {
	return models.CartLine{
		Item:     models.Item{ID: id, ItemID: "it-" + id, Name: id, UnitPrice: price, Discount: disc},
		Quantity: qty,
	}
}

func TestEnterDefaultsFirstOptions(t *testing.T) {
	gw := readyGateway()
	o, _ := sessionWith(t, gw, line("a", 10, 0, 1))

	require.NoError(t, o.Enter(context.Background()))
	snap := o.Snapshot()

	assert.Equal(t, "sh-1", snap.SelectedShipping)
	assert.Equal(t, "pm-cash", snap.SelectedPayment)
	assert.Equal(t, "ad-1", snap.SelectedAddress)
	assert.Nil(t, snap.Wallet, "cash selected, no wallet fetch")
}

func TestEnterKeepsExistingSelections(t *testing.T) {
	gw := readyGateway()
	o, _ := sessionWith(t, gw, line("a", 10, 0, 1))

	require.NoError(t, o.Enter(context.Background()))
	require.NoError(t, o.SelectShipping("sh-2"))
	require.NoError(t, o.Enter(context.Background()))

	assert.Equal(t, "sh-2", o.Snapshot().SelectedShipping)
}

func TestEnterLoadsAddressesOnce(t *testing.T) {
	gw := readyGateway()
	o, _ := sessionWith(t, gw, line("a", 10, 0, 1))

	require.NoError(t, o.Enter(context.Background()))
	require.NoError(t, o.Enter(context.Background()))

	gw.mu.Lock()
	hits := gw.addressHits
	gw.mu.Unlock()
	assert.Equal(t, 1, hits, "re-entry reuses the loaded address list")

	snap := o.Snapshot()
	require.Len(t, snap.Addresses, 1)
	assert.Equal(t, "ad-1", snap.SelectedAddress)
}

func TestSelectWalletPaymentLoadsBalance(t *testing.T) {
	gw := readyGateway()
	o, _ := sessionWith(t, gw, line("a", 10, 0, 1))
	require.NoError(t, o.Enter(context.Background()))

	require.NoError(t, o.SelectPayment(context.Background(), "pm-wallet"))

	snap := o.Snapshot()
	require.NotNil(t, snap.Wallet)
	assert.Equal(t, 500.0, snap.Wallet.Amount)
}

func TestSelectUnknownOptionFails(t *testing.T) {
	gw := readyGateway()
	o, _ := sessionWith(t, gw, line("a", 10, 0, 1))
	require.NoError(t, o.Enter(context.Background()))

	var vErr *ValidationError
	require.ErrorAs(t, o.SelectShipping("nope"), &vErr)
	require.ErrorAs(t, o.SelectPayment(context.Background(), "nope"), &vErr)
	require.ErrorAs(t, o.SelectAddress("nope"), &vErr)
}

func TestApplyVoucherEmptyCode(t *testing.T) {
	gw := readyGateway()
	o, _ := sessionWith(t, gw)

	err := o.ApplyVoucher(context.Background(), "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please enter a voucher code.", vErr.Message)
}

func TestApplyVoucherSuccessRefreshesWallet(t *testing.T) {
	gw := readyGateway()
	gw.voucherValid = true
	o, _ := sessionWith(t, gw)

	require.NoError(t, o.ApplyVoucher(context.Background(), "SAVE10"))

	snap := o.Snapshot()
	assert.True(t, snap.VoucherApplied)
	require.NotNil(t, snap.Wallet)
	assert.Equal(t, 1, gw.walletHits)
}

func TestApplyVoucherRejected(t *testing.T) {
	gw := readyGateway()
	gw.voucherValid = false
	o, _ := sessionWith(t, gw)

	err := o.ApplyVoucher(context.Background(), "BOGUS")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Invalid voucher code.", vErr.Message)
	assert.False(t, o.Snapshot().VoucherApplied)
	assert.Zero(t, gw.walletHits)
}

func TestSubmitValidationOrder(t *testing.T) {
	gw := readyGateway()

	// Guest session fails first on login, regardless of the rest.
	guest := NewOrchestrator(gw, cart.NewLedger("", nopStore{}), models.UserProfile{},
		models.Company{ID: "cmp-1"}, "demo-store")
	_, err := guest.Submit(context.Background())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please log in.", vErr.Message)

	// Logged in, empty cart.
	o, _ := sessionWith(t, gw)
	require.NoError(t, o.Enter(context.Background()))
	_, err = o.Submit(context.Background())
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Cart is empty.", vErr.Message)

	// Cart filled but nothing loaded yet: shipping comes first.
	bare, _ := sessionWith(t, gw, line("a", 10, 0, 1))
	_, err = bare.Submit(context.Background())
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Select a shipping method.", vErr.Message)
}

func TestSubmitBuildsPendingBasket(t *testing.T) {
	gw := readyGateway()
	o, _ := sessionWith(t, gw,
		line("a", 10, 0, 2),      // 20.00
		line("b", 50, 20, 1),     // 40.00
	)
	require.NoError(t, o.Enter(context.Background()))

	summary, err := o.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bk-1", summary.BasketID)
	assert.Equal(t, 60.0, summary.Total)

	require.Len(t, gw.baskets, 1)
	body := gw.baskets[0]
	assert.Equal(t, "pending", body.Header.Status)
	assert.Equal(t, "2026-03-14 15:09:26", body.Header.Date)
	assert.Equal(t, "sh-1", body.Header.ShippingID)
	assert.Equal(t, 60.0, body.Header.Total)
	assert.Equal(t, 10.0, body.Header.DiscountAmt)
	require.Len(t, body.Basket, 2)
	assert.Equal(t, 40.0, body.Basket[1].Total)

	var addr models.Address
	require.NoError(t, json.Unmarshal([]byte(body.Header.DeliveryAddress), &addr))
	assert.Equal(t, "ad-1", addr.ID)
}

func TestSubmitWalletInsufficientBalance(t *testing.T) {
	gw := readyGateway()
	gw.wallet.Amount = 5
	o, _ := sessionWith(t, gw, line("a", 10, 0, 1))
	require.NoError(t, o.Enter(context.Background()))
	require.NoError(t, o.SelectPayment(context.Background(), "pm-wallet"))

	_, err := o.Submit(context.Background())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Insufficient wallet balance.", vErr.Message)
	assert.Empty(t, gw.baskets, "no basket on failed validation")
}

func TestSubmitUpstreamRejection(t *testing.T) {
	gw := readyGateway()
	gw.basketErr = errors.New("basket rejected")
	o, _ := sessionWith(t, gw, line("a", 10, 0, 1))
	require.NoError(t, o.Enter(context.Background()))

	_, err := o.Submit(context.Background())
	require.Error(t, err)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr), "upstream failures are not validation errors")
}

func TestConfirmRecordsPaymentAndClearsCart(t *testing.T) {
	gw := readyGateway()
	o, ledger := sessionWith(t, gw, line("a", 10, 0, 2))
	require.NoError(t, o.Enter(context.Background()))

	_, err := o.Submit(context.Background())
	require.NoError(t, err)

	summary, err := o.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bk-1", summary.BasketID)

	require.Len(t, gw.checkouts, 1)
	form := gw.checkouts[0]
	assert.Equal(t, "paid", form.Status)
	assert.Equal(t, "bk-1", form.BasketID)
	assert.Equal(t, "demo-store", form.StoreName)

	require.Len(t, gw.emails, 1)
	assert.Equal(t, form, gw.emails[0].CheckoutForm)
	require.Len(t, gw.emails[0].Cart, 1)

	assert.Empty(t, ledger.Snapshot().Lines, "cart emptied after confirmation")

	_, err = o.Confirm(context.Background())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr, "second confirm has nothing pending")
}

func TestConfirmSurvivesEmailFailure(t *testing.T) {
	gw := readyGateway()
	gw.emailErr = errors.New("mailer down")
	o, _ := sessionWith(t, gw, line("a", 10, 0, 1))
	require.NoError(t, o.Enter(context.Background()))

	_, err := o.Submit(context.Background())
	require.NoError(t, err)
	_, err = o.Confirm(context.Background())
	require.NoError(t, err, "email failure never voids the order")
	require.Len(t, gw.checkouts, 1)
}
