// Package checkout runs the two-phase order flow: Submit validates the
// session and registers a pending basket, Confirm records the payment and
// empties the cart. One Orchestrator serves one shopper session.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/cart"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

const basketTimeFormat = "2006-01-02 15:04:05"

// ErrBusy is returned when a voucher check or a submission is already in
// flight for this session.
var ErrBusy = errors.New("another request is in progress")

// ValidationError is a shopper-facing precondition failure. The message is
// shown as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validation(msg string) error { return &ValidationError{Message: msg} }

// Gateway is the slice of the commerce API the checkout flow needs.
// *upstream.Client satisfies it.
type Gateway interface {
	ShippingMethods(ctx context.Context, companyID string) ([]models.ShippingMethod, error)
	PaymentMethods(ctx context.Context, companyID string) ([]models.PaymentMethod, error)
	DeliveryAddresses(ctx context.Context, userID string) ([]models.Address, error)
	Wallet(ctx context.Context, userID string) (*models.Wallet, error)
	CheckVoucher(ctx context.Context, companyID, code, userID string) (bool, error)
	AddBasket(ctx context.Context, body models.BasketBody) (string, error)
	Checkout(ctx context.Context, form models.InCheckout) error
	SendConfirmationEmail(ctx context.Context, email models.ConfirmationEmail) error
}

// Snapshot is the checkout session as the client renders it.
type Snapshot struct {
	ShippingMethods  []models.ShippingMethod `json:"shipping_methods"`
	PaymentMethods   []models.PaymentMethod  `json:"payment_methods"`
	Addresses        []models.Address        `json:"addresses"`
	SelectedShipping string                  `json:"selected_shipping,omitempty"`
	SelectedPayment  string                  `json:"selected_payment,omitempty"`
	SelectedAddress  string                  `json:"selected_address,omitempty"`
	Wallet           *models.Wallet          `json:"wallet,omitempty"`
	VoucherApplied   bool                    `json:"voucher_applied"`
	Cart             models.Cart             `json:"cart"`
}

// Summary is the outcome of a successful Submit, held until Confirm.
type Summary struct {
	BasketID    string            `json:"basket_id"`
	Total       float64           `json:"total"`
	PaymentMode string            `json:"payment_mode"`
	Body        models.BasketBody `json:"body"`
	Lines       []models.CartLine `json:"lines"`
}

// Orchestrator holds one shopper's checkout state. All methods are safe for
// concurrent use.
type Orchestrator struct {
	gw        Gateway
	cart      *cart.Ledger
	user      models.UserProfile
	company   models.Company
	storeName string
	now       func() time.Time

	mu              sync.Mutex
	shipping        []models.ShippingMethod
	payments        []models.PaymentMethod
	addresses       []models.Address
	addressesLoaded bool
	selShipping     string
	selPayment      string
	selAddress      string
	wallet          *models.Wallet
	voucherApplied  bool
	voucherBusy     bool
	submitBusy      bool
	pending         *Summary
}

func NewOrchestrator(gw Gateway, ledger *cart.Ledger, user models.UserProfile, company models.Company, storeName string) *Orchestrator {
	return &Orchestrator{
		gw:        gw,
		cart:      ledger,
		user:      user,
		company:   company,
		storeName: storeName,
		now:       time.Now,
	}
}

// Enter loads shipping methods, payment modes and saved addresses, and
// default-selects the first of each when nothing is selected yet. Safe to
// call again on re-entry, selections survive.
func (o *Orchestrator) Enter(ctx context.Context) error {
	shipping, err := o.gw.ShippingMethods(ctx, o.company.ID)
	if err != nil {
		return fmt.Errorf("load shipping methods: %w", err)
	}
	payments, err := o.gw.PaymentMethods(ctx, o.company.ID)
	if err != nil {
		return fmt.Errorf("load payment methods: %w", err)
	}

	// Addresses are loaded once per session, re-entry keeps the list.
	o.mu.Lock()
	haveAddresses := o.addressesLoaded
	o.mu.Unlock()

	var addresses []models.Address
	if !haveAddresses {
		addresses, err = o.gw.DeliveryAddresses(ctx, o.user.ID)
		if err != nil {
			return fmt.Errorf("load addresses: %w", err)
		}
	}

	o.mu.Lock()
	o.shipping = shipping
	o.payments = payments
	if !haveAddresses {
		o.addresses = addresses
		o.addressesLoaded = true
	} else {
		addresses = o.addresses
	}
	if o.selShipping == "" && len(shipping) > 0 {
		o.selShipping = shipping[0].ID
	}
	if o.selPayment == "" && len(payments) > 0 {
		o.selPayment = payments[0].ID
	}
	if o.selAddress == "" && len(addresses) > 0 {
		o.selAddress = addresses[0].ID
	}
	needWallet := o.selectedPaymentLocked() != nil && o.selectedPaymentLocked().IsWallet() && o.wallet == nil
	o.mu.Unlock()

	if needWallet {
		return o.refreshWallet(ctx)
	}
	return nil
}

// Snapshot returns a copy of the session state plus the current cart.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Snapshot{
		ShippingMethods:  append([]models.ShippingMethod(nil), o.shipping...),
		PaymentMethods:   append([]models.PaymentMethod(nil), o.payments...),
		Addresses:        append([]models.Address(nil), o.addresses...),
		SelectedShipping: o.selShipping,
		SelectedPayment:  o.selPayment,
		SelectedAddress:  o.selAddress,
		Wallet:           o.wallet,
		VoucherApplied:   o.voucherApplied,
		Cart:             o.cart.Snapshot(),
	}
}

// SelectShipping picks a delivery option from the loaded list.
func (o *Orchestrator) SelectShipping(id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, m := range o.shipping {
		if m.ID == id {
			o.selShipping = id
			return nil
		}
	}
	return validation("Select a shipping method.")
}

// SelectPayment picks a payment mode. Choosing the wallet mode pulls the
// current balance so the client can show it.
func (o *Orchestrator) SelectPayment(ctx context.Context, id string) error {
	o.mu.Lock()
	var picked *models.PaymentMethod
	for i := range o.payments {
		if o.payments[i].ID == id {
			picked = &o.payments[i]
			break
		}
	}
	if picked == nil {
		o.mu.Unlock()
		return validation("Select a payment method.")
	}
	o.selPayment = id
	isWallet := picked.IsWallet()
	o.mu.Unlock()

	if isWallet {
		return o.refreshWallet(ctx)
	}
	return nil
}

// SelectAddress picks a delivery address from the loaded list.
func (o *Orchestrator) SelectAddress(id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, a := range o.addresses {
		if a.ID == id {
			o.selAddress = id
			return nil
		}
	}
	return validation("Select a delivery address.")
}

// ApplyVoucher validates a voucher code for this shopper. An accepted
// voucher credits the wallet upstream, so the balance is refetched.
func (o *Orchestrator) ApplyVoucher(ctx context.Context, code string) error {
	if code == "" {
		return validation("Please enter a voucher code.")
	}

	o.mu.Lock()
	if o.voucherBusy {
		o.mu.Unlock()
		return ErrBusy
	}
	o.voucherBusy = true
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.voucherBusy = false
		o.mu.Unlock()
	}()

	valid, err := o.gw.CheckVoucher(ctx, o.company.ID, code, o.user.ID)
	if err != nil {
		return fmt.Errorf("check voucher: %w", err)
	}
	if !valid {
		return validation("Invalid voucher code.")
	}

	o.mu.Lock()
	o.voucherApplied = true
	o.mu.Unlock()
	log.Printf("[checkout.voucher] ✅ voucher accepted for user %s", o.user.ID)
	return o.refreshWallet(ctx)
}

// Submit validates the session in order and registers the basket upstream
// with status pending. The returned Summary is held for Confirm.
func (o *Orchestrator) Submit(ctx context.Context) (*Summary, error) {
	o.mu.Lock()
	if o.submitBusy {
		o.mu.Unlock()
		return nil, ErrBusy
	}
	o.submitBusy = true
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		o.submitBusy = false
		o.mu.Unlock()
	}()

	snapshot := o.cart.Snapshot()

	o.mu.Lock()
	selShipping, selPayment, selAddress := o.selShipping, o.selPayment, o.selAddress
	payMethod := o.selectedPaymentLocked()
	var address *models.Address
	for i := range o.addresses {
		if o.addresses[i].ID == selAddress {
			address = &o.addresses[i]
			break
		}
	}
	o.mu.Unlock()

	switch {
	case o.user.ID == "":
		return nil, validation("Please log in.")
	case len(snapshot.Lines) == 0:
		return nil, validation("Cart is empty.")
	case selShipping == "":
		return nil, validation("Select a shipping method.")
	case selPayment == "" || payMethod == nil:
		return nil, validation("Select a payment method.")
	case address == nil:
		return nil, validation("Select a delivery address.")
	}

	if payMethod.IsWallet() {
		if err := o.refreshWallet(ctx); err != nil {
			return nil, err
		}
		o.mu.Lock()
		balance := 0.0
		if o.wallet != nil {
			balance = o.wallet.Amount
		}
		o.mu.Unlock()
		if balance < snapshot.TotalPrice {
			return nil, validation("Insufficient wallet balance.")
		}
	}

	body, err := o.buildBasket(snapshot, selShipping, *address)
	if err != nil {
		return nil, err
	}

	basketID, err := o.gw.AddBasket(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("submit basket: %w", err)
	}

	summary := &Summary{
		BasketID:    basketID,
		Total:       body.Header.Total,
		PaymentMode: payMethod.ModeName,
		Body:        body,
		Lines:       snapshot.Lines,
	}
	o.mu.Lock()
	o.pending = summary
	o.mu.Unlock()
	log.Printf("[checkout.submit] ✅ basket %s registered for user %s, total %.2f", basketID, o.user.ID, summary.Total)
	return summary, nil
}

// Confirm records the payment for the basket Submit registered, asks the
// mailer for a confirmation email and empties the cart. A failed email
// never voids the order.
func (o *Orchestrator) Confirm(ctx context.Context) (*Summary, error) {
	o.mu.Lock()
	summary := o.pending
	walletID := ""
	if o.wallet != nil {
		walletID = o.wallet.ID
	}
	o.mu.Unlock()
	if summary == nil {
		return nil, validation("Nothing to confirm.")
	}

	form := models.InCheckout{
		UserID:      o.user.ID,
		CompanyID:   o.company.ID,
		BasketID:    summary.BasketID,
		PaymentMode: summary.PaymentMode,
		Total:       summary.Total,
		Status:      "paid",
		UserStamp:   o.user.ID,
		WalletID:    walletID,
		User:        o.user,
		StoreName:   o.storeName,
	}
	if err := o.gw.Checkout(ctx, form); err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}

	if err := o.gw.SendConfirmationEmail(ctx, models.ConfirmationEmail{
		CheckoutForm: form,
		Cart:         summary.Lines,
	}); err != nil {
		log.Printf("[checkout.confirm] ⚠️ confirmation email failed for basket %s: %v", summary.BasketID, err)
	}

	if err := o.cart.Clear(ctx); err != nil {
		log.Printf("[checkout.confirm] ⚠️ cart clear failed for user %s: %v", o.user.ID, err)
	}

	o.mu.Lock()
	o.pending = nil
	o.mu.Unlock()
	log.Printf("[checkout.confirm] ✅ basket %s paid via %s", summary.BasketID, summary.PaymentMode)
	return summary, nil
}

// buildBasket turns the cart into the add_basket payload. Line totals are
// rounded to two decimals and the header total is their sum.
func (o *Orchestrator) buildBasket(snapshot models.Cart, shippingID string, address models.Address) (models.BasketBody, error) {
	stamp := o.now().Format(basketTimeFormat)

	addressJSON, err := json.Marshal(address)
	if err != nil {
		return models.BasketBody{}, fmt.Errorf("encode delivery address: %w", err)
	}

	var lines []models.BasketItem
	var total, discountAmt, taxAmt, tax1Amt, tax2Amt float64
	for _, line := range snapshot.Lines {
		lineTotal := round2(line.Total())
		lines = append(lines, models.BasketItem{
			ItemID:       line.Item.ItemID,
			Quantity:     line.Quantity,
			Price:        lineTotal,
			Discount:     line.Item.Discount,
			Tax:          line.Item.Tax,
			Tax1:         line.Item.Tax1,
			Tax2:         line.Item.Tax2,
			Total:        lineTotal,
			PurchaseDate: stamp,
			UserStamp:    o.user.ID,
		})
		total += lineTotal
		discountAmt += line.Item.UnitPrice*float64(line.Quantity) - lineTotal
		taxAmt += lineTotal * line.Item.Tax / 100
		tax1Amt += lineTotal * line.Item.Tax1 / 100
		tax2Amt += lineTotal * line.Item.Tax2 / 100
	}

	return models.BasketBody{
		Basket: lines,
		Header: models.BasketHeader{
			UserID:          o.user.ID,
			CompanyID:       o.company.ID,
			Date:            stamp,
			DiscountAmt:     round2(discountAmt),
			TaxAmt:          round2(taxAmt),
			Tax1Amt:         round2(tax1Amt),
			Tax2Amt:         round2(tax2Amt),
			Total:           round2(total),
			Status:          "pending",
			UserStamp:       o.user.ID,
			ShippingID:      shippingID,
			DeliveryAddress: string(addressJSON),
		},
	}, nil
}

func (o *Orchestrator) refreshWallet(ctx context.Context) error {
	wallet, err := o.gw.Wallet(ctx, o.user.ID)
	if err != nil {
		return fmt.Errorf("load wallet: %w", err)
	}
	o.mu.Lock()
	o.wallet = wallet
	o.mu.Unlock()
	return nil
}

// selectedPaymentLocked resolves the selected payment mode. Caller holds mu.
func (o *Orchestrator) selectedPaymentLocked() *models.PaymentMethod {
	for i := range o.payments {
		if o.payments[i].ID == o.selPayment {
			return &o.payments[i]
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
