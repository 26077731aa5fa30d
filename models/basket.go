package models

// BasketItem is one order line in the shape the commerce API expects on
// add_basket. Price and total carry the discounted line total rounded to
// two decimals.
type BasketItem struct {
	ID           string  `json:"iba_id,omitempty"`
	ItemID       string  `json:"iba_it_id"`
	Quantity     int     `json:"iba_qty"`
	Price        float64 `json:"iba_price"`
	Discount     float64 `json:"iba_disc"`
	Tax          float64 `json:"iba_tax"`
	Tax1         float64 `json:"iba_tax1"`
	Tax2         float64 `json:"iba_tax2"`
	Total        float64 `json:"iba_total"`
	ExpiryDate   string  `json:"iba_expirydate"`
	PurchaseDate string  `json:"iba_purchasedate"`
	UserStamp    string  `json:"iba_userstamp"`
	PaymentID    string  `json:"iba_pm_id"`
}

// BasketHeader is the order header sent on add_basket. DeliveryAddress is
// the selected address serialized as JSON, as the API expects.
type BasketHeader struct {
	ID              string  `json:"ihb_id,omitempty"`
	UserID          string  `json:"ihb_ireg_id"`
	CompanyID       string  `json:"ihb_cmp_id"`
	Date            string  `json:"ihb_date"`
	DiscountAmt     float64 `json:"ihb_discamt"`
	TaxAmt          float64 `json:"ihb_taxamt"`
	Tax1Amt         float64 `json:"ihb_tax1amt"`
	Tax2Amt         float64 `json:"ihb_tax2amt"`
	Total           float64 `json:"ihb_total"`
	Status          string  `json:"ihb_status"`
	UserStamp       string  `json:"ihb_userstamp"`
	ShippingID      string  `json:"ihb_hsh_id"`
	DeliveryAddress string  `json:"ihb_deliveryaddress"`
}

// BasketBody is the full add_basket payload: header plus lines. Built once
// at submission time and never mutated afterwards.
type BasketBody struct {
	Basket []BasketItem `json:"basket"`
	Header BasketHeader `json:"hbasket"`
}

// InCheckout is the in_checkout confirmation payload sent after a basket
// was accepted, carrying the basket id the API returned.
type InCheckout struct {
	UserID      string      `json:"ich_ireg_id"`
	CompanyID   string      `json:"ich_cmp_id"`
	BasketID    string      `json:"ich_ihb_id"`
	PaymentMode string      `json:"ich_checkoutpaymentmode"`
	Total       float64     `json:"ich_total"`
	Status      string      `json:"ich_status"`
	UserStamp   string      `json:"ich_userstamp"`
	WalletID    string      `json:"wallet_id,omitempty"`
	User        UserProfile `json:"user"`
	StoreName   string      `json:"storename"`
}

// ConfirmationEmail is the sendemail payload: the confirmed checkout form
// plus the cart lines it covered.
type ConfirmationEmail struct {
	CheckoutForm InCheckout `json:"checkoutForm"`
	Cart         []CartLine `json:"cart"`
}
