package models

import "strings"

// ShippingMethod is one delivery option offered by a company.
type ShippingMethod struct {
	ID        string `json:"hsh_id"`
	CompanyID string `json:"hsh_cmp_id"`
	Name      string `json:"hsh_name"`
	Note      string `json:"hsh_note,omitempty"`
}

// PaymentMethod is one payment mode offered by a company.
type PaymentMethod struct {
	ID       string `json:"icp_id"`
	Company  string `json:"icp_cmp_id"`
	ModeName string `json:"icp_paymentmodename"`
	Photo    string `json:"icp_photo,omitempty"`
	Text     string `json:"icp_text"`
	Link     string `json:"icp_link,omitempty"`
	Inactive bool   `json:"icp_inactive"`
}

// IsWallet reports whether this mode pays from the user's stored balance.
func (p PaymentMethod) IsWallet() bool {
	return strings.EqualFold(p.ModeName, "wallet")
}

// Wallet is a per-user stored-value balance.
type Wallet struct {
	ID        string  `json:"iwal_id"`
	Amount    float64 `json:"iwal_amt"`
	CompanyID string  `json:"iwal_cmp_id,omitempty"`
	Currency  string  `json:"iwal_currency"`
	UserID    string  `json:"iwal_ireg_id"`
	Timestamp string  `json:"iwal_timestamp,omitempty"`
	UserStamp string  `json:"iwal_userstamp,omitempty"`
}
