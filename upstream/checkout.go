package upstream

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// ShippingMethods lists the delivery options a company offers.
func (c *Client) ShippingMethods(ctx context.Context, companyID string) ([]models.ShippingMethod, error) {
	env, err := c.get(ctx, "/in_online/shippingMethod", url.Values{"cmp_id": {companyID}})
	if err != nil {
		return nil, err
	}
	var methods []models.ShippingMethod
	if err := decodeData(env, "/in_online/shippingMethod", &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

// PaymentMethods lists the payment modes a company accepts.
func (c *Client) PaymentMethods(ctx context.Context, companyID string) ([]models.PaymentMethod, error) {
	env, err := c.get(ctx, "/in_online/paymentMethods", url.Values{"cmp_id": {companyID}})
	if err != nil {
		return nil, err
	}
	var methods []models.PaymentMethod
	if err := decodeData(env, "/in_online/paymentMethods", &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

// CheckVoucher validates a voucher code for a user. A voucher is accepted
// only when the API reports success and result 1; anything else is a clean
// rejection, not an error.
func (c *Client) CheckVoucher(ctx context.Context, companyID, code, userID string) (bool, error) {
	env, err := c.post(ctx, "/in_voucher/check_voucher", map[string]string{
		"cmp_id":   companyID,
		"ivo_code": code,
		"user":     userID,
	})
	if err != nil {
		return false, err
	}
	if env.Success != 1 {
		return false, nil
	}
	var result struct {
		Result int `json:"result"`
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &result); err != nil {
			return false, nil
		}
	}
	return result.Result == 1, nil
}

// AddBasket submits a basket and returns the id the API assigned to its
// header.
func (c *Client) AddBasket(ctx context.Context, body models.BasketBody) (string, error) {
	env, err := c.post(ctx, "/in_online/add_basket", body)
	if err != nil {
		return "", err
	}
	if env.Success != 1 {
		msg := env.dataMessage()
		if msg == "" {
			msg = "basket rejected"
		}
		return "", &Error{Status: 400, Path: "/in_online/add_basket", Message: msg}
	}
	var res struct {
		HBasket struct {
			ID string `json:"ihb_id"`
		} `json:"hbasket"`
	}
	if len(env.Res) == 0 || json.Unmarshal(env.Res, &res) != nil || res.HBasket.ID == "" {
		return "", &Error{Status: 502, Path: "/in_online/add_basket", Message: "basket id missing from reply"}
	}
	return res.HBasket.ID, nil
}

// Checkout records the payment confirmation for an accepted basket.
func (c *Client) Checkout(ctx context.Context, form models.InCheckout) error {
	env, err := c.post(ctx, "/in_online/in_checkout", form)
	if err != nil {
		return err
	}
	if env.Success != 1 {
		return &Error{Status: 400, Path: "/in_online/in_checkout", Message: env.dataMessage()}
	}
	return nil
}

// SendConfirmationEmail asks the API's mailer to send the order
// confirmation. Failures here never void the order, callers log and move on.
func (c *Client) SendConfirmationEmail(ctx context.Context, email models.ConfirmationEmail) error {
	env, err := c.post(ctx, "/nodemailer/sendemail", email)
	if err != nil {
		return err
	}
	if env.Success != 1 {
		return &Error{Status: 502, Path: "/nodemailer/sendemail", Message: env.dataMessage()}
	}
	return nil
}
