package upstream

import (
	"context"
	"net/url"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// Login authenticates a shopper against the commerce API and returns the
// stored profile.
func (c *Client) Login(ctx context.Context, username, password string) (*models.UserProfile, error) {
	env, err := c.post(ctx, "/in_online/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	if env.Success != 1 {
		msg := env.dataMessage()
		if msg == "" {
			msg = "invalid credentials"
		}
		return nil, &Error{Status: 401, Path: "/in_online/login", Message: msg}
	}
	var profile models.UserProfile
	if err := decodeData(env, "/in_online/login", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Register creates a shopper account and returns the created profile.
func (c *Client) Register(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	env, err := c.post(ctx, "/in_online/register", map[string]any{"data": profile})
	if err != nil {
		return nil, err
	}
	if env.Success != 1 {
		msg := env.dataMessage()
		if msg == "" {
			msg = "registration rejected"
		}
		return nil, &Error{Status: 400, Path: "/in_online/register", Message: msg}
	}
	var created models.UserProfile
	if err := decodeData(env, "/in_online/register", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeliveryAddresses lists the saved delivery addresses of a shopper.
func (c *Client) DeliveryAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	env, err := c.get(ctx, "/in_online/in_deliveryaddress", url.Values{"da_ireg_id": {userID}})
	if err != nil {
		return nil, err
	}
	var addresses []models.Address
	if err := decodeData(env, "/in_online/in_deliveryaddress", &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// SaveAddress stores a new delivery address for a shopper.
func (c *Client) SaveAddress(ctx context.Context, address models.Address) error {
	env, err := c.post(ctx, "/in_online/addin_deliveryaddress", map[string]any{"data": address})
	if err != nil {
		return err
	}
	if env.Success != 1 {
		return &Error{Status: 400, Path: "/in_online/addin_deliveryaddress", Message: env.dataMessage()}
	}
	return nil
}

// DeleteAddress removes a saved delivery address by id.
func (c *Client) DeleteAddress(ctx context.Context, addressID string) error {
	env, err := c.get(ctx, "/in_online/in_deletedeliveryaddress", url.Values{"da_id": {addressID}})
	if err != nil {
		return err
	}
	if env.Success != 1 {
		return &Error{Status: 400, Path: "/in_online/in_deletedeliveryaddress", Message: env.dataMessage()}
	}
	return nil
}

// Wallet returns the shopper's wallet balance.
func (c *Client) Wallet(ctx context.Context, userID string) (*models.Wallet, error) {
	env, err := c.get(ctx, "/in_online/in_wallet", url.Values{"iwa_ireg_id": {userID}})
	if err != nil {
		return nil, err
	}
	var wallets []models.Wallet
	if err := decodeData(env, "/in_online/in_wallet", &wallets); err != nil {
		return nil, err
	}
	if len(wallets) == 0 {
		return &models.Wallet{UserID: userID}, nil
	}
	return &wallets[0], nil
}
