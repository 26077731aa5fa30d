package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client())
}

func TestItemsByFamilyQueryAndPaging(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/in_online/onlineitemsByFamily", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "20", q.Get("items_per_page"))
		assert.Equal(t, "3", q.Get("page_number"))
		assert.Equal(t, "cmp-1", q.Get("cmp_id"))
		assert.Equal(t, "'acme,globex'", q.Get("br_name"))
		assert.Equal(t, "shoes", q.Get("fa_name"))
		assert.Equal(t, "run", q.Get("searchTerms"))
		w.Write([]byte(`{"data":[{"ioi_id":"i1","ioi_name":"Runner","ioi_unitprice":49.9}],"count":7}`))
	})

	items, totalPages, err := client.ItemsByFamily(context.Background(), "cmp-1", "shoes", []string{"acme", "globex"}, "run", 3, 20)
	require.NoError(t, err)
	assert.Equal(t, 7, totalPages)
	require.Len(t, items, 1)
	assert.Equal(t, "i1", items[0].ID)
	assert.Equal(t, 49.9, items[0].UnitPrice)
}

func TestItemsByFamilyEmptyBrandFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "", r.URL.Query().Get("br_name"))
		w.Write([]byte(`{"data":[],"count":0}`))
	})

	items, totalPages, err := client.ItemsByFamily(context.Background(), "cmp-1", "shoes", nil, "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, totalPages)
	assert.Empty(t, items)
}

func TestCompanyByNameTakesFirstMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "demo-store", r.URL.Query().Get("storename"))
		w.Write([]byte(`{"data":[{"cmp_id":"c1","cmp_name":"Demo"},{"cmp_id":"c2","cmp_name":"Other"}]}`))
	})

	company, err := client.CompanyByName(context.Background(), "demo-store")
	require.NoError(t, err)
	assert.Equal(t, "c1", company.ID)
}

func TestCompanyByNameNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := client.CompanyByName(context.Background(), "ghost")
	var upErr *Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, 404, upErr.Status)
}

func TestMalformedDataIsTypedDecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"not":"a list"}}`))
	})

	_, err := client.Families(context.Background(), "cmp-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode /in_online/families response")
}

func TestHTTPErrorCarriesUpstreamMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database down"}`))
	})

	_, err := client.Brands(context.Background(), "cmp-1")
	var upErr *Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusInternalServerError, upErr.Status)
	assert.Equal(t, "database down", upErr.Message)
}

func TestLoginSuccessFlagVariants(t *testing.T) {
	for _, flag := range []string{`1`, `"1"`, `true`} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":` + flag + `,"data":{"ireg_id":"u1","ireg_email":"a@b.c"}}`))
		})
		profile, err := client.Login(context.Background(), "a@b.c", "pw")
		require.NoError(t, err, "success flag %s", flag)
		assert.Equal(t, "u1", profile.ID)
	}
}

func TestLoginRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":0,"data":{"message":"wrong password"}}`))
	})

	_, err := client.Login(context.Background(), "a@b.c", "nope")
	var upErr *Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "wrong password", upErr.Message)
}

func TestCheckVoucher(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		valid bool
	}{
		{"accepted", `{"success":1,"data":{"result":1}}`, true},
		{"known but unusable", `{"success":1,"data":{"result":0}}`, false},
		{"unknown code", `{"success":0,"data":{"message":"no such voucher"}}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/in_voucher/check_voucher", r.URL.Path)
				w.Write([]byte(tc.body))
			})
			valid, err := client.CheckVoucher(context.Background(), "cmp-1", "SAVE10", "u1")
			require.NoError(t, err)
			assert.Equal(t, tc.valid, valid)
		})
	}
}

func TestAddBasketReturnsHeaderID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":1,"res":{"hbasket":{"ihb_id":"bk-42"}}}`))
	})

	id, err := client.AddBasket(context.Background(), models.BasketBody{})
	require.NoError(t, err)
	assert.Equal(t, "bk-42", id)
}

func TestAddBasketMissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":1,"res":{}}`))
	})

	_, err := client.AddBasket(context.Background(), models.BasketBody{})
	var upErr *Error
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, 502, upErr.Status)
}

func TestWalletDefaultsToZeroBalance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "u1", r.URL.Query().Get("iwa_ireg_id"))
		w.Write([]byte(`{"data":[]}`))
	})

	wallet, err := client.Wallet(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", wallet.UserID)
	assert.Zero(t, wallet.Amount)
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Families(ctx, "cmp-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
