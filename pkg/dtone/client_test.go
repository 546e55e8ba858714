package dtone

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

const fixedProductJSON = `{
	"id": 7231,
	"name": "Bell 10 CAD Top-up",
	"type": "FIXED_VALUE_RECHARGE",
	"operator": {"id": 1596, "name": "Bell Canada", "country": {"name": "Canada", "iso_code": "CAN"}},
	"benefits": [{"type": "CREDITS", "unit": "CAD", "amount": {"base": 10, "promotion_bonus": 0, "total_including_tax": 10}}],
	"validity": null,
	"source": {"amount": 7.5, "unit": "USD"},
	"destination": {"amount": 10, "unit": "CAD"},
	"prices": {"wholesale": {"amount": 7.4, "fee": 0.1, "unit": "USD"}, "retail": {"amount": 7.9, "unit": "USD"}}
}`

func TestGetProductsPaginatesAndAuthenticates(t *testing.T) {
	var pagesServed []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "key" || pass != "secret" {
			t.Errorf("missing or wrong basic auth: %q %q", user, pass)
		}
		if got := r.URL.Query().Get("country_iso_code"); got != "CAN" {
			t.Errorf("country_iso_code = %q, want CAN", got)
		}

		page := r.URL.Query().Get("page")
		pagesServed = append(pagesServed, page)
		w.Header().Set("Content-Type", "application/json")
		if page == "1" {
			// A full page signals the client to fetch the next one.
			fmt.Fprintf(w, "[%s,%s]", fixedProductJSON, fixedProductJSON)
			return
		}
		fmt.Fprintf(w, "[%s]", fixedProductJSON)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "secret")
	products, err := c.GetProducts(context.Background(), "CAN", 2)
	if err != nil {
		t.Fatalf("GetProducts() error: %v", err)
	}

	if len(products) != 3 {
		t.Errorf("got %d products, want 3 across two pages", len(products))
	}
	if len(pagesServed) != 2 || pagesServed[0] != "1" || pagesServed[1] != "2" {
		t.Errorf("pages served = %v, want [1 2]", pagesServed)
	}

	p := products[0]
	if p.Type != ProductFixedValueRecharge {
		t.Errorf("type = %s", p.Type)
	}
	if p.Operator.Country.ISOCode != "CAN" {
		t.Errorf("operator country = %s", p.Operator.Country.ISOCode)
	}
	if p.Source.Amount == nil || !p.Source.Amount.Equal(decimal.NewFromFloat(7.5)) {
		t.Errorf("source amount = %v, want 7.5", p.Source.Amount)
	}
	if len(p.Benefits) != 1 || p.Benefits[0].Type != BenefitCredits {
		t.Errorf("benefits = %+v", p.Benefits)
	}
}

func TestDoRequestSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"code": 1000401, "message": "Invalid credentials"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad", "creds")
	if _, err := c.GetBalances(context.Background()); err == nil {
		t.Fatal("expected an error for a 401 response")
	}
}

func TestGetBalances(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/balances" {
			t.Errorf("path = %s, want /balances", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"available": 1250.55, "credit_limit": 0, "holding": 10, "unit": "USD", "unit_type": "CURRENCY"}]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "secret")
	balances, err := c.GetBalances(context.Background())
	if err != nil {
		t.Fatalf("GetBalances() error: %v", err)
	}
	if len(balances) != 1 || !balances[0].Available.Equal(decimal.NewFromFloat(1250.55)) {
		t.Errorf("balances = %+v", balances)
	}
}
