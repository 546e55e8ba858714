package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/TopsellHQ/topsell_api/internal/pricing"
	"github.com/TopsellHQ/topsell_api/internal/utils"
)

func TestSandboxCatalogFixtures(t *testing.T) {
	p := NewSandboxCatalogProvider()

	items, err := p.FetchCatalog(context.Background(), "ca")
	if err != nil {
		t.Fatalf("FetchCatalog: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("fixture catalog is empty")
	}

	variable := 0
	for _, item := range items {
		if item.CountryISO != "CA" {
			t.Errorf("item %s has country %q, want CA", item.SkuCode, item.CountryISO)
		}
		if !strings.HasPrefix(item.SkuCode, "sb-ca-") {
			t.Errorf("item %s is not namespaced for CA", item.SkuCode)
		}
		product, ok := pricing.Classify(item)
		if !ok {
			t.Errorf("fixture item %s failed classification", item.SkuCode)
			continue
		}
		if product.IsVariableValue {
			variable++
		}
	}

	// Exactly the open range item classifies as a variable top-up.
	if variable != 1 {
		t.Errorf("got %d variable-value fixtures, want 1", variable)
	}
}

func TestSandboxCatalogIsDeterministic(t *testing.T) {
	p := NewSandboxCatalogProvider()

	first, err := p.FetchCatalog(context.Background(), "NG")
	if err != nil {
		t.Fatalf("FetchCatalog: %v", err)
	}
	second, err := p.FetchCatalog(context.Background(), "NG")
	if err != nil {
		t.Fatalf("FetchCatalog: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("catalog size changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].SkuCode != second[i].SkuCode {
			t.Errorf("item %d changed SKU between calls: %s vs %s", i, first[i].SkuCode, second[i].SkuCode)
		}
	}
}

func TestSandboxCatalogRejectsUnsupportedCountry(t *testing.T) {
	p := NewSandboxCatalogProvider()

	if _, err := p.FetchCatalog(context.Background(), "ZZ"); !errors.Is(err, utils.ErrInvalidCountry) {
		t.Errorf("FetchCatalog(ZZ) error = %v, want %v", err, utils.ErrInvalidCountry)
	}
}
