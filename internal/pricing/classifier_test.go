package pricing

import (
	"testing"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

func TestClassifyVariableValueHeuristic(t *testing.T) {
	tests := []struct {
		name         string
		item         models.CatalogItem
		wantVariable bool
	}{
		{
			name:         "bare range is a variable top-up",
			item:         rangeItem("R1", "CA", "USD", "5", "100"),
			wantVariable: true,
		},
		{
			name: "range with non-plan benefit tags stays variable",
			item: func() models.CatalogItem {
				it := rangeItem("R2", "CA", "USD", "5", "100")
				it.Benefits = []string{"Mobile", "Credits"}
				return it
			}(),
			wantVariable: true,
		},
		{
			name: "fixed price forces plan even with a range",
			item: func() models.CatalogItem {
				it := rangeItem("R3", "CA", "USD", "5", "100")
				it.Price = decp("10")
				return it
			}(),
			wantVariable: false,
		},
		{
			name: "typed benefit amount forces plan",
			item: func() models.CatalogItem {
				it := rangeItem("R4", "CA", "USD", "5", "100")
				it.DataAmountMB = decp("1024")
				return it
			}(),
			wantVariable: false,
		},
		{
			name: "validity period forces plan",
			item: func() models.CatalogItem {
				it := rangeItem("R5", "CA", "USD", "5", "100")
				it.ValidityPeriod = "P30D"
				return it
			}(),
			wantVariable: false,
		},
		{
			name: "Data benefit tag forces plan",
			item: func() models.CatalogItem {
				it := rangeItem("R6", "CA", "USD", "5", "100")
				it.Benefits = []string{"Data"}
				return it
			}(),
			wantVariable: false,
		},
		{
			name: "plan tag match is case-insensitive",
			item: func() models.CatalogItem {
				it := rangeItem("R7", "CA", "USD", "5", "100")
				it.Benefits = []string{"sms"}
				return it
			}(),
			wantVariable: false,
		},
		{
			name:         "plain fixed price is a plan",
			item:         fixedItem("F1", "CA", "USD", "10"),
			wantVariable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.item)
			if !ok {
				t.Fatalf("Classify() rejected a well-formed item")
			}
			if got.IsVariableValue != tt.wantVariable {
				t.Errorf("IsVariableValue = %v, want %v", got.IsVariableValue, tt.wantVariable)
			}
		})
	}
}

func TestClassifyMalformed(t *testing.T) {
	malformed := []models.CatalogItem{
		{SkuCode: "M1", CountryISO: "CA", CurrencyCode: "USD"},
		{SkuCode: "M2", CountryISO: "CA", CurrencyCode: "USD", MinAmount: decp("5")},
		{SkuCode: "M3", CountryISO: "CA", CurrencyCode: "USD", MaxAmount: decp("100")},
	}
	for _, item := range malformed {
		if _, ok := Classify(item); ok {
			t.Errorf("Classify(%s) accepted an item with no usable pricing shape", item.SkuCode)
		}
	}
}

func TestClassifyCostPrice(t *testing.T) {
	fixed := fixedItem("F1", "ca", "USD", "12.50")
	got, ok := Classify(fixed)
	if !ok {
		t.Fatal("Classify() rejected fixed item")
	}
	if !got.CostPrice.Equal(dec("12.50")) {
		t.Errorf("fixed cost = %s, want 12.50", got.CostPrice)
	}
	if got.CountryISO != "CA" {
		t.Errorf("country not normalized: %q", got.CountryISO)
	}

	// Both shapes present: the fixed price wins.
	both := rangeItem("B1", "CA", "USD", "5", "100")
	both.Price = decp("7.77")
	got, ok = Classify(both)
	if !ok {
		t.Fatal("Classify() rejected dual-shape item")
	}
	if !got.CostPrice.Equal(dec("7.77")) {
		t.Errorf("dual-shape cost = %s, want 7.77", got.CostPrice)
	}

	// Range only: cost starts at the minimum send value.
	rng, ok := Classify(rangeItem("R1", "CA", "USD", "5", "100"))
	if !ok {
		t.Fatal("Classify() rejected range item")
	}
	if !rng.CostPrice.Equal(dec("5")) {
		t.Errorf("range cost = %s, want 5", rng.CostPrice)
	}
}

func TestClassifyBenefit(t *testing.T) {
	item := fixedItem("F1", "CA", "USD", "10")
	item.DataAmountMB = decp("2048")
	item.AirtimeAmount = decp("10")

	got, ok := Classify(item)
	if !ok {
		t.Fatal("Classify() rejected item")
	}
	if got.BenefitType != models.BenefitData {
		t.Errorf("benefit type = %s, want data (data outranks airtime)", got.BenefitType)
	}
	if !got.BenefitAmount.Equal(dec("2048")) || got.BenefitUnit != "MB" {
		t.Errorf("benefit = %s %s, want 2048 MB", got.BenefitAmount, got.BenefitUnit)
	}

	plain := fixedItem("F2", "CA", "USD", "10")
	got, _ = Classify(plain)
	if got.BenefitType != models.BenefitAirtime || !got.BenefitAmount.Equal(dec("10")) || got.BenefitUnit != "USD" {
		t.Errorf("plain top-up benefit = %s %s %s, want airtime 10 USD", got.BenefitType, got.BenefitAmount, got.BenefitUnit)
	}
}
