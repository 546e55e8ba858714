package pricing

import (
	"testing"
	"time"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

func TestRegistrySourcePicksHighestValueForCountry(t *testing.T) {
	// Scenario: a 20% discount not applicable to the destination and a
	// 10% one that is; the 10% one must be used.
	src := RegistrySource{Discounts: []models.Discount{
		pctDiscount(1, "20", "US"),
		pctDiscount(2, "10"),
	}}

	app := src.Resolve(dec("11.00"), "CA", testNow)
	if app == nil {
		t.Fatal("expected an applied discount")
	}
	if app.Summary.ID != 2 {
		t.Fatalf("applied discount id = %d, want 2", app.Summary.ID)
	}
	if !app.Amount.Equal(dec("1.1")) {
		t.Errorf("amount = %s, want 1.1", app.Amount)
	}
}

func TestRegistrySourceValueOrdering(t *testing.T) {
	src := RegistrySource{Discounts: []models.Discount{
		pctDiscount(1, "5"),
		pctDiscount(2, "15"),
		pctDiscount(3, "10"),
	}}

	app := src.Resolve(dec("100"), "CA", testNow)
	if app == nil || app.Summary.ID != 2 {
		t.Fatalf("want the 15%% discount to win, got %+v", app)
	}
}

func TestRegistrySourceSkipsInvalid(t *testing.T) {
	expired := pctDiscount(1, "50")
	expired.EndDate = timep(testNow.Add(-time.Hour))

	notStarted := pctDiscount(2, "40")
	notStarted.StartDate = timep(testNow.Add(time.Hour))

	exhausted := pctDiscount(3, "30")
	exhausted.UsageLimit = intp(100)
	exhausted.UsageCount = 100

	disabled := pctDiscount(4, "25")
	disabled.IsActive = false

	ok := pctDiscount(5, "10")

	src := RegistrySource{Discounts: []models.Discount{expired, notStarted, exhausted, disabled, ok}}
	app := src.Resolve(dec("100"), "CA", testNow)
	if app == nil || app.Summary.ID != 5 {
		t.Fatalf("only the valid discount should survive, got %+v", app)
	}
}

func TestRegistrySourceWindowBoundsInclusive(t *testing.T) {
	d := pctDiscount(1, "10")
	d.StartDate = timep(testNow)
	d.EndDate = timep(testNow)

	src := RegistrySource{Discounts: []models.Discount{d}}
	if app := src.Resolve(dec("100"), "CA", testNow); app == nil {
		t.Fatal("window bounds are inclusive; discount at its exact bounds must apply")
	}
}

func TestRegistrySourceMinPurchaseGate(t *testing.T) {
	// Scenario: fixed 2.50 discount with a 50.00 minimum purchase does
	// not touch an 11.00 base.
	d := models.Discount{
		ID:                1,
		Name:              "big spender",
		Type:              models.DiscountFixed,
		Value:             dec("2.50"),
		IsActive:          true,
		MinPurchaseAmount: decp("50.00"),
	}
	src := RegistrySource{Discounts: []models.Discount{d}}

	if app := src.Resolve(dec("11.00"), "CA", testNow); app != nil {
		t.Fatalf("discount below min purchase must not apply, got %+v", app)
	}
	if app := src.Resolve(dec("50.00"), "CA", testNow); app == nil {
		t.Fatal("min purchase is inclusive; base 50.00 must qualify")
	}
}

func TestRegistrySourceNoFallThroughPastChosen(t *testing.T) {
	// Selection is by value and country; once chosen, a failed minimum
	// purchase means no discount rather than trying the runner-up.
	big := pctDiscount(1, "20")
	big.MinPurchaseAmount = decp("50.00")
	small := pctDiscount(2, "10")

	src := RegistrySource{Discounts: []models.Discount{big, small}}
	if app := src.Resolve(dec("11.00"), "CA", testNow); app != nil {
		t.Fatalf("expected no discount when the chosen record fails its gate, got %+v", app)
	}
}

func TestRegistrySourceMaxDiscountCap(t *testing.T) {
	d := pctDiscount(1, "50")
	d.MaxDiscountAmount = decp("5.00")

	src := RegistrySource{Discounts: []models.Discount{d}}
	app := src.Resolve(dec("100"), "CA", testNow)
	if app == nil {
		t.Fatal("expected an applied discount")
	}
	if !app.Amount.Equal(dec("5.00")) {
		t.Errorf("amount = %s, want capped 5.00", app.Amount)
	}
}

func TestSettingsSource(t *testing.T) {
	cfg := &models.DiscountConfig{
		Enabled:             true,
		Name:                "storefront promo",
		Type:                models.DiscountPercentage,
		DiscountValue:       dec("10"),
		MinPurchaseAmount:   decp("5.00"),
		ApplicableCountries: []string{"CA"},
	}
	src := SettingsSource{Config: cfg}

	app := src.Resolve(dec("20.00"), "ca", testNow)
	if app == nil {
		t.Fatal("eligible settings discount did not apply")
	}
	if !app.Amount.Equal(dec("2")) {
		t.Errorf("amount = %s, want 2", app.Amount)
	}
	if app.Summary.ID != 0 {
		t.Errorf("settings discounts carry no registry id, got %d", app.Summary.ID)
	}

	if app := src.Resolve(dec("20.00"), "US", testNow); app != nil {
		t.Errorf("country-scoped settings discount applied to wrong country: %+v", app)
	}
	if app := src.Resolve(dec("4.99"), "CA", testNow); app != nil {
		t.Errorf("settings discount ignored min purchase: %+v", app)
	}

	cfg.Enabled = false
	if app := src.Resolve(dec("20.00"), "CA", testNow); app != nil {
		t.Errorf("disabled settings discount applied: %+v", app)
	}
}

func TestSettingsSourceWindow(t *testing.T) {
	cfg := &models.DiscountConfig{
		Enabled:       true,
		Type:          models.DiscountFixed,
		DiscountValue: dec("1"),
		StartDate:     timep(testNow.Add(time.Hour)),
	}
	if app := (SettingsSource{Config: cfg}).Resolve(dec("10"), "CA", testNow); app != nil {
		t.Errorf("future-dated settings discount applied: %+v", app)
	}
}

func TestSelectSourcePathsAreMutuallyExclusive(t *testing.T) {
	fallback := &models.DiscountConfig{Enabled: true, Type: models.DiscountPercentage, DiscountValue: dec("10")}

	// Any registry record, even an invalid one, claims the flow.
	disabled := pctDiscount(1, "20")
	disabled.IsActive = false

	src := SelectSource([]models.Discount{disabled}, fallback)
	if _, ok := src.(RegistrySource); !ok {
		t.Fatalf("registry records present, want RegistrySource, got %T", src)
	}
	if app := src.Resolve(dec("100"), "CA", testNow); app != nil {
		t.Errorf("invalid registry record must not fall back to settings, got %+v", app)
	}

	src = SelectSource(nil, fallback)
	if _, ok := src.(SettingsSource); !ok {
		t.Fatalf("no registry records, want SettingsSource, got %T", src)
	}

	src = SelectSource(nil, &models.DiscountConfig{}, nil)
	if _, ok := src.(NoDiscount); !ok {
		t.Fatalf("nothing configured, want NoDiscount, got %T", src)
	}
}
