package pricing

import (
	"testing"

	"github.com/TopsellHQ/topsell_api/internal/models"
)

func TestResolveMarkupRulePriority(t *testing.T) {
	// Scenario: a 20% rule at priority 5 and a 5% rule at priority 10
	// both match; the higher priority must win.
	rules := []models.PricingRule{
		pctRule(1, 5, "20"),
		pctRule(2, 10, "5"),
	}
	got := ResolveMarkupRule(rules, "CA")
	if got == nil || got.ID != 2 {
		t.Fatalf("ResolveMarkupRule() = %+v, want rule 2 (priority 10)", got)
	}
}

func TestResolveMarkupRuleStableTieBreak(t *testing.T) {
	rules := []models.PricingRule{
		pctRule(7, 10, "8"),
		pctRule(8, 10, "12"),
	}
	got := ResolveMarkupRule(rules, "CA")
	if got == nil || got.ID != 7 {
		t.Fatalf("equal priorities must keep stored order, got %+v", got)
	}
}

func TestResolveMarkupRuleCountryScope(t *testing.T) {
	rules := []models.PricingRule{
		pctRule(1, 10, "15", "US"),
		pctRule(2, 5, "10", "CA"),
		pctRule(3, 1, "5"),
	}

	if got := ResolveMarkupRule(rules, "CA"); got == nil || got.ID != 2 {
		t.Errorf("CA should skip the US-scoped rule, got %+v", got)
	}
	if got := ResolveMarkupRule(rules, "GB"); got == nil || got.ID != 3 {
		t.Errorf("GB should fall through to the global rule, got %+v", got)
	}
	if got := ResolveMarkupRule(rules, "us"); got == nil || got.ID != 1 {
		t.Errorf("country match should ignore case, got %+v", got)
	}
}

func TestResolveMarkupRuleSkipsInactive(t *testing.T) {
	inactive := pctRule(1, 100, "50")
	inactive.IsActive = false
	rules := []models.PricingRule{inactive, pctRule(2, 1, "5")}

	if got := ResolveMarkupRule(rules, "CA"); got == nil || got.ID != 2 {
		t.Fatalf("inactive rules must not win, got %+v", got)
	}
}

func TestResolveMarkupRuleNoMatch(t *testing.T) {
	rules := []models.PricingRule{pctRule(1, 10, "15", "US")}
	if got := ResolveMarkupRule(rules, "CA"); got != nil {
		t.Fatalf("expected nil for no matching rule, got %+v", got)
	}
	if got := ResolveMarkupRule(nil, "CA"); got != nil {
		t.Fatalf("expected nil for empty rule set, got %+v", got)
	}
}

func TestMarkupAmount(t *testing.T) {
	pct := pctRule(1, 1, "10")
	if got := MarkupAmount(&pct, dec("10.00")); !got.Equal(dec("1")) {
		t.Errorf("10%% of 10.00 = %s, want 1", got)
	}

	fixed := models.PricingRule{IsActive: true, MarkupType: models.MarkupFixed, MarkupValue: dec("2.50")}
	if got := MarkupAmount(&fixed, dec("10.00")); !got.Equal(dec("2.50")) {
		t.Errorf("fixed markup = %s, want 2.50", got)
	}

	if got := MarkupAmount(nil, dec("10.00")); !got.IsZero() {
		t.Errorf("nil rule markup = %s, want 0", got)
	}
}
