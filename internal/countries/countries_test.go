package countries

import (
	"sort"
	"testing"
)

func TestLookupIgnoresCase(t *testing.T) {
	for _, in := range []string{"CA", "ca", " Ca "} {
		c, ok := Lookup(in)
		if !ok {
			t.Fatalf("Lookup(%q) not found", in)
		}
		if c.Alpha3 != "CAN" || c.Name != "Canada" {
			t.Errorf("Lookup(%q) = %+v", in, c)
		}
	}
}

func TestAlpha3(t *testing.T) {
	tests := map[string]string{
		"US": "USA",
		"GB": "GBR",
		"DE": "DEU",
		"NG": "NGA",
		"IN": "IND",
	}
	for a2, want := range tests {
		got, ok := Alpha3(a2)
		if !ok || got != want {
			t.Errorf("Alpha3(%s) = %s, %v; want %s", a2, got, ok, want)
		}
	}
	if _, ok := Alpha3("XX"); ok {
		t.Error("Alpha3 accepted an unsupported code")
	}
}

func TestAllSortedByName(t *testing.T) {
	all := All()
	if len(all) < 50 {
		t.Fatalf("destination list suspiciously small: %d", len(all))
	}
	if !sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Name < all[j].Name }) {
		t.Error("All() not sorted by name")
	}
}
