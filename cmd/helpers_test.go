package cmd

import (
	"testing"

	"github.com/Avanthi1990/sf-guardian/internal/catalog"
)

func TestParseSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input  string
		expect catalog.Size
	}{
		{"", catalog.SizeAny},
		{"any", catalog.SizeAny},
		{"Small", catalog.SizeSmall},
		{"large", catalog.SizeLarge},
		{"extra large", catalog.SizeExtraLarge},
		{"  Medium  ", catalog.SizeMedium},
	}

	for _, c := range cases {
		got, err := parseSize(c.input)
		if err != nil {
			t.Fatalf("parseSize(%q): %v", c.input, err)
		}
		if got != c.expect {
			t.Fatalf("parseSize(%q) = %v, want %v", c.input, got, c.expect)
		}
	}

	if _, err := parseSize("Gigantic"); err == nil {
		t.Fatal("expected error for unknown size")
	}
}

func TestParseProtectionNeed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input  string
		expect catalog.ProtectionNeed
	}{
		{"Low", catalog.NeedLow},
		{"medium", catalog.NeedMedium},
		{"HIGH", catalog.NeedHigh},
		{"very high", catalog.NeedVeryHigh},
	}

	for _, c := range cases {
		got, err := parseProtectionNeed(c.input)
		if err != nil {
			t.Fatalf("parseProtectionNeed(%q): %v", c.input, err)
		}
		if got != c.expect {
			t.Fatalf("parseProtectionNeed(%q) = %v, want %v", c.input, got, c.expect)
		}
	}

	if _, err := parseProtectionNeed("Extreme"); err == nil {
		t.Fatal("expected error for unknown preference")
	}
}

func TestDataSourcesDefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	src := dataSources(nil)
	if src.RentalFile != defaultRentalFile || src.OrganizationsFile != defaultOrganizationsFile {
		t.Fatalf("unexpected defaults: %+v", src)
	}

	src = dataSources(&Config{Data: &DataConfig{RentalFile: "custom.csv"}})
	if src.RentalFile != "custom.csv" {
		t.Fatalf("expected rental override, got %q", src.RentalFile)
	}
	if src.CrimeFile != defaultCrimeFile {
		t.Fatalf("expected crime default to survive, got %q", src.CrimeFile)
	}
}
