package country

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	n := New()

	tests := []struct {
		location string
		wantCode string
		wantConf Confidence
	}{
		{"Paris, FR", "FR", High},
		{"London GB (United Kingdom)", "GB", High},
		{"Remote (US)", "US", High},
		{"Austin, TX", "US", Medium},
		{"New York, NY", "US", Medium},
		{"Jersey City, NJ", "US", Medium},
		{"Jersey City", "US", Medium},
		{"St Helier, Jersey", "JE", Medium},
		{"Lebanon, PA", "US", Medium},
		{"Beirut, Lebanon", "LB", Medium},
		{"Peru, IN", "US", Medium},
		{"Birmingham, AL", "US", Medium},
		{"Birmingham, UK", "GB", Medium},
		{"Toronto, CA", "CA", Medium},
		{"Zürich", "CH", Medium},
		{"München, Bayern", "DE", Medium},
		{"Bruxelles", "BE", Medium},
		{"Tbilisi, Georgia", "GE", Medium},
		{"Atlanta, Georgia", "US", Medium},
		{"Dubai - United Arab Emirates", "AE", Medium},
		{"Relocation: Madrid or Paris", "ES", Medium},
		{"Remote, U.S.", "US", Medium},
		{"U.K.", "GB", Medium},
	}
	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			got := n.Normalize(tt.location)
			if got == nil {
				t.Fatalf("Normalize(%q) = nil, want %s", tt.location, tt.wantCode)
			}
			if got.Code != tt.wantCode || got.Confidence != tt.wantConf {
				t.Errorf("Normalize(%q) = %+v, want %s/%s", tt.location, *got, tt.wantCode, tt.wantConf)
			}
			if got.Name != canonical[got.Code] {
				t.Errorf("Name = %q, want canonical %q", got.Name, canonical[got.Code])
			}
		})
	}
}

func TestNormalize_NoSignal(t *testing.T) {
	n := New()

	for _, loc := range []string{"", "   ", "Remote", "Remote - PA", "Hybrid, MD", "12345", "Georgia"} {
		if got := n.Normalize(loc); got != nil {
			t.Errorf("Normalize(%q) = %+v, want nil", loc, *got)
		}
	}
}

func TestNormalize_CanonicalNames(t *testing.T) {
	n := New()

	got := n.Normalize("Austin, TX")
	if got == nil || got.Name != "United States" {
		t.Fatalf("Normalize = %+v, want United States", got)
	}
	got = n.Normalize("London, United Kingdom")
	if got == nil || got.Name != "United Kingdom" {
		t.Fatalf("Normalize = %+v, want United Kingdom", got)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	n := New()
	first := n.Normalize("Relocation: Madrid or Paris")
	for i := 0; i < 10; i++ {
		if got := n.Normalize("Relocation: Madrid or Paris"); *got != *first {
			t.Fatalf("run %d: %+v, want %+v", i, *got, *first)
		}
	}
}

func TestNoStateCollidingCodeIsExplicit(t *testing.T) {
	for code := range usStateCodes {
		if got, ok := explicitCode("Remote - " + code); ok {
			t.Errorf("explicitCode accepted state abbreviation %s as %s", code, got)
		}
	}
}

func TestAliasesPointAtCanonicalCodes(t *testing.T) {
	for alias, code := range aliases {
		if _, ok := canonical[code]; !ok {
			t.Errorf("alias %q maps to unknown code %q", alias, code)
		}
	}
}

const cityCSV = `name,country,population
Leuven,Belgium,101000
Smallville,US,50
Bad Town,Atlantis,100000
Sophia Antipolis,FR,8000
`

func TestReadCities(t *testing.T) {
	cities, err := ReadCities(strings.NewReader(cityCSV), 1000)
	if err != nil {
		t.Fatalf("ReadCities: %v", err)
	}
	if cities.Len() != 2 {
		t.Fatalf("Len = %d, want 2", cities.Len())
	}

	n := New(WithCities(cities))
	got := n.Normalize("Leuven Campus")
	if got == nil || got.Code != "BE" || got.Confidence != Low {
		t.Errorf("Normalize(Leuven Campus) = %+v, want BE/low", got)
	}
	got = n.Normalize("Sophia Antipolis")
	if got == nil || got.Code != "FR" {
		t.Errorf("Normalize(Sophia Antipolis) = %+v, want FR", got)
	}
	if got := n.Normalize("Smallville"); got != nil {
		t.Errorf("city below population cut matched: %+v", *got)
	}
}

func TestLoadCities_MissingFile(t *testing.T) {
	_, err := LoadCities(filepath.Join(t.TempDir(), "cities.csv"), 0)
	if err == nil {
		t.Fatal("expected error for missing city file")
	}
}

func TestReadCities_Empty(t *testing.T) {
	if _, err := ReadCities(strings.NewReader(""), 0); err == nil {
		t.Fatal("expected error for empty city file")
	}
}
