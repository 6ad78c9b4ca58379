package classify

import (
	"strings"
	"sync"
	"testing"
)

func defaultClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	return c
}

func TestClassify_Titles(t *testing.T) {
	c := defaultClassifier(t)

	tests := []struct {
		title string
		want  string
	}{
		{"Global Markets Summer Analyst Intern – FICC", MarketsSales},
		{"Sales & Trading Summer Internship", MarketsSales},
		{"Global Markets Rates Summer Analyst", MarketsSales},
		{"Structured Products Structurer", MarketsStructuring},
		{"Trade Support Analyst", OpsMarketsSupport},
		{"Trade Documentation Specialist", OpsMiddleOffice},
		{"Software Engineer", ITSoftware},
		{"Risk Analytics Associate", DataQuant},
		{"Compliance Analyst", Compliance},
		{"Data Scientist", DataScience},
		{"Conseiller(e) de clientèle", RetailBranch},
		{"Banquero/a Patrimonial", WealthManagement},
		{"Private Banker", WealthManagement},
		{"FX Trader", MarketsTrading},
		{"Treasury Analyst", Treasury},
		{"Real Estate Analyst", RealEstate},
		{"Chargé(e) d'affaires entreprises", CorporateBanking},
		{"Equity Research Analyst", MarketsResearch},
		{"Call Center Agent", RetailBranch},
		{"M&A Analyst", IBMergersAcquisitions},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := c.Classify(tt.title); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestClassify_ManualOverrides(t *testing.T) {
	c := defaultClassifier(t)

	for _, title := range []string{
		"Global Markets Executive Assistant",
		"Global Markets EA",
		"Executive Assistant to Head of Global Markets",
	} {
		if got := c.Classify(title); got != AdminAssistant {
			t.Errorf("Classify(%q) = %q, want %q", title, got, AdminAssistant)
		}
	}
}

func TestClassify_MarketsGuards(t *testing.T) {
	c := defaultClassifier(t)

	tests := []struct {
		title string
		want  string
	}{
		{"Global Markets Risk Analyst Intern", RiskMarket},
		{"Global Markets IT Graduate", ITEngineering},
		{"FICC Graduate Programme Technology", ITEngineering},
		{"Audit Intern Global Markets", InternalAudit},
		{"Internal Audit Global Markets Intern", InternalAudit},
		{"Global Markets Treasury Summer Analyst", Treasury},
		{"Global Markets Data Engineer Intern", DataQuant},
		{"Global Markets Support Intern", ITSupport},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := c.Classify(tt.title)
			if got == MarketsSales {
				t.Fatalf("Classify(%q) = %q, guard term must keep it out of sales", tt.title, got)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestClassify_GuardWindowFollowsMatch(t *testing.T) {
	c := defaultClassifier(t)
	prefix := strings.Repeat("x", 130) + " "

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"guard after long prefix", prefix + "Global Markets Risk Intern", RiskMarket},
		{"guard after summer analyst", prefix + "Summer Analyst Global Markets - Market Risk", RiskMarket},
		{"prefix of 119", strings.Repeat("x", 119) + " Global Markets Summer Analyst Risk", RiskMarket},
		{"guard before match", prefix + "Audit - Global Markets Intern", InternalAudit},
		{"guard far before match", "Risk " + prefix + "Global Markets Summer Analyst", MarketsSales},
		{"guard outside window", "Global Markets Summer Analyst Intern " + prefix + "risk", MarketsSales},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.title); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestClassify_GoToMarketIsNotSoftware(t *testing.T) {
	c := defaultClassifier(t)

	if got := c.Classify("Go To Market Lead"); got != MarketingComms {
		t.Errorf("Classify(Go To Market Lead) = %q, want %q", got, MarketingComms)
	}
	for _, title := range []string{"Golang Engineer", "Go Developer"} {
		if got := c.Classify(title); got != ITSoftware {
			t.Errorf("Classify(%q) = %q, want %q", title, got, ITSoftware)
		}
	}
}

func TestClassify_Defaults(t *testing.T) {
	c := defaultClassifier(t)

	for _, title := range []string{"", "   ", "123 456", "日本語のタイトル"} {
		if got := c.Classify(title); got != Other {
			t.Errorf("Classify(%q) = %q, want %q", title, got, Other)
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := defaultClassifier(t)
	title := "Global Markets Summer Analyst Intern – FICC"
	want := c.Classify(title)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if got := c.Classify(title); got != want {
					t.Errorf("Classify(%q) = %q on repeat, want %q", title, got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestClassifyWithExplanation_AgreesWithClassify(t *testing.T) {
	c := defaultClassifier(t)

	for _, title := range []string{
		"Global Markets Summer Analyst Intern – FICC",
		"Global Markets Risk Analyst Intern",
		"Software Engineer",
		"Private Banker",
		"",
	} {
		exp := c.ClassifyWithExplanation(title)
		if exp.Category != c.Classify(title) {
			t.Errorf("%q: explanation category %q, Classify %q", title, exp.Category, c.Classify(title))
		}
		if title != "" && exp.Pattern == "" {
			t.Errorf("%q: explanation has no pattern", title)
		}
	}

	exp := c.ClassifyWithExplanation("Global Markets Risk Analyst Intern")
	if exp.Tag != "guard risk" {
		t.Errorf("Tag = %q, want %q", exp.Tag, "guard risk")
	}
}

func TestNew_OverridesWin(t *testing.T) {
	c, err := New(
		[]Rule{{Pattern: `\banalyst\b`, Category: "Override"}},
		[]Rule{{Pattern: `\bdata\b`, Category: "Priority"}},
		[]Rule{{Pattern: `\banalyst\b`, Category: "Base"}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Classify("Data Analyst"); got != "Override" {
		t.Errorf("Classify = %q, want Override", got)
	}
	if got := c.Classify("Data Engineer"); got != "Priority" {
		t.Errorf("Classify = %q, want Priority", got)
	}
}

func TestNew_DuplicatePatternKeepsFirstSlotLastCategory(t *testing.T) {
	c, err := New(nil,
		[]Rule{
			{Pattern: `\brisk\b`, Category: "First"},
			{Pattern: `\banalyst\b`, Category: "Analyst"},
		},
		[]Rule{{Pattern: `\brisk\b`, Category: "Last", Tag: "risk"}},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	// risk still precedes analyst but carries the later category.
	exp := c.ClassifyWithExplanation("Risk Analyst")
	if exp.Category != "Last" || exp.Tag != "risk" {
		t.Errorf("explanation = %+v, want Last/risk", exp)
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(nil, nil, []Rule{{Pattern: `x`, Category: ""}}); err == nil {
		t.Error("expected error for empty category")
	}
	if _, err := New(nil, nil, []Rule{{Pattern: `(unclosed`, Category: "X"}}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestDefaultRules_ReturnsCopies(t *testing.T) {
	overrides, _, _ := DefaultRules()
	overrides[0].Category = "tampered"

	again, _, _ := DefaultRules()
	if again[0].Category == "tampered" {
		t.Error("DefaultRules shares its backing tables")
	}
}

func TestExplanationKey_Truncates(t *testing.T) {
	key := explanationKey("", strings.Repeat("a", 100))
	if n := len([]rune(key)); n != maxExplanationKey {
		t.Errorf("len = %d, want %d", n, maxExplanationKey)
	}
	if !strings.HasSuffix(key, "...") {
		t.Errorf("key %q missing ellipsis", key)
	}
}
