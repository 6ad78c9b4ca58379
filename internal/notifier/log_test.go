package notifier

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogNotifier_Notify(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	if err := n.Notify(context.Background(), samplePosting()); err != nil {
		t.Fatalf("Notify() = %v, want nil", err)
	}

	out := buf.String()
	for _, want := range []string{`msg="new posting"`, "source=BNPP", "country=FR", "keyword=risk", "posted=2026-01-15"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestLogNotifier_OmitsEmptyOptionalFields(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	p := samplePosting()
	p.CountryCode, p.Keyword, p.Posted, p.Location = "", "", nil, ""
	if err := n.Notify(context.Background(), p); err != nil {
		t.Fatalf("Notify() = %v, want nil", err)
	}
	for _, unwanted := range []string{"country=", "keyword=", "posted=", "location="} {
		if strings.Contains(buf.String(), unwanted) {
			t.Errorf("log output has %q: %s", unwanted, buf.String())
		}
	}
}
