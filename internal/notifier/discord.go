package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amishk599/bankradar/internal/model"
)

// Ensure DiscordNotifier implements model.Notifier.
var _ model.Notifier = (*DiscordNotifier)(nil)

// sourceColors are the embed side colors per bank code.
var sourceColors = map[string]int{
	"SG":       0xED2939,
	"DB":       0x0066FF,
	"BNPP":     0x009A4D,
	"CA":       0x00603B,
	"BPCE":     0x51134A,
	"EDR":      0xFCC500,
	"HSBC":     0xDB0011,
	"UBS":      0xCC0000,
	"RBC":      0x0061A8,
	"RCO":      0x0C2B5A,
	"CIC":      0xE4001B,
	"ODDO":     0x003366,
	"KC":       0x008A8C,
	"BBVA":     0x004481,
	"MUFG":     0xD90000,
	"JB":       0x333333,
	"LO":       0x002B5A,
	"ING":      0xFF6600,
	"BARCLAYS": 0x00AEEF,
	"VON":      0x00A5AD,
}

const defaultColor = 0x333333

// DiscordNotifier posts each posting as an embed to a Discord webhook.
// Consecutive messages are spaced by minGap, and a 429 is retried once after
// the advertised delay.
type DiscordNotifier struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
	minGap     time.Duration

	mu       sync.Mutex
	lastSent time.Time
}

// NewDiscordNotifier returns a notifier that posts to the Discord webhook.
func NewDiscordNotifier(webhookURL string, httpClient *http.Client, logger *slog.Logger) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL: webhookURL,
		httpClient: httpClient,
		logger:     logger,
		minGap:     500 * time.Millisecond,
	}
}

// Notify sends one embed for p.
func (d *DiscordNotifier) Notify(ctx context.Context, p model.EnrichedPosting) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.lastSent.IsZero() {
		if wait := d.minGap - time.Since(d.lastSent); wait > 0 {
			if err := sleep(ctx, wait); err != nil {
				return err
			}
		}
	}
	defer func() { d.lastSent = time.Now() }()

	body, err := json.Marshal(buildPayload(p, time.Now()))
	if err != nil {
		return fmt.Errorf("marshal discord payload: %w", err)
	}

	status, retryAfter, err := d.post(ctx, body)
	if err != nil {
		return err
	}
	if status == http.StatusTooManyRequests {
		d.logger.Warn("discord rate limited, retrying", "retry_after", retryAfter)
		if err := sleep(ctx, retryAfter); err != nil {
			return err
		}
		if status, _, err = d.post(ctx, body); err != nil {
			return fmt.Errorf("post to discord (retry): %w", err)
		}
	}
	// Webhooks answer 204 without ?wait=true and 200 with it.
	if status != http.StatusOK && status != http.StatusNoContent {
		return fmt.Errorf("discord returned %d", status)
	}
	d.logger.Debug("discord message sent", "source", p.Source, "title", p.Title)
	return nil
}

func (d *DiscordNotifier) post(ctx context.Context, body []byte) (int, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return 0, 0, fmt.Errorf("build discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("post to discord: %w", err)
	}
	defer resp.Body.Close()

	retryAfter := time.Second
	if v, err := strconv.ParseFloat(resp.Header.Get("Retry-After"), 64); err == nil && v > 0 {
		retryAfter = time.Duration(v * float64(time.Second))
	}
	return resp.StatusCode, retryAfter, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Webhook payload types.

type discordPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title     string         `json:"title"`
	URL       string         `json:"url"`
	Color     int            `json:"color"`
	Timestamp string         `json:"timestamp"`
	Footer    discordFooter  `json:"footer"`
	Fields    []discordField `json:"fields"`
}

type discordFooter struct {
	Text string `json:"text"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Discord rejects titles over 256 characters.
const maxTitle = 256

func buildPayload(p model.EnrichedPosting, now time.Time) discordPayload {
	posted := now
	if p.Posted != nil {
		posted = *p.Posted
	}
	color, ok := sourceColors[strings.ToUpper(p.Source)]
	if !ok {
		color = defaultColor
	}

	company := p.Company
	if company == "" {
		company = "N/A"
	}
	fields := []discordField{{Name: "Company", Value: company, Inline: true}}
	if p.Location != "" {
		fields = append(fields, discordField{Name: "Location", Value: p.Location, Inline: true})
	}
	if p.ContractType != "" && p.ContractType != "unspecified" {
		fields = append(fields, discordField{Name: "Contract", Value: strings.ToUpper(p.ContractType), Inline: true})
	}
	if p.Category != "" {
		fields = append(fields, discordField{Name: "Category", Value: p.Category, Inline: true})
	}
	if p.Keyword != "" {
		fields = append(fields, discordField{Name: "Keyword", Value: p.Keyword, Inline: true})
	}

	title := p.Title
	if r := []rune(title); len(r) > maxTitle {
		title = string(r[:maxTitle-3]) + "..."
	}

	return discordPayload{Embeds: []discordEmbed{{
		Title:     title,
		URL:       p.Link,
		Color:     color,
		Timestamp: posted.UTC().Format(time.RFC3339),
		Footer:    discordFooter{Text: "Source: " + p.Source},
		Fields:    fields,
	}}}
}

// SendTestMessage sends a sample posting to verify the integration works.
func SendTestMessage(ctx context.Context, n model.Notifier) error {
	now := time.Now()
	return n.Notify(ctx, model.EnrichedPosting{
		Candidate: model.Candidate{
			RawPosting: model.RawPosting{
				ID:       "test-001",
				Title:    "Test Notification: Integration Verified",
				Link:     "https://example.com/bankradar/test",
				Posted:   &now,
				Source:   "TEST",
				Company:  "bankradar",
				Location: "Paris, France",
			},
			Keyword: "test",
		},
		Category:     "Other",
		ContractType: "permanent",
		CountryCode:  "FR",
		CountryName:  "France",
	})
}
