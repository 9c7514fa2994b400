package notifier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/httpx"
	"fba_scanner/pkg/logx"
)

const (
	discordTimeout = 10 * time.Second
	// Discord отклоняет embed с title длиннее 256 символов.
	discordTitleLimit = 256
)

type discordPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title     string            `json:"title"`
	Color     int               `json:"color"`
	Thumbnail *discordThumbnail `json:"thumbnail,omitempty"`
	Fields    []discordField    `json:"fields"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

type discordField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Discord posts deals as embeds to a channel webhook.
type Discord struct {
	client  *http.Client
	webhook string
	log     *slog.Logger
}

func NewDiscord(webhook string, log *slog.Logger) *Discord {
	return &Discord{
		client: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithLogFieldMaxLen(2048),
			),
			Timeout: discordTimeout,
		},
		webhook: webhook,
		log:     log.With(slog.String(logx.FieldComponent, "discord")),
	}
}

func (d *Discord) Name() string {
	return "discord"
}

func (d *Discord) Send(ctx context.Context, deal entity.Deal) error {
	body, err := json.Marshal(discordPayload{Embeds: []discordEmbed{dealEmbed(deal)}})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhook, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("discord: status %d: %s", resp.StatusCode, text)
	}

	contextx.LoggerFromContextOr(ctx, d.log).Info("deal posted", slog.String(logx.FieldASIN, deal.ASIN))

	return nil
}

func dealEmbed(deal entity.Deal) discordEmbed {
	embed := discordEmbed{
		Title: embedTitle(deal.Name),
		Color: ROIColor(deal.ROI),
		Fields: []discordField{
			{Name: "EAN", Value: deal.EAN},
			{Name: "ASIN", Value: deal.ASIN},
			{Name: "Supplier (incl VAT)", Value: euro(deal.SupplierCost)},
			{Name: "Amazon Price", Value: euro(deal.Price)},
			{Name: "Fees + FBA", Value: euro(deal.Fees)},
			{Name: "Profit", Value: euro(deal.Profit)},
			{Name: "ROI", Value: percent(deal.ROI)},
			{Name: "Est. Monthly Sales", Value: strconv.Itoa(deal.EstimatedSales)},
			{Name: "Links", Value: fmt.Sprintf(
				"[Amazon](%s) | [Supplier](%s) | [SAS](%s)",
				deal.MarketplaceLink, deal.SupplierLink, deal.LookupLink,
			)},
		},
	}

	if deal.ImageURL != "" {
		embed.Thumbnail = &discordThumbnail{URL: deal.ImageURL}
	}

	return embed
}

func embedTitle(name string) string {
	const marks = "**"

	limit := discordTitleLimit - 2*len(marks)

	runes := []rune(name)
	if len(runes) > limit {
		runes = append(runes[:limit-1], '…')
	}

	return marks + string(runes) + marks
}
