package notifier

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/pkg/contextx"
	"fba_scanner/pkg/logx"
)

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
	log    *slog.Logger
}

func NewTelegramBot(token string, chatID int64, log *slog.Logger, opts ...telego.BotOption) (*TelegramBot, error) {
	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
		log:    log.With(slog.String(logx.FieldComponent, "telegram")),
	}, nil
}

func (b *TelegramBot) Name() string {
	return "telegram"
}

// Send публикует сделку в чат.
func (b *TelegramBot) Send(ctx context.Context, deal entity.Deal) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		DealText(deal),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	contextx.LoggerFromContextOr(ctx, b.log).Info("deal posted", slog.String(logx.FieldASIN, deal.ASIN))

	return nil
}

// DealText renders a deal as a Telegram HTML message.
func DealText(deal entity.Deal) string {
	return fmt.Sprintf(
		"📦 <b>%s</b>\n\n"+
			"🔢 <b>EAN:</b> %s\n"+
			"🅰️ <b>ASIN:</b> %s\n"+
			"🏷 <b>Supplier (incl VAT):</b> %s\n"+
			"💶 <b>Amazon Price:</b> %s\n"+
			"🧾 <b>Fees + FBA:</b> %s\n"+
			"💰 <b>Profit:</b> %s\n"+
			"📈 <b>ROI:</b> %s\n"+
			"📊 <b>Est. Monthly Sales:</b> %d\n\n"+
			"🔗 <a href=\"%s\">Amazon</a> | <a href=\"%s\">Supplier</a> | <a href=\"%s\">SAS</a>",
		html.EscapeString(deal.Name),
		deal.EAN,
		deal.ASIN,
		euro(deal.SupplierCost),
		euro(deal.Price),
		euro(deal.Fees),
		euro(deal.Profit),
		percent(deal.ROI),
		deal.EstimatedSales,
		html.EscapeString(deal.MarketplaceLink),
		html.EscapeString(deal.SupplierLink),
		html.EscapeString(deal.LookupLink),
	)
}
