package config

import "time"

type Poster struct {
	DiscordWebhook string        `env:"DISCORD_WEBHOOK" json:"-"`
	TelegramToken  string        `env:"TELEGRAM_BOT_TOKEN" json:"-"`
	TelegramChatID int64         `env:"TELEGRAM_CHAT_ID"`
	MaxPostsPerRun int           `env:"MAX_POSTS_PER_RUN" envDefault:"25"`
	MinDelay       time.Duration `env:"POST_MIN_DELAY" envDefault:"5s"`
	MaxDelay       time.Duration `env:"POST_MAX_DELAY" envDefault:"15s"`
}

func (p Poster) TelegramEnabled() bool {
	return p.TelegramToken != "" && p.TelegramChatID != 0
}
