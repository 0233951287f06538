package tbot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type BotSettings struct {
	Token            string `envconfig:"BOT_TOKEN" required:"true"`
	Pass             string `envconfig:"PASSWORD"`
	RecognitionURL   string `envconfig:"RECOGNITION_URL" default:"http://localhost:8000"`
	DefaultThreshold string `envconfig:"DEFAULT_THRESHOLD" default:"0.65"`
	ReloadCron       string `envconfig:"RELOAD_CRON"`
	StorageDir       string `envconfig:"STORAGE_DIR" default:"data"`
}

// IMessenger часть tgbotapi.BotAPI, через которую бот рисует сообщения
type IMessenger interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}
