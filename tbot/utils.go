package tbot

import (
	"fmt"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func castMap[T any](data map[string]interface{}) map[string]T {
	result := make(map[string]T, len(data))

	for k, v := range data {
		if vv, ok := v.(T); ok {
			result[k] = vv
		}
	}

	return result
}

// audioFile файл из голосового сообщения, аудио или документа
func audioFile(msg *tgbotapi.Message) (fileID, fileName string, ok bool) {
	switch {
	case msg.Voice != nil:
		return msg.Voice.FileID, fmt.Sprintf("voice_%d.ogg", msg.MessageID), true
	case msg.Audio != nil:
		return msg.Audio.FileID, orDefault(msg.Audio.FileName, fmt.Sprintf("audio_%d", msg.MessageID)), true
	case msg.Document != nil:
		return msg.Document.FileID, orDefault(msg.Document.FileName, fmt.Sprintf("document_%d", msg.MessageID)), true
	}

	return "", "", false
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
