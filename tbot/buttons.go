package tbot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	uuid "github.com/google/uuid"
)

const buttonColumns = 2

type BHandler func(*Button, *tgbotapi.Message)

type Button struct {
	caption string
	handler BHandler
	id      string
	keep    bool // не удалять обработчик после нажатия
}

type Buttons []*Button

func (bts Buttons) ids() []string {
	result := make([]string, 0, len(bts))
	for _, b := range bts {
		if b.id != "" {
			result = append(result, b.id)
		}
	}

	return result
}

func (bts Buttons) createButtons(msg tgbotapi.Chattable, countColum int) {
	keyboard := tgbotapi.InlineKeyboardMarkup{}

	switch v := msg.(type) {
	case *tgbotapi.EditMessageTextConfig:
		v.ReplyMarkup = &keyboard
	case *tgbotapi.MessageConfig:
		v.ReplyMarkup = &keyboard
	}

	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(bts))
	for _, b := range bts {
		if b.id == "" {
			b.id = uuid.NewString()
		}

		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.caption, b.id))
	}

	keyboard.InlineKeyboard = breakButtonsByColum(buttons, countColum)
}

// breakButtonsByColum раскладывает кнопки по строкам по countColum штук, остаток уходит в последнюю строку
func breakButtonsByColum(buttons []tgbotapi.InlineKeyboardButton, countColum int) [][]tgbotapi.InlineKeyboardButton {
	if countColum <= 0 {
		countColum = 1
	}

	result := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons)/countColum+1)
	for start := 0; start < len(buttons); start += countColum {
		end := start + countColum
		if end > len(buttons) {
			end = len(buttons)
		}

		result = append(result, tgbotapi.NewInlineKeyboardRow(buttons[start:end]...))
	}

	return result
}
