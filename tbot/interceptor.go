package tbot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"sync"
)

type readUpdate func(msg *tgbotapi.Message) (breakProc bool)

// msgInterceptor отдает сообщения чата открытой в нем форме, в каждом чате не больше одной формы
type msgInterceptor struct {
	consumers map[int64]readUpdate
	mx        sync.RWMutex
}

func (i *msgInterceptor) subscribe(chatID int64, c readUpdate) {
	i.mx.Lock()
	defer i.mx.Unlock()

	i.consumers[chatID] = c
}

func (i *msgInterceptor) unsubscribe(chatID int64) {
	i.mx.Lock()
	defer i.mx.Unlock()

	delete(i.consumers, chatID)
}

func (i *msgInterceptor) notify(msg *tgbotapi.Message) (breakProc bool) {
	if msg == nil || msg.Chat == nil {
		return false
	}

	i.mx.RLock()
	c, ok := i.consumers[msg.Chat.ID]
	i.mx.RUnlock()

	// потребитель может отписаться сам, поэтому вызывается без блокировки
	if !ok {
		return false
	}

	return c(msg)
}
