package tbot

import (
	"fmt"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"time"
)

const helpText = `<b>Speaker directory</b>
/speakers - refresh the list of enrolled speakers
/enroll - add a new speaker from audio samples
/verify - check an audio sample against enrolled speakers
/threshold 0.65 - set the verification threshold
/reload - reload speakers on the recognition service`

func (t *tBot) command(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.Command() == "start" {
		t.start(msg)
		return
	}

	if !t.guard.check("", chatID) {
		t.notice("Send /start to log in", chatID, noticeTTL)
		return
	}

	s, err := t.session(chatID)
	if err != nil {
		t.logger.Println(err)
		return
	}

	switch msg.Command() {
	case "speakers":
		s.list.detach()
		go s.controller.Loader.Load(t.ctx)
	case "enroll":
		s.openEnroll()
	case "verify":
		s.openVerify()
	case "threshold":
		s.setThreshold(msg.CommandArguments())
	case "reload":
		go s.controller.Reload.Submit(t.ctx)
	case "help":
		if _, err := t.sendMsg(helpText, chatID, Buttons{}); err != nil {
			t.logger.Println(errors.Wrap(err, "send help error"))
		}
	default:
		t.notice(fmt.Sprintf("Unknown command /%s", html.EscapeString(msg.Command())), chatID, noticeTTL)
	}
}

func (t *tBot) start(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if t.guard.check(msg.CommandArguments(), chatID) {
		t.welcome(chatID)
		return
	}

	name := ""
	if msg.From != nil {
		name = html.EscapeString(msg.From.FirstName + " " + msg.From.LastName)
	}

	b := &Button{
		caption: "Cancel",
		handler: func(self *Button, selfMsg *tgbotapi.Message) {
			t.msgInterceptor.unsubscribe(chatID)
			t.deleteMessage(chatID, selfMsg.MessageID)
		},
	}

	rootMsg, err := t.sendMsg(fmt.Sprintf("Hello %s\nEnter the password", name), chatID, Buttons{b})
	if err != nil {
		t.logger.Println(errors.Wrap(err, "send msg error"))
		return
	}

	t.msgInterceptor.subscribe(chatID, func(msg *tgbotapi.Message) (breakProc bool) {
		if msg.IsCommand() {
			return false
		}

		t.deleteMessage(chatID, msg.MessageID)
		if !t.guard.check(msg.Text, chatID) {
			t.notice("Wrong password", chatID, time.Second*5)
			return true
		}

		t.msgInterceptor.unsubscribe(chatID)
		t.deleteMessage(chatID, rootMsg.MessageID)
		t.notice("Password accepted", chatID, time.Second*10)
		t.welcome(chatID)
		return true
	})
}

func (t *tBot) welcome(chatID int64) {
	s, err := t.session(chatID)
	if err != nil {
		t.logger.Println(err)
		return
	}

	if _, err := t.sendMsg(helpText, chatID, Buttons{}); err != nil {
		t.logger.Println(errors.Wrap(err, "send help error"))
	}

	s.list.detach()
	go s.controller.Init(t.ctx)
}
