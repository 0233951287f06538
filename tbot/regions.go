package tbot

import (
	"context"
	"fmt"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"strings"
	"sync"
	"time"
	"voice_access/directory"
)

const noticeTTL = 15 * time.Second

// chatMessage сообщение, которое переписывается на месте при каждом обновлении области.
// Кнопки области можно нажимать повторно, пока сообщение не перерисовано или не отвязано.
type chatMessage struct {
	t      *tBot
	chatID int64
	mx     sync.Mutex
	msg    *tgbotapi.Message
	ids    []string
}

func (m *chatMessage) render(txt string, buttons Buttons) {
	m.mx.Lock()
	defer m.mx.Unlock()

	for _, b := range buttons {
		b.keep = true
	}

	var (
		res *tgbotapi.Message
		err error
	)

	if m.msg == nil {
		res, err = m.t.sendMsg(txt, m.chatID, buttons)
	} else {
		res, err = m.t.editMsg(m.msg, txt, buttons)
	}

	if err != nil {
		m.t.logger.Println(errors.Wrap(err, "render msg error"))
		return
	}

	m.t.dropCallbacks(m.ids)
	m.ids = buttons.ids()
	m.msg = res
}

// detach следующее обновление придет новым сообщением внизу чата, кнопки старого отключаются
func (m *chatMessage) detach() {
	m.mx.Lock()
	defer m.mx.Unlock()

	m.t.dropCallbacks(m.ids)
	m.ids = nil
	m.msg = nil
}

type listRegion struct {
	chatMessage
	onDelete func(name string)
}

func (r *listRegion) ShowLoading() {
	r.render("Loading...", Buttons{})
}

func (r *listRegion) ShowEmpty() {
	r.render("<b>Enrolled speakers</b>\nNo speakers enrolled.", Buttons{})
}

func (r *listRegion) ShowError() {
	r.render("Error loading speakers.", Buttons{})
}

func (r *listRegion) ShowSpeakers(names []string) {
	lines := make([]string, 0, len(names)+1)
	lines = append(lines, "<b>Enrolled speakers</b>")

	buttons := make(Buttons, 0, len(names))
	for _, name := range names {
		lines = append(lines, "• <b>"+html.EscapeString(name)+"</b>")
		buttons = append(buttons, &Button{
			caption: "Delete " + name,
			handler: func(*Button, *tgbotapi.Message) {
				r.onDelete(name)
			},
		})
	}

	r.render(strings.Join(lines, "\n"), buttons)
}

type statusRegion struct {
	chatMessage
}

func (r *statusRegion) SetStatus(s directory.Status) {
	r.render(renderStatus(s), Buttons{})
}

func renderStatus(s directory.Status) string {
	b := strings.Builder{}

	switch s.Style {
	case directory.StyleSuccess:
		b.WriteString("✅ ")
	case directory.StyleFailure:
		b.WriteString("❌ ")
	}

	if s.Title != "" {
		b.WriteString("<b>" + html.EscapeString(s.Title) + "</b>\n")
	}

	b.WriteString(html.EscapeString(s.Message))
	return b.String()
}

type notifier struct {
	t      *tBot
	chatID int64
}

func (n *notifier) Notify(msg string) {
	n.t.notice(html.EscapeString(msg), n.chatID, noticeTTL)
}

type confirmer struct {
	t      *tBot
	chatID int64
}

// Confirm ждет нажатия "Yes" или "No", отказ при отмене контекста
func (c *confirmer) Confirm(ctx context.Context, msg string) bool {
	answer := make(chan bool, 1)

	var buttons Buttons
	reply := func(v bool) BHandler {
		return func(_ *Button, selfMsg *tgbotapi.Message) {
			c.t.dropCallbacks(buttons.ids())
			c.t.deleteMessage(c.chatID, selfMsg.MessageID)
			select {
			case answer <- v:
			default:
			}
		}
	}

	buttons = Buttons{
		{caption: "Yes", handler: reply(true)},
		{caption: "No", handler: reply(false)},
	}
	if _, err := c.t.sendMsg(html.EscapeString(msg), c.chatID, buttons); err != nil {
		c.t.logger.Println(errors.Wrap(err, fmt.Sprintf("send confirm to %d error", c.chatID)))
		return false
	}

	select {
	case v := <-answer:
		return v
	case <-ctx.Done():
		c.t.dropCallbacks(buttons.ids())
		return false
	}
}
