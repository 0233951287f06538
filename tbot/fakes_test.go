package tbot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"voice_access/recognition"
	"voice_access/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

type sentMsg struct {
	chatID    int64
	messageID int
	edit      bool
	text      string
	buttons   map[string]string // caption -> callback data
}

type fakeMessenger struct {
	mx       sync.Mutex
	nextID   int
	sent     []sentMsg
	deleted  []int
	fileBase string
	sendErr  error
}

func (f *fakeMessenger) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mx.Lock()
	defer f.mx.Unlock()

	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}

	var s sentMsg
	switch v := c.(type) {
	case *tgbotapi.MessageConfig:
		f.nextID++
		s = sentMsg{chatID: v.ChatID, messageID: f.nextID, text: v.Text}
		if kb, ok := v.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup); ok {
			s.buttons = keyboardButtons(kb)
		}
	case *tgbotapi.EditMessageTextConfig:
		s = sentMsg{chatID: v.ChatID, messageID: v.MessageID, edit: true, text: v.Text, buttons: keyboardButtons(v.ReplyMarkup)}
	case tgbotapi.EditMessageTextConfig:
		s = sentMsg{chatID: v.ChatID, messageID: v.MessageID, edit: true, text: v.Text, buttons: keyboardButtons(v.ReplyMarkup)}
	}

	f.sent = append(f.sent, s)
	return tgbotapi.Message{MessageID: s.messageID, Chat: &tgbotapi.Chat{ID: s.chatID}}, nil
}

func (f *fakeMessenger) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mx.Lock()
	defer f.mx.Unlock()

	if v, ok := c.(tgbotapi.DeleteMessageConfig); ok {
		f.deleted = append(f.deleted, v.MessageID)
	}

	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeMessenger) GetFileDirectURL(fileID string) (string, error) {
	return f.fileBase + "/" + fileID, nil
}

func (f *fakeMessenger) messages() []sentMsg {
	f.mx.Lock()
	defer f.mx.Unlock()

	return append([]sentMsg{}, f.sent...)
}

// lastWith последнее сообщение, текст которого содержит substr
func (f *fakeMessenger) lastWith(substr string) (sentMsg, bool) {
	msgs := f.messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if strings.Contains(msgs[i].text, substr) {
			return msgs[i], true
		}
	}

	return sentMsg{}, false
}

func (f *fakeMessenger) countWith(substr string) int {
	count := 0
	for _, m := range f.messages() {
		if strings.Contains(m.text, substr) {
			count++
		}
	}

	return count
}

func keyboardButtons(kb *tgbotapi.InlineKeyboardMarkup) map[string]string {
	result := map[string]string{}
	if kb == nil {
		return result
	}

	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			if b.CallbackData != nil {
				result[b.Text] = *b.CallbackData
			}
		}
	}

	return result
}

type stubService struct {
	mx       sync.Mutex
	speakers []string
	enrolled map[string][]recognition.Sample
	enrolls  int
	verify   *recognition.VerifyResult
	probes   []string
	deleted  []string
}

func (s *stubService) Speakers(context.Context) ([]string, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	return append([]string{}, s.speakers...), nil
}

func (s *stubService) Enroll(_ context.Context, name string, samples []recognition.Sample) (string, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.enrolls++
	if name == "" {
		return "", &recognition.APIError{StatusCode: http.StatusBadRequest, Message: "Name is required"}
	}
	if s.enrolled == nil {
		s.enrolled = map[string][]recognition.Sample{}
	}
	s.enrolled[name] = samples
	s.speakers = append(s.speakers, name)
	return "Speaker " + name + " added", nil
}

func (s *stubService) Verify(_ context.Context, probe recognition.Sample, threshold string) (*recognition.VerifyResult, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.probes = append(s.probes, probe.FileName+"@"+threshold)
	return s.verify, nil
}

func (s *stubService) Delete(_ context.Context, name string) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.deleted = append(s.deleted, name)
	result := s.speakers[:0]
	for _, n := range s.speakers {
		if n != name {
			result = append(result, n)
		}
	}
	s.speakers = result
	return nil
}

func (s *stubService) Reload(context.Context) (string, error) {
	return "Model reloaded", nil
}

func (s *stubService) deletedNames() []string {
	s.mx.Lock()
	defer s.mx.Unlock()
	return append([]string{}, s.deleted...)
}

func newTestBot(t *testing.T, service *stubService, pass string) (*tBot, *fakeMessenger) {
	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("audio:" + strings.TrimPrefix(r.URL.Path, "/")))
	}))
	t.Cleanup(files.Close)

	st, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := &fakeMessenger{fileBase: files.URL}
	tb := newBot(ctx, m, BotSettings{Pass: pass, DefaultThreshold: "0.65"}, st)
	tb.service = service
	tb.httpClient = files.Client()

	return tb, m
}

func textUpdate(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1000,
		Chat:      &tgbotapi.Chat{ID: chatID},
		Text:      text,
	}}
}

func commandUpdate(chatID int64, command string) tgbotapi.Update {
	u := textUpdate(chatID, command)
	cmd := strings.SplitN(command, " ", 2)[0]
	u.Message.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}}
	return u
}

func voiceUpdate(chatID int64, fileID string, messageID int) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: messageID,
		Chat:      &tgbotapi.Chat{ID: chatID},
		Voice:     &tgbotapi.Voice{FileID: fileID},
	}}
}

func pressUpdate(msg sentMsg, caption string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb",
		Data: msg.buttons[caption],
		Message: &tgbotapi.Message{
			MessageID: msg.messageID,
			Chat:      &tgbotapi.Chat{ID: msg.chatID},
		},
	}}
}

func (s *stubService) enrolledSamples(name string) ([]recognition.Sample, bool) {
	s.mx.Lock()
	defer s.mx.Unlock()
	v, ok := s.enrolled[name]
	return v, ok
}

func (s *stubService) probeCalls() []string {
	s.mx.Lock()
	defer s.mx.Unlock()
	return append([]string{}, s.probes...)
}

func (s *stubService) enrollCalls() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.enrolls
}
