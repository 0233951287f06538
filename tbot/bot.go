package tbot

import (
	"context"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"log"
	"net/http"
	"os"
	"sync"
	"time"
	"voice_access/directory"
	"voice_access/recognition"
	"voice_access/storage"
)

// callback обработчик кнопки. Разовый удаляется при нажатии, остальные живут, пока их сообщение не перерисовано.
type callback struct {
	handler func()
	once    bool
}

type TCallback map[string]callback

type options func(tb *tBot)

type tBot struct {
	api            *tgbotapi.BotAPI
	bot            IMessenger
	callback       TCallback
	cbMx           sync.Mutex
	msgInterceptor msgInterceptor
	service        directory.IService
	storage        storage.IStorage
	guard          *guard
	thresholds     *thresholds
	schedule       *Schedule
	sessions       map[int64]*session
	sMx            sync.Mutex
	httpClient     *http.Client
	logger         *log.Logger
	ctx            context.Context
	closer         *Closer
}

func NewBot(ctx context.Context, settings BotSettings, opt ...options) (*tBot, error) {
	api, err := tgbotapi.NewBotAPI(settings.Token)
	if err != nil {
		return nil, errors.Wrap(err, "telegram connect error")
	}

	fs, err := storage.NewFileStorage(settings.StorageDir)
	if err != nil {
		return nil, err
	}

	tb := newBot(ctx, api, settings, fs)
	tb.api = api

	for _, f := range opt {
		f(tb)
	}

	if settings.ReloadCron != "" {
		if err := tb.schedule.Planning(settings.ReloadCron, tb.reloadAll); err != nil {
			return nil, errors.Wrap(err, "reload schedule error")
		}
	}

	return tb, nil
}

func newBot(ctx context.Context, messenger IMessenger, settings BotSettings, st storage.IStorage) *tBot {
	logger := log.Default()
	tb := &tBot{
		bot:            messenger,
		callback:       make(TCallback),
		msgInterceptor: msgInterceptor{consumers: map[int64]readUpdate{}},
		service:        recognition.NewClient(settings.RecognitionURL),
		storage:        st,
		guard:          newGuard(settings.Pass, st, logger),
		thresholds:     newThresholds(settings.DefaultThreshold, st, logger),
		schedule:       NewSchedule(),
		sessions:       map[int64]*session{},
		httpClient:     http.DefaultClient,
		logger:         logger,
		ctx:            ctx,
		closer:         NewCloser(),
	}

	tb.closer.Append("schedule", tb.schedule.Stop)
	return tb
}

func (t *tBot) Run() {
	defer func() {
		t.closer.Close()
	}()

	t.schedule.Start()

	wdUpdate := t.run()
	for {
		var update tgbotapi.Update

		select {
		case <-t.ctx.Done():
			t.logger.Println("bot stopped")
			return
		case update = <-wdUpdate:
		}

		t.handleUpdate(update)
	}
}

func (t *tBot) run() tgbotapi.UpdatesChannel {
	_, _ = t.bot.Request(&tgbotapi.DeleteWebhookConfig{})

	dir, _ := os.Getwd()
	t.logger.Println("bot running. Current working directory:", dir)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "callback_query"}
	return t.api.GetUpdatesChan(u)
}

func (t *tBot) handleUpdate(update tgbotapi.Update) {
	msg := t.getMessage(update)
	if msg == nil || msg.Chat == nil {
		return
	}

	// обработка команд кнопок
	if t.callbackQuery(update) {
		return
	}

	if t.msgInterceptor.notify(msg) {
		return
	}

	if msg.IsCommand() {
		t.command(msg)
	}
}

func (t *tBot) getMessage(update tgbotapi.Update) *tgbotapi.Message {
	if update.Message != nil {
		return update.Message
	} else if update.CallbackQuery != nil {
		return update.CallbackQuery.Message
	} else {
		return nil
	}
}

func (t *tBot) sendTTLMsg(msg string, chatID int64, buttons Buttons, ttl time.Duration) (*tgbotapi.Message, error) {
	m, err := t.sendMsg(msg, chatID, buttons)
	if err != nil {
		return nil, err
	}

	go func() {
		time.Sleep(ttl)
		t.deleteMessage(chatID, m.MessageID)
	}()

	return m, nil
}

// notice уведомление, которое само удалится через ttl
func (t *tBot) notice(msg string, chatID int64, ttl time.Duration) {
	if _, err := t.sendTTLMsg(msg, chatID, Buttons{}, ttl); err != nil {
		t.logger.Println(errors.Wrap(err, "send notice error"))
	}
}

func (t *tBot) sendMsg(msg string, chatID int64, buttons Buttons) (*tgbotapi.Message, error) {
	newmsg := tgbotapi.NewMessage(chatID, msg)
	newmsg.ParseMode = tgbotapi.ModeHTML
	return t.createButtonsAndSend(&newmsg, buttons)
}

func (t *tBot) deleteMessage(chatID int64, messageID int) {
	conf := tgbotapi.DeleteMessageConfig{
		ChatID:    chatID,
		MessageID: messageID,
	}

	if _, err := t.bot.Request(conf); err != nil {
		t.logger.Println(errors.Wrap(err, "delete msg error"))
	}
}

func (t *tBot) createButtonsAndSend(msg tgbotapi.Chattable, buttons Buttons) (*tgbotapi.Message, error) {
	if len(buttons) > 0 {
		buttons.createButtons(msg, buttonColumns)
	}

	m, err := t.bot.Send(msg)
	if err != nil {
		return nil, err
	}

	t.cbMx.Lock()
	defer t.cbMx.Unlock()

	for _, b := range buttons {
		t.callback[b.id] = callback{
			handler: func() { b.handler(b, &m) },
			once:    !b.keep,
		}
	}

	return &m, nil
}

func (t *tBot) callbackQuery(update tgbotapi.Update) bool {
	if update.CallbackQuery == nil || update.CallbackQuery.Message == nil {
		return false
	}

	if _, err := t.bot.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
		t.logger.Println(errors.Wrap(err, "answer callback error"))
	}

	t.cbMx.Lock()
	call, ok := t.callback[update.CallbackQuery.Data]
	if ok && call.once {
		delete(t.callback, update.CallbackQuery.Data)
	}
	t.cbMx.Unlock()

	if ok {
		call.handler()
	}

	return true
}

func (t *tBot) dropCallbacks(ids []string) {
	t.cbMx.Lock()
	defer t.cbMx.Unlock()

	for _, id := range ids {
		delete(t.callback, id)
	}
}

func (t *tBot) editMsg(msg *tgbotapi.Message, txt string, buttons Buttons) (*tgbotapi.Message, error) {
	editmsg := tgbotapi.NewEditMessageText(msg.Chat.ID, msg.MessageID, txt)
	editmsg.ParseMode = tgbotapi.ModeHTML

	if buttons == nil {
		editmsg.ReplyMarkup = msg.ReplyMarkup
		m, err := t.bot.Send(editmsg)
		if err != nil {
			return nil, err
		}
		return &m, nil
	}

	return t.createButtonsAndSend(&editmsg, buttons)
}

// reloadAll плановая перезагрузка дикторов на стороне сервиса
func (t *tBot) reloadAll() {
	msg, err := t.service.Reload(t.ctx)
	if err != nil {
		t.logger.Println(errors.Wrap(err, "scheduled reload error"))
		return
	}

	t.logger.Println("scheduled reload:", msg)
	for _, s := range t.activeSessions() {
		s.controller.Loader.Load(t.ctx)
	}
}

func WithService(service directory.IService) options {
	return func(tb *tBot) {
		tb.service = service
	}
}

func WithHttpClient(c *http.Client) options {
	return func(tb *tBot) {
		tb.httpClient = c
	}
}
