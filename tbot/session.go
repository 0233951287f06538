package tbot

import (
	"fmt"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"strings"
	"voice_access/directory"
	"voice_access/recognition"
)

// session области и сценарии одного чата
type session struct {
	t            *tBot
	chatID       int64
	controller   *directory.Controller
	list         *listRegion
	enrollStatus *statusRegion
	verifyResult *statusRegion
	enroll       *enrollForm
	verify       *verifyForm
	notifier     *notifier
}

func (t *tBot) session(chatID int64) (*session, error) {
	t.sMx.Lock()
	defer t.sMx.Unlock()

	if s, ok := t.sessions[chatID]; ok {
		return s, nil
	}

	s := &session{
		t:            t,
		chatID:       chatID,
		enrollStatus: &statusRegion{chatMessage: chatMessage{t: t, chatID: chatID}},
		verifyResult: &statusRegion{chatMessage: chatMessage{t: t, chatID: chatID}},
		notifier:     &notifier{t: t, chatID: chatID},
	}
	s.list = &listRegion{chatMessage: chatMessage{t: t, chatID: chatID}, onDelete: s.deleteSpeaker}
	s.enroll = &enrollForm{chatMessage: chatMessage{t: t, chatID: chatID}, submit: s.submitEnroll}
	s.verify = &verifyForm{chatMessage: chatMessage{t: t, chatID: chatID}, threshold: t.thresholds.get(chatID), submit: s.submitVerify}

	c, err := directory.NewController(t.service, directory.Regions{
		List:         s.list,
		EnrollStatus: s.enrollStatus,
		EnrollForm:   s.enroll,
		VerifyResult: s.verifyResult,
		Notifier:     s.notifier,
		Confirmer:    &confirmer{t: t, chatID: chatID},
	}, directory.WithLogger(t.logger))
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("create controller for %d error", chatID))
	}

	s.controller = c
	t.sessions[chatID] = s
	return s, nil
}

func (t *tBot) activeSessions() []*session {
	t.sMx.Lock()
	defer t.sMx.Unlock()

	result := make([]*session, 0, len(t.sessions))
	for _, s := range t.sessions {
		result = append(result, s)
	}

	return result
}

func (s *session) submitEnroll(name string, samples []recognition.Sample) {
	s.controller.Enroll.Submit(s.t.ctx, name, samples)
}

func (s *session) submitVerify(probe *recognition.Sample, threshold string) {
	s.controller.Verify.Submit(s.t.ctx, probe, threshold)
}

// deleteSpeaker вызывается из обработчика кнопки, подтверждение приходит следующим апдейтом
func (s *session) deleteSpeaker(name string) {
	go s.controller.Delete.Delete(s.t.ctx, name)
}

func (s *session) openEnroll() {
	s.enroll.detach()
	s.enrollStatus.detach()
	s.enroll.show()
	s.t.msgInterceptor.subscribe(s.chatID, s.enrollConsumer)
}

func (s *session) openVerify() {
	s.verify.detach()
	s.verifyResult.detach()
	s.verify.show()
	s.t.msgInterceptor.subscribe(s.chatID, s.verifyConsumer)
}

func (s *session) setThreshold(v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		s.notifier.Notify("Usage: /threshold 0.65")
		return
	}

	s.t.thresholds.set(s.chatID, v)
	s.verify.setThreshold(v)
}

func (s *session) enrollConsumer(msg *tgbotapi.Message) (breakProc bool) {
	if msg.IsCommand() {
		return false
	}

	if fileID, fileName, ok := audioFile(msg); ok {
		sample, err := s.t.download(fileID, fileName)
		if err != nil {
			s.t.logger.Println(err)
			s.notifier.Notify("Error: " + err.Error())
			return true
		}

		s.enroll.addSample(sample)
		return true
	}

	if name := strings.TrimSpace(msg.Text); name != "" {
		s.enroll.setName(name)
	}

	return true
}

func (s *session) verifyConsumer(msg *tgbotapi.Message) (breakProc bool) {
	if msg.IsCommand() {
		return false
	}

	if fileID, fileName, ok := audioFile(msg); ok {
		sample, err := s.t.download(fileID, fileName)
		if err != nil {
			s.t.logger.Println(err)
			s.notifier.Notify("Error: " + err.Error())
			return true
		}

		s.verify.setProbe(sample)
		return true
	}

	if v := strings.TrimSpace(msg.Text); v != "" {
		s.setThreshold(v)
	}

	return true
}
