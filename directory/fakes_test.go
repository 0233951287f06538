package directory

import (
	"bytes"
	"context"
	"log"
	"strings"
	"sync"
	"testing"
	mock_directory "voice_access/directory/mock"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type fakeList struct {
	mx    sync.Mutex
	calls []string
}

func (f *fakeList) add(c string) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeList) ShowLoading()                { f.add("loading") }
func (f *fakeList) ShowEmpty()                  { f.add("empty") }
func (f *fakeList) ShowError()                  { f.add("error") }
func (f *fakeList) ShowSpeakers(names []string) { f.add("speakers:" + strings.Join(names, ",")) }

func (f *fakeList) history() []string {
	f.mx.Lock()
	defer f.mx.Unlock()
	return append([]string{}, f.calls...)
}

type fakeStatus struct {
	mx       sync.Mutex
	statuses []Status
}

func (f *fakeStatus) SetStatus(s Status) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.statuses = append(f.statuses, s)
}

func (f *fakeStatus) history() []Status {
	f.mx.Lock()
	defer f.mx.Unlock()
	return append([]Status{}, f.statuses...)
}

func (f *fakeStatus) last() Status {
	h := f.history()
	if len(h) == 0 {
		return Status{}
	}
	return h[len(h)-1]
}

type fakeForm struct {
	mx     sync.Mutex
	resets int
}

func (f *fakeForm) Reset() {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.resets++
}

func (f *fakeForm) count() int {
	f.mx.Lock()
	defer f.mx.Unlock()
	return f.resets
}

type fakeNotifier struct {
	mx      sync.Mutex
	notices []string
}

func (f *fakeNotifier) Notify(msg string) {
	f.mx.Lock()
	defer f.mx.Unlock()
	f.notices = append(f.notices, msg)
}

func (f *fakeNotifier) history() []string {
	f.mx.Lock()
	defer f.mx.Unlock()
	return append([]string{}, f.notices...)
}

type fakeConfirmer struct {
	answer bool
	asked  []string
}

func (f *fakeConfirmer) Confirm(_ context.Context, msg string) bool {
	f.asked = append(f.asked, msg)
	return f.answer
}

type fixture struct {
	service      *mock_directory.MockIService
	list         *fakeList
	enrollStatus *fakeStatus
	form         *fakeForm
	verifyResult *fakeStatus
	notifier     *fakeNotifier
	confirmer    *fakeConfirmer
	logs         *bytes.Buffer
	controller   *Controller

	// блокировка первого из двух пересекающихся запросов
	entered chan struct{}
	release chan struct{}
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		service:      mock_directory.NewMockIService(ctrl),
		list:         &fakeList{},
		enrollStatus: &fakeStatus{},
		form:         &fakeForm{},
		verifyResult: &fakeStatus{},
		notifier:     &fakeNotifier{},
		confirmer:    &fakeConfirmer{},
		logs:         &bytes.Buffer{},
	}

	c, err := NewController(f.service, Regions{
		List:         f.list,
		EnrollStatus: f.enrollStatus,
		EnrollForm:   f.form,
		VerifyResult: f.verifyResult,
		Notifier:     f.notifier,
		Confirmer:    f.confirmer,
	}, WithLogger(log.New(f.logs, "", 0)))
	require.NoError(t, err)

	f.controller = c
	return f
}
