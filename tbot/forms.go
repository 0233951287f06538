package tbot

import (
	"fmt"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/net/html"
	"strings"
	"sync"
	"voice_access/recognition"
)

// enrollForm имя и образцы нового диктора, собираются из сообщений чата
type enrollForm struct {
	chatMessage
	dataMx  sync.Mutex
	name    string
	samples []recognition.Sample
	submit  func(name string, samples []recognition.Sample)
}

func (f *enrollForm) Reset() {
	f.dataMx.Lock()
	f.name = ""
	f.samples = nil
	f.dataMx.Unlock()

	f.show()
}

func (f *enrollForm) setName(name string) {
	f.dataMx.Lock()
	f.name = name
	f.dataMx.Unlock()

	f.show()
}

func (f *enrollForm) addSample(s recognition.Sample) {
	f.dataMx.Lock()
	f.samples = append(f.samples, s)
	f.dataMx.Unlock()

	f.show()
}

func (f *enrollForm) snapshot() (string, []recognition.Sample) {
	f.dataMx.Lock()
	defer f.dataMx.Unlock()

	return f.name, append([]recognition.Sample(nil), f.samples...)
}

func (f *enrollForm) text() string {
	name, samples := f.snapshot()

	files := make([]string, 0, len(samples))
	for _, s := range samples {
		files = append(files, "  "+html.EscapeString(s.FileName))
	}

	lines := []string{
		"<b>Add new speaker</b>",
		"Name: <code>" + html.EscapeString(name) + "</code>",
		fmt.Sprintf("Samples: %d", len(samples)),
	}
	lines = append(lines, files...)
	lines = append(lines, "", "Send the speaker name as a text message and one or more audio files, then press Enroll.")

	return strings.Join(lines, "\n")
}

func (f *enrollForm) show() {
	f.render(f.text(), Buttons{
		{
			caption: "Enroll",
			handler: func(*Button, *tgbotapi.Message) {
				name, samples := f.snapshot()
				go f.submit(name, samples)
			},
		},
		{
			caption: "Reset",
			handler: func(*Button, *tgbotapi.Message) {
				f.Reset()
			},
		},
	})
}

// verifyForm проверяемый образец и порог. После проверки форма не очищается.
type verifyForm struct {
	chatMessage
	dataMx    sync.Mutex
	probe     *recognition.Sample
	threshold string
	submit    func(probe *recognition.Sample, threshold string)
}

func (f *verifyForm) setProbe(s recognition.Sample) {
	f.dataMx.Lock()
	f.probe = &s
	f.dataMx.Unlock()

	f.show()
}

func (f *verifyForm) setThreshold(v string) {
	f.dataMx.Lock()
	f.threshold = v
	f.dataMx.Unlock()

	f.show()
}

func (f *verifyForm) snapshot() (*recognition.Sample, string) {
	f.dataMx.Lock()
	defer f.dataMx.Unlock()

	return f.probe, f.threshold
}

func (f *verifyForm) text() string {
	probe, threshold := f.snapshot()

	file := "not selected"
	if probe != nil {
		file = html.EscapeString(probe.FileName)
	}

	return strings.Join([]string{
		"<b>Verify speaker</b>",
		"Sample: " + file,
		"Threshold: <code>" + html.EscapeString(threshold) + "</code>",
		"",
		"Send an audio file to check and a number to change the threshold, then press Verify.",
	}, "\n")
}

func (f *verifyForm) show() {
	f.render(f.text(), Buttons{
		{
			caption: "Verify",
			handler: func(*Button, *tgbotapi.Message) {
				probe, threshold := f.snapshot()
				go f.submit(probe, threshold)
			},
		},
	})
}
