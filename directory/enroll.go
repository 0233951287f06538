package directory

import (
	"context"
	"voice_access/recognition"
)

const (
	msgNoSamples = "Please select at least one audio file."
	msgEnrolling = "Uploading and enrolling... (This may take a moment)"
)

type EnrollWorkflow struct {
	service  IService
	status   IStatusView
	form     IForm
	notifier INotifier
	loader   *Loader
	seq      sequence
}

// Submit регистрирует диктора. Имя не проверяется, пустое или повторное имя отклонит сервис.
func (w *EnrollWorkflow) Submit(ctx context.Context, name string, samples []recognition.Sample) {
	if len(samples) == 0 {
		w.notifier.Notify(msgNoSamples)
		return
	}

	tag := w.seq.start(func() {
		w.status.SetStatus(inProgress(msgEnrolling))
	})

	msg, err := w.service.Enroll(ctx, name, samples)
	if err == nil {
		w.seq.apply(tag, func() {
			w.status.SetStatus(succeeded(msg))
			w.form.Reset()
		})

		// диктор уже добавлен, поэтому список обновляется и для устаревшего ответа
		w.loader.Load(ctx)
		return
	}

	w.seq.apply(tag, func() {
		if apiErr, ok := recognition.IsAPIError(err); ok {
			w.status.SetStatus(failed(apiErr.Message))
			return
		}

		w.status.SetStatus(failed("Error: " + err.Error()))
	})
}
