package directory

import (
	"context"
	"voice_access/recognition"
)

const (
	msgNoProbe   = "Please select an audio file to verify."
	msgVerifying = "Verifying..."
)

// VerifyWorkflow не трогает список дикторов и не очищает форму: тот же файл можно проверить с другим порогом
type VerifyWorkflow struct {
	service  IService
	status   IStatusView
	notifier INotifier
	seq      sequence
}

func (w *VerifyWorkflow) Submit(ctx context.Context, probe *recognition.Sample, threshold string) {
	if probe == nil {
		w.notifier.Notify(msgNoProbe)
		return
	}

	tag := w.seq.start(func() {
		w.status.SetStatus(inProgress(msgVerifying))
	})

	result, err := w.service.Verify(ctx, *probe, threshold)
	w.seq.apply(tag, func() {
		if err != nil {
			w.status.SetStatus(failed("Error: " + err.Error()))
			return
		}

		w.status.SetStatus(ClassifyVerification(result, threshold).Status())
	})
}
