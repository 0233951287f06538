package directory

import (
	"context"
	"github.com/pkg/errors"
	"log"
)

// ReloadWorkflow просит сервис перечитать дикторов с диска и обновляет список
type ReloadWorkflow struct {
	service  IService
	notifier INotifier
	loader   *Loader
	logger   *log.Logger
}

func (w *ReloadWorkflow) Submit(ctx context.Context) {
	msg, err := w.service.Reload(ctx)
	if err != nil {
		w.logger.Println(errors.Wrap(err, "reload error"))
		w.notifier.Notify("Error: " + describe(err))
		return
	}

	w.notifier.Notify(msg)
	w.loader.Load(ctx)
}
