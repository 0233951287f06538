package directory

import (
	"context"
	"fmt"
)

type DeleteWorkflow struct {
	service   IService
	confirmer IConfirmer
	notifier  INotifier
	loader    *Loader
}

func (w *DeleteWorkflow) Delete(ctx context.Context, name string) {
	if !w.confirmer.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.", name)) {
		return
	}

	if err := w.service.Delete(ctx, name); err != nil {
		w.notifier.Notify("Error: " + describe(err))
		return
	}

	w.loader.Load(ctx)
}
