package directory

import (
	"context"
	"github.com/pkg/errors"
	"log"
)

// Loader перечитывает список дикторов и полностью перерисовывает область списка
type Loader struct {
	service IService
	view    IListView
	logger  *log.Logger
	seq     sequence
}

func (l *Loader) Load(ctx context.Context) {
	tag := l.seq.start(l.view.ShowLoading)

	speakers, err := l.service.Speakers(ctx)
	l.seq.apply(tag, func() {
		if err != nil {
			l.view.ShowError()
			l.logger.Println(errors.Wrap(err, "load speakers error"))
			return
		}

		if len(speakers) == 0 {
			l.view.ShowEmpty()
			return
		}

		l.view.ShowSpeakers(speakers)
	})
}
