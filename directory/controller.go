package directory

import (
	"context"
	"github.com/pkg/errors"
	"log"
)

// Controller связывает сценарии с областями, которые им принадлежат.
// Каждая область пишется только своим сценарием, поэтому сценарии могут выполняться одновременно.
type Controller struct {
	Loader *Loader
	Enroll *EnrollWorkflow
	Verify *VerifyWorkflow
	Delete *DeleteWorkflow
	Reload *ReloadWorkflow

	logger *log.Logger
}

type option func(c *Controller)

func NewController(service IService, regions Regions, opt ...option) (*Controller, error) {
	if service == nil {
		return nil, errors.New("service is required")
	}
	if err := regions.validate(); err != nil {
		return nil, err
	}

	c := &Controller{logger: log.Default()}
	for _, f := range opt {
		f(c)
	}

	c.Loader = &Loader{
		service: service,
		view:    regions.List,
		logger:  c.logger,
	}
	c.Enroll = &EnrollWorkflow{
		service:  service,
		status:   regions.EnrollStatus,
		form:     regions.EnrollForm,
		notifier: regions.Notifier,
		loader:   c.Loader,
	}
	c.Verify = &VerifyWorkflow{
		service:  service,
		status:   regions.VerifyResult,
		notifier: regions.Notifier,
	}
	c.Delete = &DeleteWorkflow{
		service:   service,
		confirmer: regions.Confirmer,
		notifier:  regions.Notifier,
		loader:    c.Loader,
	}
	c.Reload = &ReloadWorkflow{
		service:  service,
		notifier: regions.Notifier,
		loader:   c.Loader,
		logger:   c.logger,
	}

	return c, nil
}

// Init первичная загрузка списка
func (c *Controller) Init(ctx context.Context) {
	c.Loader.Load(ctx)
}

func WithLogger(l *log.Logger) option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

func (r Regions) validate() error {
	switch {
	case r.List == nil:
		return errors.New("list region is required")
	case r.EnrollStatus == nil:
		return errors.New("enroll status region is required")
	case r.EnrollForm == nil:
		return errors.New("enroll form is required")
	case r.VerifyResult == nil:
		return errors.New("verify result region is required")
	case r.Notifier == nil:
		return errors.New("notifier is required")
	case r.Confirmer == nil:
		return errors.New("confirmer is required")
	}

	return nil
}
