package tbot

import (
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

type Schedule struct {
	c *cron.Cron
}

func NewSchedule() *Schedule {
	return &Schedule{
		c: cron.New(),
	}
}

// Planning spec в формате "минуты часы день_месяца месяц день_недели" или @every 1h
func (s *Schedule) Planning(spec string, f func()) error {
	_, err := s.c.AddFunc(spec, f)
	return errors.Wrap(err, "cron spec error")
}

func (s *Schedule) Start() {
	if len(s.c.Entries()) > 0 {
		s.c.Start()
	}
}

func (s *Schedule) Stop() {
	<-s.c.Stop().Done()
}
