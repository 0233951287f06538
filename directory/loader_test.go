package directory

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_LoadSpeakers(t *testing.T) {
	f := newFixture(t)
	f.service.EXPECT().Speakers(gomock.Any()).Return([]string{"alice", "bob"}, nil)

	f.controller.Loader.Load(context.Background())

	assert.Equal(t, []string{"loading", "speakers:alice,bob"}, f.list.history())
	assert.Empty(t, f.logs.String())
}

func Test_LoadEmpty(t *testing.T) {
	f := newFixture(t)
	f.service.EXPECT().Speakers(gomock.Any()).Return([]string{}, nil)

	f.controller.Loader.Load(context.Background())

	assert.Equal(t, []string{"loading", "empty"}, f.list.history())
}

func Test_LoadError(t *testing.T) {
	f := newFixture(t)
	f.service.EXPECT().Speakers(gomock.Any()).Return(nil, errors.New("connection refused"))

	assert.NotPanics(t, func() {
		f.controller.Loader.Load(context.Background())
	})

	assert.Equal(t, []string{"loading", "error"}, f.list.history())
	assert.Contains(t, f.logs.String(), "load speakers error: connection refused")
}

func Test_LoadIdempotent(t *testing.T) {
	f := newFixture(t)
	f.service.EXPECT().Speakers(gomock.Any()).Return([]string{"alice", "bob"}, nil).Times(2)

	f.controller.Loader.Load(context.Background())
	first := f.list.history()
	f.controller.Loader.Load(context.Background())
	second := f.list.history()[len(first):]

	assert.Equal(t, first, second)
}

func Test_LoadStaleResponseDiscarded(t *testing.T) {
	f := newFixture(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		f.service.EXPECT().Speakers(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
			close(entered)
			<-release
			return []string{"old"}, nil
		}),
		f.service.EXPECT().Speakers(gomock.Any()).Return([]string{"new"}, nil),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.controller.Loader.Load(context.Background())
	}()

	<-entered
	f.controller.Loader.Load(context.Background())
	close(release)
	wg.Wait()

	assert.Equal(t, []string{"loading", "loading", "speakers:new"}, f.list.history())
}
