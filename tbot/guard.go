package tbot

import (
	"github.com/pkg/errors"
	"log"
	"strconv"
	"sync"
	"voice_access/storage"
)

const verifiedFileName = "verified"

// guard пускает к управлению дикторами только чаты, приславшие пароль
type guard struct {
	pass     string
	storage  storage.IStorage
	verified map[string]bool
	logger   *log.Logger
	mx       sync.Mutex
	one      sync.Once
}

func newGuard(pass string, st storage.IStorage, logger *log.Logger) *guard {
	return &guard{
		pass:     pass,
		storage:  st,
		verified: map[string]bool{},
		logger:   logger,
	}
}

func (g *guard) check(p string, chatID int64) bool {
	g.mx.Lock()
	defer g.mx.Unlock()

	g.one.Do(func() {
		if data, err := g.storage.RestoreObject(verifiedFileName); err == nil {
			g.verified = castMap[bool](data)
		}
	})

	key := strconv.FormatInt(chatID, 10)
	if g.verified[key] {
		return true
	}

	if p != g.pass {
		return false
	}

	g.verified[key] = true
	if err := g.storage.StoreObject(verifiedFileName, g.verified); err != nil {
		g.logger.Println(errors.Wrap(err, "store verified file error"))
	}

	return true
}
