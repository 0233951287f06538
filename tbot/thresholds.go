package tbot

import (
	"github.com/pkg/errors"
	"log"
	"strconv"
	"sync"
	"voice_access/storage"
)

const (
	thresholdsFileName = "thresholds"
	fallbackThreshold  = "0.65"
)

// thresholds порог проверки, введенный в каждом чате. Значение не проверяется, его проверяет сервис.
type thresholds struct {
	def     string
	storage storage.IStorage
	values  map[string]string
	logger  *log.Logger
	mx      sync.Mutex
	one     sync.Once
}

func newThresholds(def string, st storage.IStorage, logger *log.Logger) *thresholds {
	if def == "" {
		def = fallbackThreshold
	}

	return &thresholds{
		def:     def,
		storage: st,
		values:  map[string]string{},
		logger:  logger,
	}
}

func (th *thresholds) get(chatID int64) string {
	th.mx.Lock()
	defer th.mx.Unlock()

	th.restore()
	if v, ok := th.values[strconv.FormatInt(chatID, 10)]; ok {
		return v
	}

	return th.def
}

func (th *thresholds) set(chatID int64, v string) {
	th.mx.Lock()
	defer th.mx.Unlock()

	th.restore()
	th.values[strconv.FormatInt(chatID, 10)] = v
	if err := th.storage.StoreObject(thresholdsFileName, th.values); err != nil {
		th.logger.Println(errors.Wrap(err, "store thresholds error"))
	}
}

func (th *thresholds) restore() {
	th.one.Do(func() {
		if data, err := th.storage.RestoreObject(thresholdsFileName); err == nil {
			th.values = castMap[string](data)
		}
	})
}
