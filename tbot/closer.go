package tbot

import "sync"

// Closer выполняет завершающие действия в порядке, обратном добавлению
type Closer struct {
	keys     []string
	handlers map[string]func() // мапа что б не добавлялось дубликатов
	mx       sync.Mutex
}

func NewCloser() *Closer {
	return &Closer{handlers: map[string]func(){}}
}

func (c *Closer) Append(key string, f func()) {
	c.mx.Lock()
	defer c.mx.Unlock()

	if _, ok := c.handlers[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.handlers[key] = f
}

func (c *Closer) Close() {
	c.mx.Lock()
	defer c.mx.Unlock()

	for i := len(c.keys) - 1; i >= 0; i-- {
		c.handlers[c.keys[i]]()
	}

	c.keys = nil
	c.handlers = map[string]func(){}
}
