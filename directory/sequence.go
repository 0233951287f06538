package directory

import "sync"

// sequence помечает отправленные запросы, ответ применяется только для последнего.
// Выдача номера и отрисовка идут под одной блокировкой, иначе запоздавший "в процессе"
// может перекрыть результат более нового запроса.
type sequence struct {
	mx sync.Mutex
	n  uint64
}

// start выдает номер запроса и рисует начальное состояние
func (s *sequence) start(render func()) uint64 {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.n++
	render()
	return s.n
}

// apply рисует результат, только если с момента start не было нового запроса
func (s *sequence) apply(tag uint64, render func()) bool {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.n != tag {
		return false
	}

	render()
	return true
}
