package deskclient

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/m04kA/SMC-DeskService/internal/domain"
)

// DeskStore хранит последний снимок списка столов
// Снимок неизменяемый: Replace публикует новый срез, уже выданные срезы не меняются.
// Подписчики получают каждый новый снимок, медленный подписчик видит только последний
type DeskStore struct {
	source  DeskSource
	current atomic.Pointer[[]domain.Desk]

	mu     sync.Mutex
	subs   map[uint64]chan []domain.Desk
	nextID uint64
}

// NewDeskStore создает хранилище с пустым снимком
func NewDeskStore(source DeskSource) *DeskStore {
	s := &DeskStore{
		source: source,
		subs:   make(map[uint64]chan []domain.Desk),
	}
	empty := []domain.Desk{}
	s.current.Store(&empty)
	return s
}

// Snapshot возвращает текущий снимок. Срез только для чтения
func (s *DeskStore) Snapshot() []domain.Desk {
	return *s.current.Load()
}

// Refresh загружает столы из источника и заменяет снимок
// При ошибке прежний снимок остаётся
func (s *DeskStore) Refresh(ctx context.Context) error {
	desks, err := s.source.ListDesks(ctx)
	if err != nil {
		return fmt.Errorf("refresh desks: %w", err)
	}
	s.Replace(desks)
	return nil
}

// Replace публикует новый снимок целиком и уведомляет подписчиков
func (s *DeskStore) Replace(desks []domain.Desk) {
	snapshot := cloneDesks(desks)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Store(&snapshot)
	for _, ch := range s.subs {
		publishLatest(ch, snapshot)
	}
}

// Subscribe возвращает канал новых снимков и функцию отписки
// После отписки канал закрывается
func (s *DeskStore) Subscribe() (<-chan []domain.Desk, func()) {
	ch := make(chan []domain.Desk, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsubscribe
}

// publishLatest кладёт снимок в канал с буфером 1, вытесняя непрочитанный
// Вызывается под s.mu, поэтому писатель в канал один
func publishLatest(ch chan []domain.Desk, snapshot []domain.Desk) {
	select {
	case ch <- snapshot:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- snapshot:
	default:
	}
}

func cloneDesks(desks []domain.Desk) []domain.Desk {
	result := make([]domain.Desk, len(desks))
	for i, d := range desks {
		d.ReservedSlots = slices.Clone(d.ReservedSlots)
		result[i] = d
	}
	return result
}
