package services

import "sync"

// TableLocks hands out one mutex per table id. Order creation and payment
// settlement take the table's lock around their read-then-write sequences,
// so two concurrent submissions cannot both miss an existing active order,
// and a settlement cannot release a table under a concurrent mutation.
type TableLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewTableLocks() *TableLocks {
	return &TableLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for tableID and returns the unlock func
func (l *TableLocks) Lock(tableID string) func() {
	l.mu.Lock()
	m, ok := l.locks[tableID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[tableID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
