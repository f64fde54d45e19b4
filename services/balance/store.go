package balance

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Store holds the last observed balance of every configured address. It is
// shared between the sampler, which writes, and the status bar, which reads
// and occasionally fills a missing entry.
type Store struct {
	mx        sync.RWMutex
	addresses []string
	entries   map[string]Entry
}

func NewStore(addresses []string) *Store {
	s := &Store{
		addresses: make([]string, 0, len(addresses)),
		entries:   make(map[string]Entry, len(addresses)),
	}
	for _, a := range addresses {
		if _, ok := s.entries[a]; ok {
			continue
		}
		s.addresses = append(s.addresses, a)
		s.entries[a] = Entry{}
	}
	return s
}

func (s *Store) Get(address string) (decimal.Decimal, bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	e, ok := s.entries[address]
	if !ok || !e.Known {
		return decimal.Decimal{}, false
	}
	return e.Balance, true
}

func (s *Store) Contains(address string) bool {
	s.mx.RLock()
	defer s.mx.RUnlock()

	_, ok := s.entries[address]
	return ok
}

// Set records a balance. Addresses outside the configured set are rejected.
func (s *Store) Set(address string, v decimal.Decimal) bool {
	s.mx.Lock()
	defer s.mx.Unlock()

	if _, ok := s.entries[address]; !ok {
		return false
	}
	s.entries[address] = Entry{Balance: v, Known: true, UpdatedAt: time.Now().UTC()}
	return true
}

func (s *Store) SnapshotAll() map[string]Entry {
	s.mx.RLock()
	defer s.mx.RUnlock()

	out := make(map[string]Entry, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Addresses returns the configured addresses in configuration order.
func (s *Store) Addresses() []string {
	out := make([]string, len(s.addresses))
	copy(out, s.addresses)
	return out
}
