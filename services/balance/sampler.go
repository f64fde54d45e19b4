package balance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"wallet-monitor/pkg/ledger"
	"wallet-monitor/services/notification"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrUnknownAddress = errors.New("address is not monitored")

// Sampler polls every configured address once per cycle, compares the result
// against the store and dispatches an alert for each change.
type Sampler struct {
	connector    ledger.Connector
	nodeURL      string
	store        *Store
	notifier     notification.Service
	symbol       string
	queryTimeout time.Duration
	logger       *zap.SugaredLogger

	mx        sync.RWMutex
	lastCycle time.Time
}

func NewSampler(
	connector ledger.Connector,
	nodeURL string,
	store *Store,
	notifier notification.Service,
	symbol string,
	queryTimeout time.Duration,
	logger *zap.SugaredLogger,
) (*Sampler, error) {
	if connector == nil {
		return nil, errors.New("[balance_sampler] invalid ledger connector")
	}
	if nodeURL == "" {
		return nil, errors.New("[balance_sampler] invalid node url")
	}
	if store == nil {
		return nil, errors.New("[balance_sampler] invalid store")
	}
	if notifier == nil {
		return nil, errors.New("[balance_sampler] invalid notification service")
	}
	if symbol == "" {
		return nil, errors.New("[balance_sampler] invalid token symbol")
	}
	if queryTimeout <= 0 {
		return nil, errors.New("[balance_sampler] invalid query timeout")
	}
	if logger == nil {
		return nil, errors.New("[balance_sampler] invalid logger")
	}

	return &Sampler{
		connector:    connector,
		nodeURL:      nodeURL,
		store:        store,
		notifier:     notifier,
		symbol:       symbol,
		queryTimeout: queryTimeout,
		logger:       logger,
	}, nil
}

// Baseline runs the first pass over an empty store. It records balances and
// never notifies.
func (s *Sampler) Baseline(ctx context.Context) {
	s.logger.Infof("establishing baseline for %d addresses", len(s.store.Addresses()))
	s.RunCycle(ctx)
}

// RunCycle samples every address in configuration order. A connection
// failure skips the whole cycle and a query failure skips one address; in
// both cases the stored value is left as it was.
func (s *Sampler) RunCycle(ctx context.Context) []BalanceChanged {
	client, err := s.connect(ctx)
	if err != nil {
		s.logger.Warnf("failed to connect to node %s, skipping cycle: %v", s.nodeURL, err)
		return nil
	}
	defer client.Close()

	var events []BalanceChanged
	for _, address := range s.store.Addresses() {
		current, err := s.query(ctx, client, address)
		if err != nil {
			s.logger.Warnf("failed to get balance for %s: %v", TruncateAddress(address), err)
			continue
		}

		if event, ok := s.compare(address, current); ok {
			message := event.Message(s.symbol)
			s.logger.Infof("balance changed for %s: %s", TruncateAddress(address), FormatDelta(event.Delta))

			res := s.notifier.Dispatch(ctx, message)
			if len(res.Failed) > 0 {
				s.logger.Warnf("alert for %s not delivered on %v", TruncateAddress(address), res.Failed)
			}
			events = append(events, event)
		}

		s.store.Set(address, current)
	}

	s.mx.Lock()
	s.lastCycle = time.Now().UTC()
	s.mx.Unlock()

	return events
}

// FetchOne reads a single address outside the regular cycle and stores it.
// It never notifies.
func (s *Sampler) FetchOne(ctx context.Context, address string) (decimal.Decimal, error) {
	if !s.store.Contains(address) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrUnknownAddress, TruncateAddress(address))
	}

	client, err := s.connect(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	defer client.Close()

	current, err := s.query(ctx, client, address)
	if err != nil {
		return decimal.Decimal{}, err
	}

	s.store.Set(address, current)
	return current, nil
}

// LastCycle is the completion time of the latest cycle that reached the
// node, or the zero time.
func (s *Sampler) LastCycle() time.Time {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.lastCycle
}

// connect bounds the dial and the probe by the query timeout. The caller's
// context may never be cancelled.
func (s *Sampler) connect(ctx context.Context) (ledger.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return s.connector.Connect(ctx, s.nodeURL)
}

func (s *Sampler) query(ctx context.Context, client ledger.Client, address string) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	raw, err := client.QueryBalance(ctx, address)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return FromSmallestUnits(raw), nil
}

func (s *Sampler) compare(address string, current decimal.Decimal) (BalanceChanged, bool) {
	previous, known := s.store.Get(address)
	if !known || previous.Equal(current) {
		return BalanceChanged{}, false
	}
	return NewBalanceChanged(address, previous, current), true
}
