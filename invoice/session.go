package invoice

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"
)

// CounterStart is the first invoice number ever issued.
const CounterStart = 1001

const (
	counterKey = "invoice_counter"
	historyKey = "invoice_history"
)

const dateLayout = "02/01/2006"

// FinalizeInput carries the user selections that accompany a finalize
// action. TaxRatePercent is the already-parsed value; use ParseTaxRate on
// raw text first.
type FinalizeInput struct {
	ClientName     string
	FiscalField    string
	TaxRatePercent float64
	Currency       string
}

// Session owns the state of the invoice being built: the item store, the
// invoice counter and the history ledger. All mutation goes through its
// methods; a single mutex keeps finalize exclusive against every other
// operation, so no state moves while a finalize is in flight.
type Session struct {
	mu      sync.Mutex
	store   *ItemStore
	ledger  *Ledger
	kv      KV
	hasher  Hasher
	now     func() time.Time
	counter int
}

// Option customizes a Session; used by tests to inject the hasher and
// clock.
type Option func(*Session)

func WithHasher(h Hasher) Option {
	return func(s *Session) { s.hasher = h }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession restores counter and history from the persistence collaborator
// and starts in the building state. A corrupt history payload is logged and
// treated as an empty ledger.
func NewSession(kv KV, opts ...Option) (*Session, error) {
	s := &Session{
		store:   NewItemStore(),
		ledger:  NewLedger(),
		kv:      kv,
		hasher:  NewHasher(),
		now:     time.Now,
		counter: CounterStart,
	}
	for _, opt := range opts {
		opt(s)
	}

	if raw, ok, err := kv.Get(counterKey); err != nil {
		return nil, fmt.Errorf("load counter: %w", err)
	} else if ok {
		if n, err := strconv.Atoi(string(raw)); err == nil && n >= CounterStart {
			s.counter = n
		}
	}

	if raw, ok, err := kv.Get(historyKey); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	} else if ok {
		if err := s.ledger.Load(raw); err != nil {
			log.Printf("history corrupt, starting empty: %v", err)
		}
	}

	return s, nil
}

// AddItem validates and appends a line item to the current build.
func (s *Session) AddItem(c ItemCandidate) (LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Add(c)
}

// RemoveItem drops a line item; unknown ids are a no-op.
func (s *Session) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Remove(id)
}

// Items returns the pending line items in insertion order.
func (s *Session) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.List()
}

// NextNumber is the number the next finalized invoice will carry.
func (s *Session) NextNumber() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

// Totals computes the money view of the current items. Pure with respect to
// session state; call it as often as needed.
func (s *Session) Totals(taxRatePercent float64, currency string) (Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeTotals(s.store.List(), taxRatePercent, currency)
}

// Finalize turns the current build into a history record: totals, snapshot,
// fingerprint, append, persist, then clear the store and advance the
// counter. All-or-nothing: any failure leaves the store, counter and ledger
// exactly as they were.
func (s *Session) Finalize(in FinalizeInput) (HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.store.List()
	totals, err := ComputeTotals(items, in.TaxRatePercent, in.Currency)
	if err != nil {
		return HistoryRecord{}, err
	}

	snap := NewSnapshot(s.counter, in.ClientName, totals.Total, items)
	now := s.now()
	fp, err := FingerprintAt(s.hasher, snap, now)
	if err != nil {
		return HistoryRecord{}, err
	}

	rec := HistoryRecord{
		InvoiceNumber:  s.counter,
		ClientName:     snap.ClientName,
		FiscalField:    in.FiscalField,
		Total:          totals.Total,
		Currency:       totals.Currency,
		ConvertedTotal: totals.ConvertedTotal,
		Date:           now.Format(dateLayout),
		Fingerprint:    fp,
		Timestamp:      now.UTC(),
		Items:          items,
	}

	s.ledger.Append(rec)
	if err := s.persistHistory(); err != nil {
		// roll the append back so memory and storage stay consistent
		_ = s.ledger.Delete(0)
		return HistoryRecord{}, err
	}

	s.store.Clear()
	s.counter++
	s.persistCounter()

	return rec, nil
}

// History lists finalized invoices, most recent first.
func (s *Session) History() []HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.List()
}

// HistoryAt fetches one record by its position in History().
func (s *Session) HistoryAt(index int) (HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Get(index)
}

// DeleteHistory removes one record and persists the shortened list.
func (s *Session) DeleteHistory(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ledger.Delete(index); err != nil {
		return err
	}
	return s.persistHistory()
}

// Regenerate loads a past invoice's items and number back into the build
// state, overwriting whatever was pending. The items get fresh ids; only
// their content is restored.
func (s *Session) Regenerate(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.ledger.Get(index)
	if err != nil {
		return err
	}

	items := make([]LineItem, len(rec.Items))
	for i, it := range rec.Items {
		items[i] = LineItem{
			ID:        newItemID(),
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	s.store.replace(items)
	s.counter = rec.InvoiceNumber
	s.persistCounter()
	return nil
}

func (s *Session) persistHistory() error {
	raw, err := s.ledger.Save()
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.kv.Set(historyKey, raw); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

// persistCounter is best-effort: the in-memory counter stays authoritative
// and the next successful write catches the store up (last-write-wins KV).
func (s *Session) persistCounter() {
	if err := s.kv.Set(counterKey, []byte(strconv.Itoa(s.counter))); err != nil {
		log.Printf("persist counter failed: %v", err)
	}
}
