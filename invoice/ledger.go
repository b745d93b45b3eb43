package invoice

import (
	"encoding/json"
	"fmt"
	"time"
)

// HistoryLimit caps how many finalized invoices the ledger retains.
const HistoryLimit = 50

// HistoryRecord is a finalized invoice kept for review and regeneration.
// Items are copies, independent of any live item store.
type HistoryRecord struct {
	InvoiceNumber  int        `json:"invoice_number"`
	ClientName     string     `json:"client_name"`
	FiscalField    string     `json:"fiscal_field,omitempty"`
	Total          float64    `json:"total"`
	Currency       string     `json:"currency"`
	ConvertedTotal float64    `json:"converted_total"`
	Date           string     `json:"date"`
	Fingerprint    string     `json:"fingerprint"`
	Timestamp      time.Time  `json:"timestamp"`
	Items          []LineItem `json:"items"`
}

// Ledger is the bounded, most-recent-first collection of finalized
// invoices.
type Ledger struct {
	records []HistoryRecord
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Append inserts at the head and evicts the oldest records beyond
// HistoryLimit.
func (l *Ledger) Append(rec HistoryRecord) {
	items := make([]LineItem, len(rec.Items))
	copy(items, rec.Items)
	rec.Items = items

	l.records = append([]HistoryRecord{rec}, l.records...)
	if len(l.records) > HistoryLimit {
		l.records = l.records[:HistoryLimit]
	}
}

// List returns the records most-recent-first. The slice is a copy.
func (l *Ledger) List() []HistoryRecord {
	out := make([]HistoryRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Ledger) Len() int {
	return len(l.records)
}

func (l *Ledger) Get(index int) (HistoryRecord, error) {
	if index < 0 || index >= len(l.records) {
		return HistoryRecord{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return l.records[index], nil
}

// Delete removes exactly one record; the relative order of the remainder
// is preserved.
func (l *Ledger) Delete(index int) error {
	if index < 0 || index >= len(l.records) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	l.records = append(l.records[:index], l.records[index+1:]...)
	return nil
}

// Save serializes the full record list for the persistence collaborator.
func (l *Ledger) Save() ([]byte, error) {
	return json.Marshal(l.records)
}

// Load replaces the ledger contents with previously saved bytes. A corrupt
// payload leaves the ledger empty and reports the error; stored history is
// recoverable data, not something worth crashing over.
func (l *Ledger) Load(raw []byte) error {
	var records []HistoryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		l.records = nil
		return fmt.Errorf("decode history: %w", err)
	}
	if len(records) > HistoryLimit {
		records = records[:HistoryLimit]
	}
	l.records = records
	return nil
}
