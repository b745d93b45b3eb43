package invoice

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(n int) HistoryRecord {
	return HistoryRecord{
		InvoiceNumber: n,
		ClientName:    fmt.Sprintf("client-%d", n),
		Total:         float64(n),
		Currency:      "USD",
		Date:          "01/03/2026",
		Fingerprint:   fmt.Sprintf("fp-%d", n),
		Timestamp:     time.Date(2026, 3, 1, 0, 0, 0, n, time.UTC),
		Items: []LineItem{
			{ID: fmt.Sprintf("id-%d", n), Name: "Widget", Quantity: 1, UnitPrice: float64(n)},
		},
	}
}

func TestLedgerAppendCapsAtLimit(t *testing.T) {
	l := NewLedger()
	for n := 1; n <= HistoryLimit+1; n++ {
		l.Append(record(n))
	}

	got := l.List()
	require.Len(t, got, HistoryLimit)
	assert.Equal(t, HistoryLimit+1, got[0].InvoiceNumber, "head is most recent")
	assert.Equal(t, 2, got[len(got)-1].InvoiceNumber, "first appended was evicted")
}

func TestLedgerAppendCopiesItems(t *testing.T) {
	l := NewLedger()
	rec := record(1)
	l.Append(rec)

	rec.Items[0].Name = "mutated"
	stored, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Widget", stored.Items[0].Name)
}

func TestLedgerDelete(t *testing.T) {
	l := NewLedger()
	for n := 1; n <= 3; n++ {
		l.Append(record(n))
	}
	// order is now 3, 2, 1

	require.NoError(t, l.Delete(1))
	got := l.List()
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].InvoiceNumber)
	assert.Equal(t, 1, got[1].InvoiceNumber)

	assert.ErrorIs(t, l.Delete(5), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Delete(-1), ErrIndexOutOfRange)
}

func TestLedgerGetOutOfRange(t *testing.T) {
	l := NewLedger()
	_, err := l.Get(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLedgerSaveLoadRoundTrip(t *testing.T) {
	l := NewLedger()
	for n := 1; n <= 3; n++ {
		l.Append(record(n))
	}
	raw, err := l.Save()
	require.NoError(t, err)

	restored := NewLedger()
	require.NoError(t, restored.Load(raw))
	assert.Equal(t, l.List(), restored.List())
}

func TestLedgerLoadCorruptStartsEmpty(t *testing.T) {
	l := NewLedger()
	l.Append(record(1))

	err := l.Load([]byte(`{"not":"a list"`))
	require.Error(t, err)
	assert.Zero(t, l.Len(), "corrupt history means starting over, not crashing")
}
