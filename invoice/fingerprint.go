package invoice

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultClientName is substituted when the client-name field is blank.
const DefaultClientName = "Consumidor Final"

// SnapshotItem is the economically meaningful part of a line item. Item ids
// are deliberately left out so the fingerprint does not depend on them.
type SnapshotItem struct {
	Name      string
	Quantity  float64
	UnitPrice float64
}

// Snapshot is the canonical content an invoice fingerprint is computed over.
type Snapshot struct {
	InvoiceNumber int
	ClientName    string
	Total         float64
	Items         []SnapshotItem
}

// NewSnapshot builds the fingerprint input for a finalizing invoice,
// applying the client-name default and copying items without their ids.
func NewSnapshot(invoiceNumber int, clientName string, total float64, items []LineItem) Snapshot {
	name := strings.TrimSpace(clientName)
	if name == "" {
		name = DefaultClientName
	}
	snapItems := make([]SnapshotItem, len(items))
	for i, it := range items {
		snapItems[i] = SnapshotItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}
	return Snapshot{
		InvoiceNumber: invoiceNumber,
		ClientName:    name,
		Total:         total,
		Items:         snapItems,
	}
}

// Hasher produces a digest over a byte payload. The seam exists so the
// session can abort cleanly when the primitive is unavailable.
type Hasher interface {
	Sum(data []byte) ([]byte, error)
}

type sha256Hasher struct{}

func (sha256Hasher) Sum(data []byte) ([]byte, error) {
	d := sha256.Sum256(data)
	return d[:], nil
}

// NewHasher returns the default SHA-256 hasher.
func NewHasher() Hasher {
	return sha256Hasher{}
}

// canonical serializes the snapshot with a stable field order and
// full-precision numbers, one field per line: header fields, then one line
// per item, then the timestamp.
func canonical(snap Snapshot, at time.Time) []byte {
	var b strings.Builder
	b.WriteString("invoice:")
	b.WriteString(strconv.Itoa(snap.InvoiceNumber))
	b.WriteString("\nclient:")
	b.WriteString(snap.ClientName)
	b.WriteString("\ntotal:")
	b.WriteString(strconv.FormatFloat(snap.Total, 'g', -1, 64))
	for _, it := range snap.Items {
		b.WriteString("\nitem:")
		b.WriteString(it.Name)
		b.WriteString("|")
		b.WriteString(strconv.FormatFloat(it.Quantity, 'g', -1, 64))
		b.WriteString("|")
		b.WriteString(strconv.FormatFloat(it.UnitPrice, 'g', -1, 64))
	}
	b.WriteString("\nts:")
	b.WriteString(at.UTC().Format(time.RFC3339Nano))
	return []byte(b.String())
}

// FingerprintAt hashes the canonical serialization of the snapshot together
// with the given timestamp and renders it as lowercase hex. The timestamp
// is part of the hashed payload, so the same snapshot fingerprinted at two
// moments yields two different values.
func FingerprintAt(h Hasher, snap Snapshot, at time.Time) (string, error) {
	sum, err := h.Sum(canonical(snap, at))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashUnavailable, err)
	}
	return hex.EncodeToString(sum), nil
}

// Fingerprint is FingerprintAt with the current time.
func Fingerprint(h Hasher, snap Snapshot) (string, error) {
	return FingerprintAt(h, snap, time.Now())
}

// CodePayload is the short string encoded into the scannable code: the
// invoice number plus the first 16 hex characters of its fingerprint.
func CodePayload(invoiceNumber int, fingerprint string) string {
	prefix := fingerprint
	if len(prefix) > 16 {
		prefix = prefix[:16]
	}
	return fmt.Sprintf("FAC-%d-%s", invoiceNumber, prefix)
}
