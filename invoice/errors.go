package invoice

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrHashUnavailable means the hashing primitive could not produce a
	// digest. Finalization must not proceed without a fingerprint.
	ErrHashUnavailable = errors.New("hash primitive unavailable")

	// ErrIndexOutOfRange is returned by history lookups with a bad index.
	ErrIndexOutOfRange = errors.New("history index out of range")
)

// UnknownCurrencyError reports a currency code outside the configured set.
// Normal callers pick from Currencies(), so hitting this is a programming
// or configuration error rather than a user-input one.
type UnknownCurrencyError struct {
	Code string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %q", e.Code)
}

// ValidationError aggregates per-field problems from a line-item candidate.
// All failing fields are reported together so the client can surface every
// violation at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
