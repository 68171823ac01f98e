package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Generator produces record identifiers and invoice numbers. It is injected
// into the engine so tests can supply deterministic values.
type Generator interface {
	NewID() string
	NewInvoiceNumber(now time.Time) string
}

// UUIDGenerator is the production Generator. Record ids are random UUIDs;
// invoice numbers keep the historical INV-{year}{month}-{suffix} shape, with
// the suffix taken from the current millisecond timestamp. Two invoices
// generated in the same millisecond can collide on number; the number is a
// human-facing label, not a key.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

func (UUIDGenerator) NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d%02d-%04d", now.Year(), int(now.Month()), now.UnixMilli()%10000)
}

// SequenceGenerator hands out sequential ids and invoice numbers. For tests.
type SequenceGenerator struct {
	Prefix string
	n      int
}

func (g *SequenceGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.Prefix, g.n)
}

func (g *SequenceGenerator) NewInvoiceNumber(now time.Time) string {
	g.n++
	return fmt.Sprintf("INV-%d%02d-%04d", now.Year(), int(now.Month()), g.n)
}
