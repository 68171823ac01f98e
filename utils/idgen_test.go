package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGeneratorNewID(t *testing.T) {
	gen := UUIDGenerator{}
	first := gen.NewID()
	second := gen.NewID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestUUIDGeneratorInvoiceNumber(t *testing.T) {
	gen := UUIDGenerator{}
	now := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

	number := gen.NewInvoiceNumber(now)
	assert.Regexp(t, regexp.MustCompile(`^INV-202608-\d{4}$`), number)
}

func TestSequenceGenerator(t *testing.T) {
	gen := &SequenceGenerator{Prefix: "rec"}
	now := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "rec-1", gen.NewID())
	assert.Equal(t, "rec-2", gen.NewID())
	assert.Equal(t, "INV-202601-0003", gen.NewInvoiceNumber(now))
}
