package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$0.05", FormatCurrency(5))
	assert.Equal(t, "$9.99", FormatCurrency(999))
	assert.Equal(t, "$1,234.56", FormatCurrency(123456))
	assert.Equal(t, "$1,000,000.00", FormatCurrency(100000000))
	assert.Equal(t, "-$12.34", FormatCurrency(-1234))
}

func TestFormatDateToLocal(t *testing.T) {
	date := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Jan 2, 2026", FormatDateToLocal(date))
}

func TestGeneratePagination(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, GeneratePagination(2, 5))
	assert.Equal(t, []string{"1", "2", "3", "...", "9", "10"}, GeneratePagination(1, 10))
	assert.Equal(t, []string{"1", "2", "...", "8", "9", "10"}, GeneratePagination(9, 10))
	assert.Equal(t, []string{"1", "...", "4", "5", "6", "...", "10"}, GeneratePagination(5, 10))
}

func TestGeneratePagination_NoPages(t *testing.T) {
	assert.Empty(t, GeneratePagination(1, 0))
}
