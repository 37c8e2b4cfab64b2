package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, pageOffset(1))
	assert.Equal(t, 6, pageOffset(2))
	assert.Equal(t, 12, pageOffset(3))
}

func TestTotalPageCount(t *testing.T) {
	assert.Equal(t, 0, totalPageCount(0))
	assert.Equal(t, 1, totalPageCount(1))
	assert.Equal(t, 1, totalPageCount(6))
	assert.Equal(t, 2, totalPageCount(7))
	assert.Equal(t, 2, totalPageCount(12))
	assert.Equal(t, 3, totalPageCount(13))
}
