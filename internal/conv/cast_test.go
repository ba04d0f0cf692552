//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint64(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint64(0)
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := IntToUint64(math.MaxInt)
		assert.NoError(t, err)
		assert.Equal(t, uint64(math.MaxInt), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint64(-1)
		assert.Error(t, err)
	})
}

func TestUint64ToInt(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := Uint64ToInt(123)
		assert.NoError(t, err)
		assert.Equal(t, 123, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt(math.MaxUint64)
		assert.Error(t, err)
	})
}

func TestMulUint64(t *testing.T) {
	got, err := MulUint64(32, 1<<20)
	assert.NoError(t, err)
	assert.Equal(t, uint64(32<<20), got)

	_, err = MulUint64(math.MaxUint64, 2)
	assert.Error(t, err)
}

func TestBitsToBytes(t *testing.T) {
	tests := []struct {
		bits uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{12, 2},
		{6400, 800},
		{math.MaxUint64, math.MaxUint64/8 + 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BitsToBytes(tt.bits), "bits=%d", tt.bits)
	}
}

func TestPackedBytes(t *testing.T) {
	got, err := PackedBytes(3, 4)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), got)

	got, err = PackedBytes(0, 100)
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), got)

	_, err = PackedBytes(-1, 4)
	assert.Error(t, err)

	_, err = PackedBytes(3, -4)
	assert.Error(t, err)

	_, err = PackedBytes(math.MaxInt, math.MaxInt)
	assert.Error(t, err)
}
