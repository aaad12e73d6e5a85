package kernel_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create amount from cents", func(t *testing.T) {
		m, err := kernel.NewMoney(1050)

		require.NoError(t, err)
		assert.Equal(t, int64(1050), m.Cents())
		assert.Equal(t, "10.50", m.String())
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should fail with negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(1000)
		b, _ := kernel.NewMoney(250)

		assert.Equal(t, int64(1250), a.Add(b).Cents())
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		price, _ := kernel.NewMoney(399)

		subtotal, err := price.MultiplyBy(3)

		require.NoError(t, err)
		assert.Equal(t, int64(1197), subtotal.Cents())
	})

	t.Run("should fail multiplying by negative quantity", func(t *testing.T) {
		price, _ := kernel.NewMoney(399)

		_, err := price.MultiplyBy(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should compare amounts", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(100)
		c, _ := kernel.NewMoney(101)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
