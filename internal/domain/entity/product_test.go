package entity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

func TestProduct_CanApply(t *testing.T) {
	cases := []struct {
		qty, delta int
		want       bool
	}{
		{5, 10, true},
		{5, -5, true},
		{5, -6, false},
		{0, 0, true},
		{0, -1, false},
		{5, math.MinInt64, false},
		{5, math.MaxInt64, true},
	}
	for _, c := range cases {
		p := &entity.Product{Quantity: c.qty}
		assert.Equal(t, c.want, p.CanApply(c.delta), "cantidad %d, delta %d", c.qty, c.delta)
	}
}

func TestProduct_Overflows(t *testing.T) {
	p := &entity.Product{Quantity: 5}
	assert.False(t, p.Overflows(entity.MaxQuantity-5))
	assert.True(t, p.Overflows(entity.MaxQuantity-4))
	assert.True(t, p.Overflows(math.MaxInt64))
	assert.False(t, p.Overflows(math.MinInt64))

	assert.True(t, entity.ValidChange(entity.MinChange))
	assert.False(t, entity.ValidChange(entity.MaxChange+1))
}
