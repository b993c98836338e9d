package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-stock/internal/domain"
)

func TestValidationError(t *testing.T) {
	verr := domain.NewValidationError()
	assert.NoError(t, verr.OrNil())

	verr.Add("price", "gt=0")
	verr.Add("price", "required")
	verr.Add("name", "required")

	err := verr.OrNil()
	assert.Error(t, err)
	assert.Equal(t, "gt=0", verr.Fields["price"])
	assert.Equal(t, "validación fallida (name: required, price: gt=0)", err.Error())
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}
