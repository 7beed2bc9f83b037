package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "wordhoard-backend/pkg/errors"
)

func TestPayment_Split(t *testing.T) {
	payment := NewPayment(1000)

	part, err := payment.Split(250)
	require.NoError(t, err)

	assert.Equal(t, uint64(250), part.Value())
	assert.Equal(t, uint64(750), payment.Value())
}

func TestPayment_Split_ExactBalance(t *testing.T) {
	payment := NewPayment(100)

	part, err := payment.Split(100)
	require.NoError(t, err)

	assert.Equal(t, uint64(100), part.Value())
	assert.Equal(t, uint64(0), payment.Value())
}

func TestPayment_Split_Overdraw(t *testing.T) {
	payment := NewPayment(100)

	part, err := payment.Split(101)
	require.Error(t, err)
	assert.True(t, apperrors.IsInsufficientPayment(err))
	assert.Nil(t, part)

	// A rejected split leaves the balance untouched
	assert.Equal(t, uint64(100), payment.Value())
}

func TestPayment_Merge(t *testing.T) {
	payment := NewPayment(100)
	other := NewPayment(50)

	payment.Merge(other)

	assert.Equal(t, uint64(150), payment.Value())
	assert.Equal(t, uint64(0), other.Value())
}

func TestPayment_Merge_Nil(t *testing.T) {
	payment := NewPayment(100)
	payment.Merge(nil)
	assert.Equal(t, uint64(100), payment.Value())
}

func TestPayment_SplitMergeConservesValue(t *testing.T) {
	payment := NewPayment(1000)

	a, err := payment.Split(300)
	require.NoError(t, err)
	b, err := payment.Split(200)
	require.NoError(t, err)

	payment.Merge(a)
	payment.Merge(b)

	assert.Equal(t, uint64(1000), payment.Value())
}
