package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{price: 12.50, want: 1250},
		{price: 19.99, want: 1999},
		{price: 0.29, want: 29},
		{price: 1.005, want: 100},
		{price: 7.125, want: 713},
		{price: 100, want: 10000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToMinorUnits(tt.price), "price %v", tt.price)
	}
}

func TestTrackingDetail(t *testing.T) {
	assert.Equal(t, "order paid", TrackingDetail(TrackingOrderPaid))
	assert.Equal(t, "order created", TrackingDetail(TrackingOrderCreated))
	assert.Equal(t, "delivered", TrackingDetail("delivered"))
}

func TestPage_Normalize(t *testing.T) {
	assert.Equal(t, Page{Skip: 0, Limit: DefaultPageLimit}, Page{Skip: -3}.Normalize())
	assert.Equal(t, Page{Skip: 10, Limit: MaxPageLimit}, Page{Skip: 10, Limit: 1000}.Normalize())
	assert.Equal(t, Page{Skip: 5, Limit: 7}, Page{Skip: 5, Limit: 7}.Normalize())
}

func TestProviderError(t *testing.T) {
	cause := errors.New("card declined")
	err := error(NewProviderError("create session", cause))

	assert.ErrorIs(t, err, ErrProvider)
	assert.ErrorIs(t, err, cause)

	var pe ProviderError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, "create session", pe.Op)
}

func TestPayment_Amount(t *testing.T) {
	assert.Equal(t, 12.5, Payment{AmountMinor: 1250}.Amount())
}
