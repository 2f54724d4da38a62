package http

import (
	"net/http"
	"testing"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int64
		wantErr error
	}{
		{name: "whole rubles", in: "600", want: 60000},
		{name: "two decimals", in: "599.99", want: 59999},
		{name: "one decimal", in: "12.5", want: 1250},
		{name: "zero", in: "0", want: 0},
		{name: "negative", in: "-1", wantErr: e.ErrInvalidPrice},
		{name: "garbage", in: "abc", wantErr: e.ErrInvalidPrice},
		{name: "three decimals", in: "1.999", wantErr: e.ErrPricePrecision},
		{name: "over limit", in: "1000000001", wantErr: e.ErrInvalidPrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsePriceToCents(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParsePriceToCentsEmpty(t *testing.T) {
	_, err := parsePriceToCents("  ")
	require.Error(t, err)
}

func TestCentsToPrice(t *testing.T) {
	assert.Equal(t, "599.99", centsToPrice(59999))
	assert.Equal(t, "0.00", centsToPrice(0))
	assert.Equal(t, "25.00", centsToPrice(2500))
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrNotAuthenticated, http.StatusUnauthorized},
		{e.ErrForbidden, http.StatusForbidden},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrOrderNotFound, http.StatusNotFound},
		{e.ErrEmptyCart, http.StatusConflict},
		{e.ErrInvalidTransition, http.StatusConflict},
		{e.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{e.ErrWebhookVerificationFailed, http.StatusBadRequest},
		{e.Wrap("ctx", e.ErrItemNotFound), http.StatusNotFound},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, _ := ToHTTPResponse(tc.err)
		assert.Equal(t, tc.code, code, "error: %v", tc.err)
	}
}
