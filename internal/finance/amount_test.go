package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

var testCases = []CaseValuation{
	{ID: 1, Title: "قضية عقارية", Amount: 1000},
	{ID: 2, Title: "قضية تجارية", Amount: 12345},
	{ID: 3, Title: "نزاع عمالي", Amount: 1001},
}

func TestCaseValue(t *testing.T) {
	v, err := CaseValue(testCases, 2)
	require.NoError(t, err)
	assert.Equal(t, 12345.0, v)

	_, err = CaseValue(testCases, 99)
	assert.ErrorIs(t, err, ErrCaseNotFound)

	_, err = CaseValue(nil, 1)
	assert.ErrorIs(t, err, ErrCaseNotFound)
}

func TestResolveAmountFixed(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		want    float64
		wantErr bool
	}{
		{"positive amount passes through", 250.75, 250.75, false},
		{"one is valid", 1, 1, false},
		{"zero rejected", 0, 0, true},
		{"negative rejected", -5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Draft{Amount: tt.amount}
			got, err := d.ResolveAmount(testCases)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "amount", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAmountPercentage(t *testing.T) {
	d := Draft{IsPercentage: true, PercentageAmount: 12.5, CaseID: uintPtr(1)}
	got, err := d.ResolveAmount(testCases)
	require.NoError(t, err)
	assert.Equal(t, 125.00, got)

	// 100% of the case value is allowed
	d = Draft{IsPercentage: true, PercentageAmount: 100, CaseID: uintPtr(1)}
	got, err = d.ResolveAmount(testCases)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)
}

func TestResolveAmountRoundsHalfUp(t *testing.T) {
	// 12345 * 0.1% = 12.345 -> 12.35
	d := Draft{IsPercentage: true, PercentageAmount: 0.1, CaseID: uintPtr(2)}
	got, err := d.ResolveAmount(testCases)
	require.NoError(t, err)
	assert.Equal(t, 12.35, got)

	// 1001 * 12.5% = 125.125 -> 125.13
	d = Draft{IsPercentage: true, PercentageAmount: 12.5, CaseID: uintPtr(3)}
	got, err = d.ResolveAmount(testCases)
	require.NoError(t, err)
	assert.Equal(t, 125.13, got)
}

func TestResolveAmountPercentageValidation(t *testing.T) {
	tests := []struct {
		name      string
		draft     Draft
		wantField string
	}{
		{"missing case id", Draft{IsPercentage: true, PercentageAmount: 10}, "case_id"},
		{"unknown case id", Draft{IsPercentage: true, PercentageAmount: 10, CaseID: uintPtr(404)}, "case_id"},
		{"zero percentage", Draft{IsPercentage: true, PercentageAmount: 0, CaseID: uintPtr(1)}, "percentage_amount"},
		{"negative percentage", Draft{IsPercentage: true, PercentageAmount: -3, CaseID: uintPtr(1)}, "percentage_amount"},
		{"over one hundred", Draft{IsPercentage: true, PercentageAmount: 100.01, CaseID: uintPtr(1)}, "percentage_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.draft.ResolveAmount(testCases)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestResolveAmountDeterministic(t *testing.T) {
	d := Draft{IsPercentage: true, PercentageAmount: 33.33, CaseID: uintPtr(2)}
	first, err := d.ResolveAmount(testCases)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		again, err := d.ResolveAmount(testCases)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
