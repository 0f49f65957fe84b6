package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platelens/platelens/internal/domain"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{in: 95, expected: "95"},
		{in: 0.5, expected: "0.5"},
		{in: 12.345, expected: "12.3"},
		{in: 0.04, expected: "0"},
		{in: 7.96, expected: "8"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatAmount(tt.in))
		})
	}
}

func TestReportRows(t *testing.T) {
	summary := &domain.NutritionSummary{
		Items: []domain.FoodItem{
			{Name: "rice", ServingSize: "1 cup", Calories: 206, ProteinG: 4.3, CarbsG: 45, FatG: 0.4},
			{Name: "egg", Calories: 78},
		},
		Totals: domain.Macros{Calories: 284, ProteinG: 10.6, CarbsG: 45.6, FatG: 5.7},
	}

	rows := reportRows(summary)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"rice", "1 cup", "206", "4.3", "45", "0.4"}, rows[0])
	assert.Equal(t, "-", rows[1][1])
	assert.Equal(t, []string{"Total", "", "284", "10.6", "45.6", "5.7"}, rows[2])
}

func TestRenderAnalysis_NotFood(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderAnalysis(&buf, sampleAnalysis(`{"error":"not_food"}`)))

	assert.Contains(t, buf.String(), "does not appear to contain food")
	assert.NotContains(t, buf.String(), "Total")
}

func TestRenderAnalysis_NonObjectReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderAnalysis(&buf, sampleAnalysis(`[1,2,3]`)))

	assert.Contains(t, buf.String(), "Unexpected report shape")
	assert.Contains(t, buf.String(), "[1,2,3]")
}

func TestRenderAnalysis_NoItems(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderAnalysis(&buf, sampleAnalysis(`{"items":[],"healthTags":[]}`)))

	assert.Contains(t, buf.String(), "No food items identified.")
	assert.Contains(t, buf.String(), "none")
}
