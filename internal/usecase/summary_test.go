package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pladria/internal/domain"
)

func TestSummarizeByCategory(t *testing.T) {
	rows := []domain.ReconciliationRow{
		{Identifier: "X1", PresentInA: true, PresentInB: true, CategoryInA: "OK", CategoryInB: "OK", Outcome: domain.OutcomeMatch},
		{Identifier: "X2", PresentInA: true, PresentInB: true, CategoryInA: "OK", CategoryInB: "NOK", Outcome: domain.OutcomeMismatch},
		{Identifier: "X3", PresentInA: true, CategoryInA: "NOK", Outcome: domain.OutcomeMissingInB},
		{Identifier: "X4", PresentInB: true, CategoryInB: "OK", Outcome: domain.OutcomeMissingInA},
	}
	universe := []string{"OK", "NOK", "RAS"}

	got := SummarizeByCategory(rows, universe)

	assert.Len(t, got, 3, "every configured category appears, even unused ones")

	assert.Equal(t, "OK", got[0].Category)
	assert.Equal(t, 2, got[0].CountA)
	assert.Equal(t, 2, got[0].CountB)
	assert.Equal(t, 0, got[0].Difference)
	assert.Equal(t, domain.GapStatusOK, got[0].Status)

	assert.Equal(t, "NOK", got[1].Category)
	assert.Equal(t, 1, got[1].CountA)
	assert.Equal(t, 1, got[1].CountB)
	assert.Equal(t, domain.GapStatusOK, got[1].Status)

	assert.Equal(t, "RAS", got[2].Category)
	assert.Equal(t, 0, got[2].CountA)
	assert.Equal(t, 0, got[2].CountB)
	assert.Equal(t, domain.GapStatusOK, got[2].Status)
}

func TestSummarizeByCategory_SignedDifference(t *testing.T) {
	rows := []domain.ReconciliationRow{
		{Identifier: "X1", PresentInA: true, CategoryInA: "NOK", Outcome: domain.OutcomeMissingInB},
		{Identifier: "X2", PresentInA: true, CategoryInA: "NOK", Outcome: domain.OutcomeMissingInB},
		{Identifier: "X3", PresentInB: true, CategoryInB: "OK", Outcome: domain.OutcomeMissingInA},
	}

	got := SummarizeByCategory(rows, []string{"NOK", "OK"})

	assert.Equal(t, 2, got[0].Difference)
	assert.Equal(t, domain.GapStatusGap, got[0].Status)
	assert.Contains(t, got[0].Detail, "source A has 2 more")

	assert.Equal(t, -1, got[1].Difference)
	assert.Equal(t, domain.GapStatusGap, got[1].Status)
	assert.Contains(t, got[1].Detail, "source B has 1 more")
}

func TestSummarizeByCategory_NoRows(t *testing.T) {
	got := SummarizeByCategory(nil, []string{"OK"})
	assert.Len(t, got, 1)
	assert.Equal(t, domain.GapStatusOK, got[0].Status)
}
