package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisitor_IsActive(t *testing.T) {
	tests := []struct {
		status VisitorStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusVerified, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			v := &Visitor{Status: tt.status}
			assert.Equal(t, tt.want, v.IsActive())
		})
	}
}

func TestVisitor_IsQRExpired(t *testing.T) {
	visitDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	v := &Visitor{VisitDate: visitDate}

	t.Run("valid during visit day", func(t *testing.T) {
		now := time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC)
		assert.False(t, v.IsQRExpired(now))
	})

	t.Run("valid before visit day", func(t *testing.T) {
		now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		assert.False(t, v.IsQRExpired(now))
	})

	t.Run("expired after midnight", func(t *testing.T) {
		now := time.Date(2026, 9, 2, 0, 0, 1, 0, time.UTC)
		assert.True(t, v.IsQRExpired(now))
	})
}

func TestVisitor_IsVisitDay(t *testing.T) {
	v := &Visitor{VisitDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}

	assert.True(t, v.IsVisitDay(time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)))
	assert.False(t, v.IsVisitDay(time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)))
	assert.False(t, v.IsVisitDay(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)))
}

func TestVisitor_SweepConditions(t *testing.T) {
	pastDate := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)

	pending := &Visitor{Status: StatusPending, VisitDate: pastDate}
	verified := &Visitor{Status: StatusVerified, VisitDate: pastDate}
	completed := &Visitor{Status: StatusCompleted, VisitDate: pastDate}

	assert.True(t, pending.ShouldExpire(now))
	assert.False(t, pending.ShouldComplete(now))

	assert.True(t, verified.ShouldComplete(now))
	assert.False(t, verified.ShouldExpire(now))

	assert.False(t, completed.ShouldExpire(now))
	assert.False(t, completed.ShouldComplete(now))
}

func TestValidEnums(t *testing.T) {
	assert.True(t, ValidVisitorType(TypeProfessional))
	assert.True(t, ValidVisitorType(TypeStudent))
	assert.False(t, ValidVisitorType("contractor"))

	assert.True(t, ValidVisitorCategory(CategoryIndustry))
	assert.False(t, ValidVisitorCategory("unknown"))

	assert.True(t, ValidPurpose(PurposeBusinessMeeting))
	assert.True(t, ValidPurpose(PurposeIFactoryTraining))
	assert.False(t, ValidPurpose("sightseeing"))

	assert.True(t, ValidStatus(StatusExpired))
	assert.False(t, ValidStatus("archived"))
}
