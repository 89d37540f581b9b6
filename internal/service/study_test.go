package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designvault/internal/domain"
	"designvault/internal/domain/models"
)

func newStudyService(gradeRepo *fakeGradeRepo, sessionRepo *fakeSessionStatRepo, itemRepo *fakeItemRepo) *StudyService {
	return NewStudyService(gradeRepo, sessionRepo, itemRepo, testLogger())
}

func TestReviewIntervalDays(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		want     int
	}{
		{name: "perfect", accuracy: 1.0, want: 7},
		{name: "just above high threshold", accuracy: 0.81, want: 7},
		{name: "exactly 0.8 falls to 3 days", accuracy: 0.8, want: 3},
		{name: "just above medium threshold", accuracy: 0.61, want: 3},
		{name: "exactly 0.6 falls to 2 days", accuracy: 0.6, want: 2},
		{name: "just above low threshold", accuracy: 0.41, want: 2},
		{name: "exactly 0.4 falls to 1 day", accuracy: 0.4, want: 1},
		{name: "zero", accuracy: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReviewIntervalDays(tt.accuracy); got != tt.want {
				t.Errorf("ReviewIntervalDays(%v) = %d, want %d", tt.accuracy, got, tt.want)
			}
		})
	}
}

func TestGradeAlwaysAccepted(t *testing.T) {
	gradeRepo := &fakeGradeRepo{}
	svc := newStudyService(gradeRepo, &fakeSessionStatRepo{}, &fakeItemRepo{})

	// No such item exists anywhere; the grade still lands
	grade, err := svc.Grade(context.Background(), &models.GradeRequest{
		ItemID: "ghost-item",
		Grade:  models.GradeGood,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, grade.ID)
	assert.False(t, grade.Timestamp.IsZero(), "timestamp defaults to now")
	assert.Len(t, gradeRepo.grades, 1)
}

func TestGradeValidation(t *testing.T) {
	svc := newStudyService(&fakeGradeRepo{}, &fakeSessionStatRepo{}, &fakeItemRepo{})

	tests := []struct {
		name string
		req  models.GradeRequest
	}{
		{name: "missing item id", req: models.GradeRequest{Grade: models.GradeGood}},
		{name: "unknown grade value", req: models.GradeRequest{ItemID: "i1", Grade: "perfect"}},
		{name: "missing grade", req: models.GradeRequest{ItemID: "i1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Grade(context.Background(), &tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}
}

func TestProgress(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	gradeRepo := &fakeGradeRepo{grades: []models.Grade{
		{ID: "g1", ItemID: "i1", Grade: models.GradeAgain, Timestamp: base},
		{ID: "g2", ItemID: "i1", Grade: models.GradeGood, Timestamp: base.Add(time.Hour)},
		{ID: "g3", ItemID: "i1", Grade: models.GradeEasy, Timestamp: base.Add(2 * time.Hour)},
		{ID: "g4", ItemID: "other", Grade: models.GradeGood, Timestamp: base},
	}}
	svc := newStudyService(gradeRepo, &fakeSessionStatRepo{}, &fakeItemRepo{})

	progress, err := svc.Progress(context.Background(), "i1")
	require.NoError(t, err)

	assert.Equal(t, 1, progress.Again)
	assert.Equal(t, 1, progress.Good)
	assert.Equal(t, 1, progress.Easy)
	assert.Equal(t, 3, progress.Total())
	assert.InDelta(t, 2.0/3.0, progress.Accuracy(), 1e-9)
	require.NotNil(t, progress.LastSeen)
	assert.Equal(t, base.Add(2*time.Hour), *progress.LastSeen)
}

func TestProgressUnknownItem(t *testing.T) {
	svc := newStudyService(&fakeGradeRepo{}, &fakeSessionStatRepo{}, &fakeItemRepo{})

	progress, err := svc.Progress(context.Background(), "never-graded")
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Total())
	assert.Nil(t, progress.LastSeen)
}

func TestDueItems(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	itemRepo := &fakeItemRepo{items: []models.Item{
		{ID: "fresh", Name: "Never graded"},
		{ID: "recent", Name: "High accuracy, seen recently"},
		{ID: "stale", Name: "Exactly 0.8 accuracy, overdue"},
	}}

	gradeRepo := &fakeGradeRepo{}
	// recent: 5/5 correct, last seen 1 day ago -> 7-day interval, not due
	for i := 0; i < 5; i++ {
		gradeRepo.grades = append(gradeRepo.grades, models.Grade{
			ItemID: "recent", Grade: models.GradeGood, Timestamp: now.Add(-24 * time.Hour),
		})
	}
	// stale: 4 good + 1 again = 0.8 accuracy -> 3-day interval (strict >),
	// last seen exactly 3 days ago -> due
	lastSeen := now.Add(-3 * 24 * time.Hour)
	for i := 0; i < 4; i++ {
		gradeRepo.grades = append(gradeRepo.grades, models.Grade{
			ItemID: "stale", Grade: models.GradeGood, Timestamp: lastSeen,
		})
	}
	gradeRepo.grades = append(gradeRepo.grades, models.Grade{
		ItemID: "stale", Grade: models.GradeAgain, Timestamp: lastSeen,
	})

	svc := newStudyService(gradeRepo, &fakeSessionStatRepo{}, itemRepo)

	due, err := svc.DueItems(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, due, 2)

	assert.Equal(t, "fresh", due[0].Item.ID, "never-graded items are immediately due")
	assert.Equal(t, 0, due[0].IntervalDays)
	assert.Nil(t, due[0].LastSeen)

	assert.Equal(t, "stale", due[1].Item.ID)
	assert.InDelta(t, 0.8, due[1].Accuracy, 1e-9)
	assert.Equal(t, 3, due[1].IntervalDays, "0.8 accuracy lands in the 3-day bucket, not 7")
	require.NotNil(t, due[1].LastSeen)
	assert.Equal(t, lastSeen, *due[1].LastSeen)
}

func TestResetLedger(t *testing.T) {
	gradeRepo := &fakeGradeRepo{grades: []models.Grade{
		{ID: "g1", ItemID: "i1", Grade: models.GradeGood},
	}}
	svc := newStudyService(gradeRepo, &fakeSessionStatRepo{}, &fakeItemRepo{})

	require.NoError(t, svc.ResetLedger(context.Background()))
	assert.Empty(t, gradeRepo.grades)
}

func TestSessionStatsDualAccuracy(t *testing.T) {
	sessionRepo := &fakeSessionStatRepo{stats: []models.SessionStat{
		// Small, perfect session
		{Mode: "review", TotalCards: 2, Again: 0, Good: 1, Easy: 1, Accuracy: 1.0, CoinsEarned: 4},
		// Large, weak session
		{Mode: "review", TotalCards: 8, Again: 4, Good: 4, Easy: 0, Accuracy: 0.5, CoinsEarned: 8},
	}}
	svc := newStudyService(&fakeGradeRepo{}, sessionRepo, &fakeItemRepo{})

	agg, err := svc.SessionStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, agg.Sessions)
	assert.Equal(t, 10, agg.TotalCards)
	assert.Equal(t, 12, agg.CoinsEarned)

	// Mean of per-session accuracies: (1.0 + 0.5) / 2
	assert.InDelta(t, 0.75, agg.AverageAccuracy, 1e-9)
	// Total accuracy from summed counts: (5 good + 1 easy) / 10
	assert.InDelta(t, 0.6, agg.TotalAccuracy, 1e-9)
	// The two figures legitimately disagree
	assert.NotEqual(t, agg.AverageAccuracy, agg.TotalAccuracy)
}

func TestSessionStatsEmpty(t *testing.T) {
	svc := newStudyService(&fakeGradeRepo{}, &fakeSessionStatRepo{}, &fakeItemRepo{})

	agg, err := svc.SessionStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, agg.Sessions)
	assert.Zero(t, agg.AverageAccuracy)
	assert.Zero(t, agg.TotalAccuracy)
}

func TestRecordSession(t *testing.T) {
	sessionRepo := &fakeSessionStatRepo{}
	svc := newStudyService(&fakeGradeRepo{}, sessionRepo, &fakeItemRepo{})

	stat, err := svc.RecordSession(context.Background(), &models.CreateSessionStatRequest{
		Mode:       "review",
		TotalCards: 5,
		Again:      1,
		Good:       3,
		Easy:       1,
		Accuracy:   0.8,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, stat.ID)
	assert.Len(t, sessionRepo.stats, 1)

	_, err = svc.RecordSession(context.Background(), &models.CreateSessionStatRequest{})
	assert.True(t, errors.Is(err, domain.ErrValidation), "mode is required")
}
