package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"designvault/internal/domain"
	"designvault/internal/domain/models"
	"designvault/internal/domain/repositories"
)

// Review interval buckets in days, selected by overall answer accuracy.
// These thresholds are a fixed heuristic, not an adaptive scheduler,
// and existing clients depend on the exact strict-greater comparisons.
const (
	intervalHighDays   = 7 // accuracy > 0.8
	intervalMediumDays = 3 // accuracy > 0.6
	intervalLowDays    = 2 // accuracy > 0.4
	intervalResetDays  = 1 // everything else
)

// StudyService owns the append-only grade ledger and the session stat
// ledger, and derives per-item progress, the due-for-review set, and
// aggregate session statistics.
type StudyService struct {
	gradeRepo   repositories.GradeRepository
	sessionRepo repositories.SessionStatRepository
	itemRepo    repositories.ItemRepository
	logger      *slog.Logger
}

// NewStudyService creates a new study service
func NewStudyService(
	gradeRepo repositories.GradeRepository,
	sessionRepo repositories.SessionStatRepository,
	itemRepo repositories.ItemRepository,
	logger *slog.Logger,
) *StudyService {
	return &StudyService{
		gradeRepo:   gradeRepo,
		sessionRepo: sessionRepo,
		itemRepo:    itemRepo,
		logger:      logger,
	}
}

// Grade appends a grade record. The item id is not checked against the
// item store: grades always succeed once the payload is well-formed.
func (s *StudyService) Grade(ctx context.Context, req *models.GradeRequest) (*models.Grade, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	ts := req.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	grade := &models.Grade{
		ID:        uuid.NewString(),
		ItemID:    req.ItemID,
		Grade:     req.Grade,
		Timestamp: ts,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, err
	}

	s.logger.Info("grade recorded", "item_id", grade.ItemID, "grade", grade.Grade)

	return grade, nil
}

// Progress derives the per-item grade counts and last-seen timestamp by
// scanning the item's ledger records.
func (s *StudyService) Progress(ctx context.Context, itemID string) (*models.ItemProgress, error) {
	grades, err := s.gradeRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	progress := tallyGrades(itemID, grades)
	return &progress, nil
}

// DueItems computes the due-for-review set at the given time. An item
// with grades is due when its review interval has elapsed since it was
// last seen; an item never graded is immediately due.
func (s *StudyService) DueItems(ctx context.Context, now time.Time) ([]models.DueItem, error) {
	items, err := s.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	grades, err := s.gradeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byItem := make(map[string][]models.Grade)
	for _, g := range grades {
		byItem[g.ItemID] = append(byItem[g.ItemID], g)
	}

	due := make([]models.DueItem, 0)
	for _, item := range items {
		progress := tallyGrades(item.ID, byItem[item.ID])
		if progress.Total() == 0 {
			// Never graded: immediately due
			due = append(due, models.DueItem{
				Item:         item,
				Accuracy:     0,
				IntervalDays: 0,
				LastSeen:     nil,
			})
			continue
		}

		accuracy := progress.Accuracy()
		interval := ReviewIntervalDays(accuracy)
		if now.Sub(*progress.LastSeen) >= time.Duration(interval)*24*time.Hour {
			due = append(due, models.DueItem{
				Item:         item,
				Accuracy:     accuracy,
				IntervalDays: interval,
				LastSeen:     progress.LastSeen,
			})
		}
	}

	return due, nil
}

// ResetLedger clears the entire grade ledger (bulk reset; individual
// records are never deleted).
func (s *StudyService) ResetLedger(ctx context.Context) error {
	if err := s.gradeRepo.DeleteAll(ctx); err != nil {
		return err
	}

	s.logger.Info("grade ledger reset")

	return nil
}

// RecordSession appends a completed session's summary
func (s *StudyService) RecordSession(ctx context.Context, req *models.CreateSessionStatRequest) (*models.SessionStat, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	stat := &models.SessionStat{
		ID:              uuid.NewString(),
		Mode:            req.Mode,
		TotalCards:      req.TotalCards,
		Again:           req.Again,
		Good:            req.Good,
		Easy:            req.Easy,
		Accuracy:        req.Accuracy,
		DurationSeconds: req.DurationSeconds,
		CoinsEarned:     req.CoinsEarned,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.sessionRepo.Create(ctx, stat); err != nil {
		return nil, err
	}

	s.logger.Info("session recorded",
		"mode", stat.Mode,
		"total_cards", stat.TotalCards,
		"accuracy", stat.Accuracy,
	)

	return stat, nil
}

// SessionStats aggregates all session records. Two accuracy figures are
// computed independently and both exposed: the mean of per-session
// accuracies, and a total accuracy from the summed grade counts. They
// can legitimately differ because sessions have different sizes.
func (s *StudyService) SessionStats(ctx context.Context) (*models.SessionAggregate, error) {
	stats, err := s.sessionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	agg := &models.SessionAggregate{Sessions: len(stats)}
	var accuracySum float64
	for _, stat := range stats {
		agg.TotalCards += stat.TotalCards
		agg.Again += stat.Again
		agg.Good += stat.Good
		agg.Easy += stat.Easy
		agg.CoinsEarned += stat.CoinsEarned
		accuracySum += stat.Accuracy
	}

	if len(stats) > 0 {
		agg.AverageAccuracy = accuracySum / float64(len(stats))
	}
	if total := agg.Again + agg.Good + agg.Easy; total > 0 {
		agg.TotalAccuracy = float64(agg.Good+agg.Easy) / float64(total)
	}

	return agg, nil
}

// ReviewIntervalDays maps accuracy to a review interval. The
// comparisons are strictly greater-than: an accuracy of exactly 0.8
// lands in the 3-day bucket, not the 7-day one.
func ReviewIntervalDays(accuracy float64) int {
	switch {
	case accuracy > 0.8:
		return intervalHighDays
	case accuracy > 0.6:
		return intervalMediumDays
	case accuracy > 0.4:
		return intervalLowDays
	default:
		return intervalResetDays
	}
}

// tallyGrades folds ledger records into per-item counts
func tallyGrades(itemID string, grades []models.Grade) models.ItemProgress {
	progress := models.ItemProgress{ItemID: itemID}
	for _, g := range grades {
		switch g.Grade {
		case models.GradeAgain:
			progress.Again++
		case models.GradeGood:
			progress.Good++
		case models.GradeEasy:
			progress.Easy++
		}
		if progress.LastSeen == nil || g.Timestamp.After(*progress.LastSeen) {
			ts := g.Timestamp
			progress.LastSeen = &ts
		}
	}
	return progress
}
