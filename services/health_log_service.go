package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"

	"gorm.io/gorm"
)

type HealthLogService struct {
	db *gorm.DB
}

func NewHealthLogService(db *gorm.DB) *HealthLogService {
	return &HealthLogService{db: db}
}

// NormalizeDate strips the time-of-day down to UTC midnight of the civil
// date. This is the identity key for a log entry: it must be applied the same
// way on write, lookup and delete, otherwise the same calendar day splits
// into duplicate entries.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Sub-sections of a log entry. Pointers distinguish "absent from payload"
// from zero values so partial writes leave untouched sections alone.
type SleepPayload struct {
	Hours float64 `json:"hours"`
}
type ExercisePayload struct {
	Minutes float64 `json:"minutes"`
	Type    string  `json:"type"`
}
type WaterPayload struct {
	Glasses float64 `json:"glasses"`
}
type StressPayload struct {
	Level int `json:"level"`
}
type MoodPayload struct {
	Rating int `json:"rating"`
}

type LogEntryPayload struct {
	Date time.Time `json:"date"`

	Breakfast      *models.LogMeal `json:"breakfast"`
	Lunch          *models.LogMeal `json:"lunch"`
	Dinner         *models.LogMeal `json:"dinner"`
	AfternoonSnack *models.LogMeal `json:"afternoonSnack"`
	EveningSnack   *models.LogMeal `json:"eveningSnack"`

	Sleep    *SleepPayload    `json:"sleep"`
	Exercise *ExercisePayload `json:"exercise"`
	Water    *WaterPayload    `json:"water"`
	Stress   *StressPayload   `json:"stress"`
	Mood     *MoodPayload     `json:"mood"`
}

var exerciseTypes = map[string]bool{
	"cardio": true, "strength": true, "mixed": true, "none": true,
}

func validateLogPayload(p *LogEntryPayload) error {
	if p.Stress != nil && (p.Stress.Level < 1 || p.Stress.Level > 5) {
		return newValidationError("stress.level", "must be between 1 and 5")
	}
	if p.Mood != nil && (p.Mood.Rating < 1 || p.Mood.Rating > 5) {
		return newValidationError("mood.rating", "must be between 1 and 5")
	}
	if p.Exercise != nil && p.Exercise.Type != "" && !exerciseTypes[p.Exercise.Type] {
		return newValidationError("exercise.type", "must be one of cardio, strength, mixed, none")
	}
	return nil
}

// AddOrUpdate writes the entry for (userID, normalized payload date). When an
// entry already exists the payload is merged in per top-level section with
// the payload winning, and the nutrition totals are recomputed from the
// merged slots. Exactly one entry per calendar day exists afterwards; the
// composite unique index backs that up even under concurrent writers.
func (s *HealthLogService) AddOrUpdate(ctx context.Context, userID uint, p LogEntryPayload) (*models.DailyLog, error) {
	if p.Date.IsZero() {
		return nil, newValidationError("date", "date is required")
	}
	if err := validateLogPayload(&p); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, err
	}

	day := NormalizeDate(p.Date)
	var entry models.DailyLog

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND date = ?", userID, day).First(&entry).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		entry.UserID = userID
		entry.Date = day
		mergeSections(&entry, &p)
		entry.Totals = DailyTotals(entry.Breakfast, entry.Lunch, entry.Dinner, entry.AfternoonSnack, entry.EveningSnack)
		return tx.Save(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update modifies the existing entry for a date; a missing entry is an error,
// unlike AddOrUpdate. Slots the payload omits fall back to the stored value,
// so a partial update never zeroes out untouched meals, and the stored date
// is preserved (the path date is a lookup key only).
func (s *HealthLogService) Update(ctx context.Context, userID uint, date time.Time, p LogEntryPayload) (*models.DailyLog, error) {
	if err := validateLogPayload(&p); err != nil {
		return nil, err
	}

	day := NormalizeDate(date)
	var entry models.DailyLog

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND date = ?", userID, day).First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("log entry for this date: %w", ErrNotFound)
			}
			return err
		}
		mergeSections(&entry, &p)
		entry.Date = day // never the payload's date
		entry.Totals = DailyTotals(entry.Breakfast, entry.Lunch, entry.Dinner, entry.AfternoonSnack, entry.EveningSnack)
		return tx.Save(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes the single entry for (userID, date).
func (s *HealthLogService) Delete(ctx context.Context, userID uint, date time.Time) error {
	day := NormalizeDate(date)
	// hard delete: the (user_id, date) unique index must be free for a
	// later re-add of the same calendar day
	res := s.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND date = ?", userID, day).
		Delete(&models.DailyLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("log entry for this date: %w", ErrNotFound)
	}
	return nil
}

// ListByRange returns a user's entries, optionally clamped to [start, end]
// inclusive by calendar date, newest first. A user with no log rows gets an
// empty list, not an error.
func (s *HealthLogService) ListByRange(ctx context.Context, userID uint, start, end *time.Time) ([]models.DailyLog, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if start != nil && end != nil {
		q = q.Where("date BETWEEN ? AND ?", NormalizeDate(*start), NormalizeDate(*end))
	}
	var logs []models.DailyLog
	if err := q.Order("date DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// RecentPatient is a user ranked by most recent log activity.
type RecentPatient struct {
	UserID      uint      `json:"userId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	LastLogDate time.Time `json:"lastLogDate"`
}

// RecentPatients ranks users by their most recent log date. Users with zero
// entries never appear.
func (s *HealthLogService) RecentPatients(ctx context.Context, limit int) ([]RecentPatient, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []RecentPatient
	err := s.db.WithContext(ctx).
		Table("daily_logs").
		Select("daily_logs.user_id AS user_id, users.first_name, users.last_name, users.email, MAX(daily_logs.date) AS last_log_date").
		Joins("JOIN users ON users.id = daily_logs.user_id").
		Where("daily_logs.deleted_at IS NULL").
		Group("daily_logs.user_id, users.first_name, users.last_name, users.email").
		Order("last_log_date DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// mergeSections applies the payload onto the entry, section by section.
// A present section replaces the stored one wholesale; an absent section is
// left as stored.
func mergeSections(entry *models.DailyLog, p *LogEntryPayload) {
	if p.Breakfast != nil {
		entry.Breakfast = p.Breakfast
	}
	if p.Lunch != nil {
		entry.Lunch = p.Lunch
	}
	if p.Dinner != nil {
		entry.Dinner = p.Dinner
	}
	if p.AfternoonSnack != nil {
		entry.AfternoonSnack = p.AfternoonSnack
	}
	if p.EveningSnack != nil {
		entry.EveningSnack = p.EveningSnack
	}
	if p.Sleep != nil {
		entry.SleepHours = p.Sleep.Hours
	}
	if p.Exercise != nil {
		entry.ExerciseMinutes = p.Exercise.Minutes
		entry.ExerciseType = p.Exercise.Type
	}
	if p.Water != nil {
		entry.WaterGlasses = p.Water.Glasses
	}
	if p.Stress != nil {
		entry.StressLevel = p.Stress.Level
	}
	if p.Mood != nil {
		entry.MoodRating = p.Mood.Rating
	}
}
