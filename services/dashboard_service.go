package services

import (
	"context"
	"time"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// GrowthPoint is one calendar day with at least one signup. Days with zero
// signups are absent, so the series is sparse and callers must handle gaps.
type GrowthPoint struct {
	Day   string `json:"day"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// UserGrowth counts new users per calendar day over the trailing window.
func (s *DashboardService) UserGrowth(ctx context.Context, months int) ([]GrowthPoint, error) {
	if months <= 0 {
		months = 6
	}
	since := time.Now().UTC().AddDate(0, -months, 0)

	var rows []GrowthPoint
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Select("date(created_at) AS day, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("date(created_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ActiveUsersThisWeek counts distinct users with at least one log entry dated
// inside the current ISO week (Monday start).
func (s *DashboardService) ActiveUsersThisWeek(ctx context.Context) (int64, error) {
	weekStart := StartOfWeek(time.Now().UTC())
	weekEnd := weekStart.AddDate(0, 0, 7)

	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.DailyLog{}).
		Where("date >= ? AND date < ?", weekStart, weekEnd).
		Distinct("user_id").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ActivityStats is the two-bucket active/inactive breakdown over all users.
type ActivityStats struct {
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

func (s *DashboardService) ActivityStats(ctx context.Context) (*ActivityStats, error) {
	active, err := s.ActiveUsersThisWeek(ctx)
	if err != nil {
		return nil, err
	}
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, err
	}
	return &ActivityStats{Active: active, Inactive: total - active}, nil
}

// DietitianStats feeds the reviewer dashboard header.
type DietitianStats struct {
	TotalPatients  int64 `json:"totalPatients"`
	PendingReviews int64 `json:"pendingReviews"`
	PlansApproved  int64 `json:"plansApproved"`
}

func (s *DashboardService) DietitianStats(ctx context.Context) (*DietitianStats, error) {
	out := &DietitianStats{}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&out.TotalPatients).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.DietPlan{}).
		Where("status = ?", models.PlanReview).Count(&out.PendingReviews).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.DietPlan{}).
		Where("status = ?", models.PlanApproved).Count(&out.PlansApproved).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// StartOfWeek returns midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	tt := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return tt.AddDate(0, 0, -(wd - 1))
}
