package services

import (
	"context"
	"testing"
	"time"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"
)

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-04T00:00:00Z", "2024-03-04T00:00:00Z"}, // Monday maps to itself
		{"2024-03-06T15:30:00Z", "2024-03-04T00:00:00Z"}, // Wednesday
		{"2024-03-09T23:59:59Z", "2024-03-04T00:00:00Z"}, // Saturday
		{"2024-03-10T12:00:00Z", "2024-03-04T00:00:00Z"}, // Sunday belongs to the Monday-start week
		{"2024-03-11T00:00:00Z", "2024-03-11T00:00:00Z"}, // next Monday starts a new week
	}
	for _, c := range cases {
		got := StartOfWeek(mustParse(t, c.in))
		want := mustParse(t, c.want)
		if !got.Equal(want) {
			t.Errorf("StartOfWeek(%s) = %v, want %v", c.in, got, want)
		}
	}
}

func TestUserGrowthIsSparse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db)
	ctx := context.Background()

	now := time.Now().UTC()
	dayA := now.AddDate(0, 0, -10)
	dayB := now.AddDate(0, 0, -3)

	// two signups on dayA, one on dayB, nothing in between
	for i, ts := range []time.Time{dayA, dayA, dayB} {
		user := models.User{
			FirstName: "U",
			LastName:  "Ser",
			Email:     string(rune('a'+i)) + "@example.com",
			Password:  "hashed",
		}
		user.CreatedAt = ts
		if err := db.Create(&user).Error; err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	points, err := svc.UserGrowth(ctx, 6)
	if err != nil {
		t.Fatalf("user growth: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2 (days without signups are absent)", len(points))
	}
	if points[0].Day != dayA.Format("2006-01-02") || points[0].Count != 2 {
		t.Errorf("points[0] = %+v, want %s/2", points[0], dayA.Format("2006-01-02"))
	}
	if points[1].Day != dayB.Format("2006-01-02") || points[1].Count != 1 {
		t.Errorf("points[1] = %+v, want %s/1", points[1], dayB.Format("2006-01-02"))
	}
}

func TestUserGrowthWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db)

	old := models.User{FirstName: "Old", LastName: "Timer", Email: "old@example.com", Password: "hashed"}
	old.CreatedAt = time.Now().UTC().AddDate(0, -8, 0)
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	points, err := svc.UserGrowth(context.Background(), 6)
	if err != nil {
		t.Fatalf("user growth: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("signups outside the window leaked in: %+v", points)
	}
}

func TestActiveUsersThisWeek(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db)
	logs := NewHealthLogService(db)
	ctx := context.Background()

	active1 := createTestUser(t, db, "a@example.com")
	active2 := createTestUser(t, db, "b@example.com")
	stale := createTestUser(t, db, "c@example.com")
	createTestUser(t, db, "d@example.com") // never logs

	weekStart := StartOfWeek(time.Now().UTC())
	for _, uid := range []uint{active1.ID, active2.ID} {
		if _, err := logs.AddOrUpdate(ctx, uid, LogEntryPayload{
			Date:  weekStart,
			Water: &WaterPayload{Glasses: 3},
		}); err != nil {
			t.Fatalf("add log: %v", err)
		}
	}
	// two entries for the same user still count once
	if _, err := logs.AddOrUpdate(ctx, active1.ID, LogEntryPayload{
		Date:  weekStart.AddDate(0, 0, 1),
		Water: &WaterPayload{Glasses: 3},
	}); err != nil {
		t.Fatalf("add second log: %v", err)
	}
	// last week does not count
	if _, err := logs.AddOrUpdate(ctx, stale.ID, LogEntryPayload{
		Date:  weekStart.AddDate(0, 0, -2),
		Water: &WaterPayload{Glasses: 3},
	}); err != nil {
		t.Fatalf("add stale log: %v", err)
	}

	count, err := svc.ActiveUsersThisWeek(ctx)
	if err != nil {
		t.Fatalf("active users: %v", err)
	}
	if count != 2 {
		t.Errorf("active users = %d, want 2", count)
	}

	stats, err := svc.ActivityStats(ctx)
	if err != nil {
		t.Fatalf("activity stats: %v", err)
	}
	if stats.Active != 2 || stats.Inactive != 2 {
		t.Errorf("stats = %+v, want active 2 / inactive 2", stats)
	}
}

func TestDietitianStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db)
	plans := NewDietPlanService(db, nil)
	ctx := context.Background()

	u1 := createTestUser(t, db, "a@example.com")
	u2 := createTestUser(t, db, "b@example.com")
	u3 := createTestUser(t, db, "c@example.com")

	if _, err := plans.Save(ctx, u1.ID, oneDayPlan(), testAnalysis(), 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := plans.Save(ctx, u2.ID, oneDayPlan(), testAnalysis(), 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	approvedID, err := plans.Save(ctx, u3.ID, oneDayPlan(), testAnalysis(), 0)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := plans.Approve(ctx, approvedID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	stats, err := svc.DietitianStats(ctx)
	if err != nil {
		t.Fatalf("dietitian stats: %v", err)
	}
	if stats.TotalPatients != 3 {
		t.Errorf("total patients = %d, want 3", stats.TotalPatients)
	}
	if stats.PendingReviews != 2 {
		t.Errorf("pending reviews = %d, want 2", stats.PendingReviews)
	}
	if stats.PlansApproved != 1 {
		t.Errorf("plans approved = %d, want 1", stats.PlansApproved)
	}
}
