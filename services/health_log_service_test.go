package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-01T00:00:00Z", "2024-03-01T00:00:00Z"},
		{"2024-03-01T08:30:45Z", "2024-03-01T00:00:00Z"},
		{"2024-03-01T23:59:59Z", "2024-03-01T00:00:00Z"},
		// local wall time converts to UTC first, then truncates
		{"2024-03-01T23:30:00-05:00", "2024-03-02T00:00:00Z"},
		{"2024-03-01T01:30:00+05:30", "2024-02-29T00:00:00Z"},
	}
	for _, c := range cases {
		got := NormalizeDate(mustParse(t, c.in))
		want := mustParse(t, c.want)
		if !got.Equal(want) {
			t.Errorf("NormalizeDate(%s) = %v, want %v", c.in, got, want)
		}
		if got.Location() != time.UTC {
			t.Errorf("NormalizeDate(%s) location = %v, want UTC", c.in, got.Location())
		}
	}
}

func TestAddLogDerivesTotals(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHealthLogService(db)
	ctx := context.Background()
	user := createTestUser(t, db, "alice@example.com")
	day := mustParse(t, "2024-03-01T08:00:00Z")

	entry, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{
		Date:      day,
		Breakfast: &models.LogMeal{Name: "Oats", Calories: 300, Protein: 10},
		Lunch:     &models.LogMeal{Name: "Dal", Calories: 500, Protein: 25},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if entry.Totals.Calories != 800 {
		t.Errorf("calories = %v, want 800", entry.Totals.Calories)
	}
	if entry.Totals.Protein != 35 {
		t.Errorf("protein = %v, want 35", entry.Totals.Protein)
	}

	// adding a third meal later the same day re-derives, never accumulates
	entry, err = svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{
		Date:   day,
		Dinner: &models.LogMeal{Name: "Soup", Calories: 200},
	})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if entry.Totals.Calories != 1000 {
		t.Errorf("calories after dinner = %v, want 1000", entry.Totals.Calories)
	}
	if entry.Breakfast == nil || entry.Breakfast.Calories != 300 {
		t.Error("breakfast lost on second add")
	}

	var count int64
	db.Model(&models.DailyLog{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("log rows = %d, want 1", count)
	}
}

func TestAddLogSameCalendarDayCollapses(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHealthLogService(db)
	ctx := context.Background()
	user := createTestUser(t, db, "alice@example.com")

	if _, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{
		Date:      mustParse(t, "2024-03-01T08:00:00Z"),
		Breakfast: &models.LogMeal{Name: "Oats", Calories: 300},
	}); err != nil {
		t.Fatalf("morning add: %v", err)
	}
	if _, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{
		Date:   mustParse(t, "2024-03-01T23:00:00Z"),
		Dinner: &models.LogMeal{Name: "Soup", Calories: 200},
	}); err != nil {
		t.Fatalf("evening add: %v", err)
	}

	logs, err := svc.ListByRange(ctx, user.ID, nil, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("entries = %d, want 1 (same calendar day)", len(logs))
	}
	if logs[0].Breakfast == nil || logs[0].Dinner == nil {
		t.Error("merged entry should carry both meals")
	}
	if logs[0].Totals.Calories != 500 {
		t.Errorf("calories = %v, want 500", logs[0].Totals.Calories)
	}
}

func TestAddLogValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHealthLogService(db)
	ctx := context.Background()
	user := createTestUser(t, db, "alice@example.com")
	day := mustParse(t, "2024-03-01T08:00:00Z")

	var verr *ValidationError
	if _, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{}); !errors.As(err, &verr) {
		t.Errorf("zero date: err = %v, want ValidationError", err)
	}
	if _, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{Date: day, Stress: &StressPayload{Level: 6}}); !errors.As(err, &verr) {
		t.Errorf("stress 6: err = %v, want ValidationError", err)
	}
	if _, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{Date: day, Mood: &MoodPayload{Rating: 0}}); !errors.As(err, &verr) {
		t.Errorf("mood 0: err = %v, want ValidationError", err)
	}
	if _, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{Date: day, Exercise: &ExercisePayload{Minutes: 30, Type: "swimming"}}); !errors.As(err, &verr) {
		t.Errorf("bad exercise type: err = %v, want ValidationError", err)
	}
	if _, err := svc.AddOrUpdate(ctx, 999, LogEntryPayload{Date: day}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user: err = %v, want ErrNotFound", err)
	}
}

func TestUpdatePreservesOmittedSections(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHealthLogService(db)
	ctx := context.Background()
	user := createTestUser(t, db, "alice@example.com")
	day := mustParse(t, "2024-03-01T00:00:00Z")

	if _, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{
		Date:      day,
		Breakfast: &models.LogMeal{Name: "Oats", Calories: 300},
		Sleep:     &SleepPayload{Hours: 7.5},
		Water:     &WaterPayload{Glasses: 6},
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	entry, err := svc.Update(ctx, user.ID, day, LogEntryPayload{
		Lunch:  &models.LogMeal{Name: "Dal", Calories: 500},
		Stress: &StressPayload{Level: 2},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if entry.Breakfast == nil || entry.Breakfast.Name != "Oats" {
		t.Error("breakfast zeroed by partial update")
	}
	if entry.SleepHours != 7.5 || entry.WaterGlasses != 6 {
		t.Errorf("lifestyle sections lost: sleep=%v water=%v", entry.SleepHours, entry.WaterGlasses)
	}
	if entry.Lunch == nil || entry.Lunch.Calories != 500 {
		t.Error("lunch not applied")
	}
	if entry.StressLevel != 2 {
		t.Errorf("stress = %d, want 2", entry.StressLevel)
	}
	if entry.Totals.Calories != 800 {
		t.Errorf("calories = %v, want 800", entry.Totals.Calories)
	}

	// the stored date is a key, the payload cannot move the entry
	moved, err := svc.Update(ctx, user.ID, day, LogEntryPayload{Date: mustParse(t, "2024-03-05T00:00:00Z")})
	if err != nil {
		t.Fatalf("update with date: %v", err)
	}
	if !moved.Date.Equal(day) {
		t.Errorf("entry moved to %v", moved.Date)
	}
}

func TestUpdateMissingEntry(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHealthLogService(db)
	user := createTestUser(t, db, "alice@example.com")

	_, err := svc.Update(context.Background(), user.ID, mustParse(t, "2024-03-01T00:00:00Z"), LogEntryPayload{
		Lunch: &models.LogMeal{Name: "Dal"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteThenReAdd(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHealthLogService(db)
	ctx := context.Background()
	user := createTestUser(t, db, "alice@example.com")
	day := mustParse(t, "2024-03-01T10:00:00Z")

	if _, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{
		Date:      day,
		Breakfast: &models.LogMeal{Name: "Oats", Calories: 300},
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.Delete(ctx, user.ID, day); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, user.ID, day); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}

	logs, err := svc.ListByRange(ctx, user.ID, nil, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("entries after delete = %d, want 0", len(logs))
	}

	// the day must be reusable after deletion
	entry, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{
		Date:  day,
		Lunch: &models.LogMeal{Name: "Dal", Calories: 500},
	})
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if entry.Breakfast != nil {
		t.Error("deleted breakfast resurfaced on re-add")
	}
	if entry.Totals.Calories != 500 {
		t.Errorf("calories = %v, want 500", entry.Totals.Calories)
	}
}

func TestListByRange(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHealthLogService(db)
	ctx := context.Background()
	user := createTestUser(t, db, "alice@example.com")

	for _, d := range []string{"2024-03-01T09:00:00Z", "2024-03-03T09:00:00Z", "2024-03-05T09:00:00Z"} {
		if _, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{
			Date:  mustParse(t, d),
			Water: &WaterPayload{Glasses: 4},
		}); err != nil {
			t.Fatalf("add %s: %v", d, err)
		}
	}

	start := mustParse(t, "2024-03-02T00:00:00Z")
	end := mustParse(t, "2024-03-05T23:00:00Z")
	logs, err := svc.ListByRange(ctx, user.ID, &start, &end)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("entries = %d, want 2", len(logs))
	}
	if !logs[0].Date.After(logs[1].Date) {
		t.Errorf("expected newest first, got %v then %v", logs[0].Date, logs[1].Date)
	}

	all, err := svc.ListByRange(ctx, user.ID, nil, nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all entries = %d, want 3", len(all))
	}

	nobody := createTestUser(t, db, "bob@example.com")
	empty, err := svc.ListByRange(ctx, nobody.ID, nil, nil)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("entries for user with no logs = %d, want 0", len(empty))
	}
}

func TestRecentPatients(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHealthLogService(db)
	ctx := context.Background()
	today := createTestUser(t, db, "today@example.com")
	lastWeek := createTestUser(t, db, "lastweek@example.com")
	createTestUser(t, db, "never@example.com")

	now := NormalizeDate(time.Now())
	// insertion order is oldest-activity first, so ordering below is earned
	if _, err := svc.AddOrUpdate(ctx, lastWeek.ID, LogEntryPayload{
		Date:  now.AddDate(0, 0, -7),
		Water: &WaterPayload{Glasses: 2},
	}); err != nil {
		t.Fatalf("add last week: %v", err)
	}
	if _, err := svc.AddOrUpdate(ctx, today.ID, LogEntryPayload{
		Date:  now,
		Water: &WaterPayload{Glasses: 2},
	}); err != nil {
		t.Fatalf("add today: %v", err)
	}
	// an older entry for the same user must not change their rank
	if _, err := svc.AddOrUpdate(ctx, today.ID, LogEntryPayload{
		Date:  now.AddDate(0, 0, -30),
		Water: &WaterPayload{Glasses: 2},
	}); err != nil {
		t.Fatalf("add old: %v", err)
	}

	patients, err := svc.RecentPatients(ctx, 10)
	if err != nil {
		t.Fatalf("recent patients: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("patients = %d, want 2 (users with no logs excluded)", len(patients))
	}
	if patients[0].UserID != today.ID {
		t.Errorf("rank 1 = user %d, want %d", patients[0].UserID, today.ID)
	}
	if patients[1].UserID != lastWeek.ID {
		t.Errorf("rank 2 = user %d, want %d", patients[1].UserID, lastWeek.ID)
	}
	if patients[0].Email != "today@example.com" {
		t.Errorf("rank 1 email = %q", patients[0].Email)
	}

	one, err := svc.RecentPatients(ctx, 1)
	if err != nil {
		t.Fatalf("recent patients limit 1: %v", err)
	}
	if len(one) != 1 || one[0].UserID != today.ID {
		t.Errorf("limit 1 = %+v", one)
	}
}

func TestConcurrentAddsOnDistinctDates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHealthLogService(db)
	ctx := context.Background()
	user := createTestUser(t, db, "alice@example.com")

	base := mustParse(t, "2024-03-01T00:00:00Z")
	const days = 8

	var wg sync.WaitGroup
	errs := make(chan error, days)
	for i := 0; i < days; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			_, err := svc.AddOrUpdate(ctx, user.ID, LogEntryPayload{
				Date:      base.AddDate(0, 0, offset),
				Breakfast: &models.LogMeal{Name: "Oats", Calories: 300},
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent add: %v", err)
		}
	}

	logs, err := svc.ListByRange(ctx, user.ID, nil, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(logs) != days {
		t.Errorf("entries = %d, want %d", len(logs), days)
	}
}
