package db

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/savor/internal/models"
	"github.com/terraincognita07/savor/internal/storage"
)

func TestAssignmentRepositorySaveAlwaysAppends(t *testing.T) {
	repo := NewAssignmentRepository(storage.NewMemoryStore())

	assignment := models.NewMealAssignment(uuid.New(), time.Now())
	if err := repo.SaveAssignment(assignment); err != nil {
		t.Fatalf("SaveAssignment() error = %v", err)
	}
	if err := repo.SaveAssignment(assignment); err != nil {
		t.Fatalf("SaveAssignment() error = %v", err)
	}

	assignments, err := repo.FetchAllAssignments()
	if err != nil {
		t.Fatalf("FetchAllAssignments() error = %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("expected append-only save to keep both records, got %d", len(assignments))
	}
}

func TestAssignmentRepositoryFetchForNormalizesQueryDay(t *testing.T) {
	repo := NewAssignmentRepository(storage.NewMemoryStore())

	savedAt := time.Date(2024, time.March, 15, 8, 30, 0, 0, time.Local)
	queriedAt := time.Date(2024, time.March, 15, 22, 15, 45, 0, time.Local)

	assignment := models.NewMealAssignment(uuid.New(), savedAt)
	if err := repo.SaveAssignment(assignment); err != nil {
		t.Fatalf("SaveAssignment() error = %v", err)
	}

	assignments, err := repo.FetchAssignmentsFor(queriedAt)
	if err != nil {
		t.Fatalf("FetchAssignmentsFor() error = %v", err)
	}
	if len(assignments) != 1 || assignments[0].ID != assignment.ID {
		t.Fatalf("expected the assignment retrievable via any same-day timestamp, got %+v", assignments)
	}
}

func TestAssignmentRepositoryFetchForEmptyDayReturnsEmpty(t *testing.T) {
	repo := NewAssignmentRepository(storage.NewMemoryStore())

	assignments, err := repo.FetchAssignmentsFor(time.Now())
	if err != nil {
		t.Fatalf("FetchAssignmentsFor() error = %v, want nil", err)
	}
	if len(assignments) != 0 {
		t.Fatalf("expected empty result, got %d records", len(assignments))
	}
}

func TestAssignmentRepositoryMultipleMealsPerDay(t *testing.T) {
	repo := NewAssignmentRepository(storage.NewMemoryStore())

	day := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
	mealIDs := map[uuid.UUID]struct{}{}
	for index := 0; index < 4; index++ {
		mealID := uuid.New()
		mealIDs[mealID] = struct{}{}
		if err := repo.SaveAssignment(models.NewMealAssignment(mealID, day)); err != nil {
			t.Fatalf("SaveAssignment(%d) error = %v", index, err)
		}
	}

	assignments, err := repo.FetchAssignmentsFor(day)
	if err != nil {
		t.Fatalf("FetchAssignmentsFor() error = %v", err)
	}
	if len(assignments) != 4 {
		t.Fatalf("expected 4 assignments for the day, got %d", len(assignments))
	}
	for _, assignment := range assignments {
		if _, exists := mealIDs[assignment.MealID]; !exists {
			t.Fatalf("unexpected meal id %s in day query", assignment.MealID)
		}
		delete(mealIDs, assignment.MealID)
	}
	if len(mealIDs) != 0 {
		t.Fatalf("missing meal ids in day query: %v", mealIDs)
	}
}

func TestAssignmentRepositoryDeleteExcludesIDFromDayQueries(t *testing.T) {
	repo := NewAssignmentRepository(storage.NewMemoryStore())

	day := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
	doomed := models.NewMealAssignment(uuid.New(), day)
	surviving := models.NewMealAssignment(uuid.New(), day)
	for _, assignment := range []models.MealAssignment{doomed, surviving} {
		if err := repo.SaveAssignment(assignment); err != nil {
			t.Fatalf("SaveAssignment() error = %v", err)
		}
	}

	if err := repo.DeleteAssignment(doomed.ID); err != nil {
		t.Fatalf("DeleteAssignment() error = %v", err)
	}

	assignments, err := repo.FetchAssignmentsFor(day)
	if err != nil {
		t.Fatalf("FetchAssignmentsFor() error = %v", err)
	}
	for _, assignment := range assignments {
		if assignment.ID == doomed.ID {
			t.Fatal("deleted assignment id still present in day query")
		}
	}
	if len(assignments) != 1 || assignments[0].ID != surviving.ID {
		t.Fatalf("expected only the surviving assignment, got %+v", assignments)
	}
}

func TestAssignmentRepositoryDeleteAbsentIDIsNoOp(t *testing.T) {
	repo := NewAssignmentRepository(storage.NewMemoryStore())

	if err := repo.DeleteAssignment(uuid.New()); err != nil {
		t.Fatalf("DeleteAssignment(absent) error = %v, want nil", err)
	}
}

func TestAssignmentRepositoryPropagatesStoreErrors(t *testing.T) {
	storeErr := fmt.Errorf("%w: boom", storage.ErrDecode)
	repo := NewAssignmentRepository(failingStore{err: storeErr})

	if _, err := repo.FetchAllAssignments(); !errors.Is(err, storage.ErrDecode) {
		t.Fatalf("FetchAllAssignments() error = %v, want the store error unchanged", err)
	}
	if _, err := repo.FetchAssignmentsFor(time.Now()); !errors.Is(err, storage.ErrDecode) {
		t.Fatalf("FetchAssignmentsFor() error = %v, want the store error unchanged", err)
	}
	if err := repo.SaveAssignment(models.NewMealAssignment(uuid.New(), time.Now())); !errors.Is(err, storage.ErrDecode) {
		t.Fatalf("SaveAssignment() error = %v, want the store error unchanged", err)
	}
}
