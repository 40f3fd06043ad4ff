package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/savor/internal/models"
	"github.com/terraincognita07/savor/internal/storage"
)

// AssignmentRepository follows the same whole-collection read-modify-write
// discipline as MealRepository, over the assignment collection.
type AssignmentRepository struct {
	store storage.Store
}

func NewAssignmentRepository(store storage.Store) *AssignmentRepository {
	return &AssignmentRepository{store: store}
}

// SaveAssignment always appends. Assignments are append-only; callers
// construct a fresh id per assignment.
func (repo *AssignmentRepository) SaveAssignment(assignment models.MealAssignment) error {
	assignments, err := repo.FetchAllAssignments()
	if err != nil {
		return err
	}
	assignments = append(assignments, assignment)
	return repo.store.Save(storage.AssignmentsKey, assignments)
}

func (repo *AssignmentRepository) FetchAllAssignments() ([]models.MealAssignment, error) {
	assignments := make([]models.MealAssignment, 0)
	if _, err := repo.store.Fetch(storage.AssignmentsKey, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// FetchAssignmentsFor returns every assignment stored against the calendar
// day the given timestamp falls on.
func (repo *AssignmentRepository) FetchAssignmentsFor(day time.Time) ([]models.MealAssignment, error) {
	assignments, err := repo.FetchAllAssignments()
	if err != nil {
		return nil, err
	}

	normalized := models.StartOfDay(day)
	matching := make([]models.MealAssignment, 0)
	for _, assignment := range assignments {
		if assignment.Date.Equal(normalized) {
			matching = append(matching, assignment)
		}
	}
	return matching, nil
}

func (repo *AssignmentRepository) DeleteAssignment(id uuid.UUID) error {
	assignments, err := repo.FetchAllAssignments()
	if err != nil {
		return err
	}

	remaining := make([]models.MealAssignment, 0, len(assignments))
	for _, assignment := range assignments {
		if assignment.ID != id {
			remaining = append(remaining, assignment)
		}
	}

	return repo.store.Save(storage.AssignmentsKey, remaining)
}
