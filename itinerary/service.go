package itinerary

import (
	"context"
	"strings"
	"time"

	"wayfare/errs"
	"wayfare/models"
	"wayfare/utils"
)

const dateLayout = "2006-01-02"

// Service orchestrates validation and persistence for itineraries.
// Ownership of reads is not enforced here; callers check the returned
// UserID before displaying or editing (update/delete handlers do).
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Create validates the supplied itinerary data and persists a new document
// owned by ownerID. Days always starts empty regardless of input.
func (s *Service) Create(ctx context.Context, in models.Itinerary, ownerID string) (string, error) {
	in.Days = nil
	if err := validate(&in); err != nil {
		return "", err
	}

	now := s.now()
	it := models.Itinerary{
		ItineraryID: utils.GenerateRandomString(13),
		UserID:      ownerID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Destination: in.Destination,
		Days:        []models.Day{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Insert(ctx, it); err != nil {
		return "", err
	}
	return it.ItineraryID, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Itinerary, error) {
	it, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it.Days == nil {
		it.Days = []models.Day{}
	}
	return it, nil
}

// Update merges the patch into the stored document, re-validates the
// merged state and refreshes UpdatedAt. A patch cannot change the owner.
func (s *Service) Update(ctx context.Context, id string, patch models.ItineraryPatch) error {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	merged := applyPatch(*existing, patch)
	if err := validate(&merged); err != nil {
		return err
	}

	merged.UpdatedAt = s.now()
	if !merged.UpdatedAt.After(existing.UpdatedAt) {
		merged.UpdatedAt = existing.UpdatedAt.Add(time.Millisecond)
	}

	return s.store.Update(ctx, id, merged)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// ListByOwner returns the owner's itineraries most recent first. A user
// with no itineraries gets an empty slice, not an error.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]models.Itinerary, error) {
	list, err := s.store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Itinerary{}
	}
	for i := range list {
		if list[i].Days == nil {
			list[i].Days = []models.Day{}
		}
	}
	return list, nil
}

func applyPatch(it models.Itinerary, patch models.ItineraryPatch) models.Itinerary {
	if patch.Title != nil {
		it.Title = *patch.Title
	}
	if patch.Description != nil {
		it.Description = *patch.Description
	}
	if patch.StartDate != nil {
		it.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		it.EndDate = *patch.EndDate
	}
	if patch.Destination != nil {
		it.Destination = patch.Destination
	}
	if patch.Days != nil {
		it.Days = *patch.Days
	}
	return it
}

// validate enforces the itinerary invariants: required title, destination
// and date range, end date not before start date, and chronologically
// ordered activity times within each day.
func validate(it *models.Itinerary) error {
	if strings.TrimSpace(it.Title) == "" {
		return errs.Validation("title is required")
	}
	if it.Destination == nil {
		return errs.Validation("destination is required")
	}
	if it.StartDate == "" {
		return errs.Validation("start date is required")
	}
	if it.EndDate == "" {
		return errs.Validation("end date is required")
	}

	start, err := time.Parse(dateLayout, it.StartDate)
	if err != nil {
		return errs.Validation("invalid start date %q", it.StartDate)
	}
	end, err := time.Parse(dateLayout, it.EndDate)
	if err != nil {
		return errs.Validation("invalid end date %q", it.EndDate)
	}
	if end.Before(start) {
		return errs.Validation("end date must not precede start date")
	}

	for _, day := range it.Days {
		if _, err := time.Parse(dateLayout, day.Date); err != nil {
			return errs.Validation("invalid day date %q", day.Date)
		}
		for _, act := range day.Activities {
			if strings.TrimSpace(act.Title) == "" {
				return errs.Validation("activity title is required")
			}
			if err := validateActivityTimes(act); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateActivityTimes(act models.Activity) error {
	if act.StartTime == "" && act.EndTime == "" {
		return nil
	}
	from, err := time.Parse(time.RFC3339, act.StartTime)
	if err != nil {
		return errs.Validation("invalid activity start time %q", act.StartTime)
	}
	to, err := time.Parse(time.RFC3339, act.EndTime)
	if err != nil {
		return errs.Validation("invalid activity end time %q", act.EndTime)
	}
	if to.Before(from) {
		return errs.Validation("activity %q ends before it starts", act.Title)
	}
	return nil
}
