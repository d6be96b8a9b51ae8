package models

import "time"

// Itinerary represents a travel itinerary with its day-by-day plan.
type Itinerary struct {
	ItineraryID string    `json:"itineraryid" bson:"itineraryid"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	StartDate   string    `json:"start_date" bson:"start_date"`
	EndDate     string    `json:"end_date" bson:"end_date"`
	Destination *Location `json:"destination" bson:"destination"`
	Days        []Day     `json:"days" bson:"days"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Day holds the ordered activities for one calendar date.
type Day struct {
	DayID      string     `json:"dayid" bson:"dayid"`
	Date       string     `json:"date" bson:"date"`
	Activities []Activity `json:"activities" bson:"activities"`
}

type Activity struct {
	ActivityID  string    `json:"activityid" bson:"activityid"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	Location    *Location `json:"location,omitempty" bson:"location,omitempty"`
	StartTime   string    `json:"start_time" bson:"start_time"`
	EndTime     string    `json:"end_time" bson:"end_time"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

// ItineraryPatch carries a partial update. Nil fields are left untouched;
// the merged document is re-validated before it is stored.
type ItineraryPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	Destination *Location `json:"destination,omitempty"`
	Days        *[]Day    `json:"days,omitempty"`
}
