package models

// Coordinates is the canonical coordinate representation. External
// providers that speak [lon, lat] arrays are converted at the adapter
// boundary; nothing past that boundary sees positional coordinates.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Location is a named geocoded place. Immutable value; owned by whichever
// itinerary or activity embeds it. ID is provider-assigned and may be
// empty for unsaved search results.
type Location struct {
	ID          string      `json:"id,omitempty" bson:"id,omitempty"`
	Name        string      `json:"name" bson:"name"`
	Address     string      `json:"address" bson:"address"`
	Coordinates Coordinates `json:"coordinates" bson:"coordinates"`
}
