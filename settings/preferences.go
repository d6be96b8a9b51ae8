package settings

import (
	"context"
	"encoding/json"
	"net/http"

	"wayfare/db"
	"wayfare/models"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Default preferences if the user has none stored yet
func defaultPreferences(userID string) models.Preferences {
	return models.Preferences{
		UserID:               userID,
		DefaultTransportMode: "walking",
		Currency:             "USD",
		Language:             "english",
	}
}

var validTransportModes = map[string]bool{
	"driving":   true,
	"walking":   true,
	"bicycling": true,
	"transit":   true,
}

// GET /api/preferences
func GetPreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var prefs models.Preferences
	err := db.PreferencesCollection.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&prefs)
	if err == mongo.ErrNoDocuments {
		// Initialize preferences if missing
		prefs = defaultPreferences(userID)
		_, _ = db.PreferencesCollection.InsertOne(context.TODO(), prefs)
	} else if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, prefs)
}

// PUT /api/preferences
func UpdatePreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	update := bson.M{}
	if input.DefaultTransportMode != "" {
		if !validTransportModes[input.DefaultTransportMode] {
			http.Error(w, "Invalid transport mode", http.StatusBadRequest)
			return
		}
		update["default_transport_mode"] = input.DefaultTransportMode
	}
	if input.Currency != "" {
		update["currency"] = input.Currency
	}
	if input.Language != "" {
		update["language"] = input.Language
	}
	if len(update) == 0 {
		http.Error(w, "No preferences supplied", http.StatusBadRequest)
		return
	}

	_, err := db.PreferencesCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": userID},
		bson.M{"$set": update},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		http.Error(w, "Failed to update preferences", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Preferences updated"})
}
