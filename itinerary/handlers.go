package itinerary

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"wayfare/db"
	"wayfare/errs"
	"wayfare/models"
	"wayfare/mq"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
)

var svc *Service

func init() {
	svc = NewService(NewMongoStore(db.ItineraryCollection))
}

func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errs.IsValidation(err):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errs.IsNotFound(err):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errs.IsForbidden(err):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	default:
		log.Printf("itinerary: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}

// POST /api/itineraries
func CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var in models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := svc.Create(ctx, in, userID)
	if err != nil {
		respondServiceError(w, err, "Error creating itinerary")
		return
	}

	go mq.Emit(context.Background(), "itinerary-created", models.Index{
		EntityType: "itinerary", EntityId: id, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"itineraryid": id})
}

// GET /api/itineraries/:id
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := svc.Get(ctx, ps.ByName("id"))
	if err != nil {
		respondServiceError(w, err, "Error fetching itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, it)
}

// GET /api/itineraries
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := svc.ListByOwner(ctx, userID)
	if err != nil {
		respondServiceError(w, err, "Error fetching itineraries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

// PUT /api/itineraries/:id
func UpdateItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	itineraryID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	existing, err := svc.Get(ctx, itineraryID)
	if err != nil {
		respondServiceError(w, err, "Error fetching itinerary")
		return
	}
	if existing.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var patch models.ItineraryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := svc.Update(ctx, itineraryID, patch); err != nil {
		respondServiceError(w, err, "Error updating itinerary")
		return
	}

	go mq.Emit(context.Background(), "itinerary-updated", models.Index{
		EntityType: "itinerary", EntityId: itineraryID, Method: "PUT",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Itinerary updated successfully"})
}

// DELETE /api/itineraries/:id
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	itineraryID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	existing, err := svc.Get(ctx, itineraryID)
	if err != nil {
		respondServiceError(w, err, "Error fetching itinerary")
		return
	}
	if existing.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := svc.Delete(ctx, itineraryID); err != nil {
		respondServiceError(w, err, "Error deleting itinerary")
		return
	}

	go mq.Emit(context.Background(), "itinerary-deleted", models.Index{
		EntityType: "itinerary", EntityId: itineraryID, Method: "DELETE",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Itinerary deleted successfully"})
}

// POST /api/itineraries/:id/share
func ShareItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	itineraryID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := svc.Get(ctx, itineraryID)
	if err != nil {
		respondServiceError(w, err, "Error fetching itinerary")
		return
	}
	if it.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || strings.TrimSpace(input.Email) == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}

	share := utils.M{
		"shareid":     utils.GenerateRandomString(13),
		"itineraryid": itineraryID,
		"email":       strings.TrimSpace(input.Email),
		"shared_by":   userID,
		"created_at":  time.Now(),
	}
	if _, err := db.SharesCollection.InsertOne(ctx, share); err != nil {
		log.Printf("itinerary: record share: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error sharing itinerary")
		return
	}

	go mq.Emit(context.Background(), "itinerary-shared", models.Index{
		EntityType: "itinerary", EntityId: itineraryID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Itinerary shared successfully"})
}
