package search

import (
	"errors"
	"log"
	"net/http"

	"wayfare/errs"
	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
)

var client = NewClient()

// GET /api/search/locations?q=
func SearchLocations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query().Get("q")

	locations, err := client.Search(r.Context(), query)
	if err != nil {
		var se *errs.SearchError
		if errors.As(err, &se) {
			log.Printf("search: %v", err)
			utils.RespondWithError(w, http.StatusBadGateway, "Failed to search locations")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search locations")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, locations)
}
