package itinerary

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"wayfare/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

func shareBaseURL() string {
	if base := os.Getenv("SHARE_BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:8080"
}

// GET /api/itineraries/:id/export
// Renders the itinerary as a printable PDF with a QR link back to it.
func ExportItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	shareURL := fmt.Sprintf("%s/itineraries/%s", shareBaseURL(), it.ItineraryID)
	qrPNG, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, it.Title)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if it.Destination != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Destination: %s", it.Destination.Name))
		pdf.Ln(8)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Dates: %s to %s", it.StartDate, it.EndDate))
	pdf.Ln(8)
	if it.Description != "" {
		pdf.MultiCell(0, 6, it.Description, "", "L", false)
		pdf.Ln(4)
	}

	for i, day := range it.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d - %s", i+1, day.Date))
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 11)
		for _, act := range day.Activities {
			line := act.Title
			if act.StartTime != "" && act.EndTime != "" {
				line = fmt.Sprintf("%s - %s  %s", act.StartTime, act.EndTime, act.Title)
			}
			if act.Location != nil {
				line += " @ " + act.Location.Name
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
			if act.Notes != "" {
				pdf.SetFont("Arial", "I", 10)
				pdf.Cell(0, 5, "   "+act.Notes)
				pdf.Ln(5)
				pdf.SetFont("Arial", "", 11)
			}
		}
		pdf.Ln(3)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("share-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("share-qr", 160, 10, 35, 35, false, opts, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.Text(160, 48, "Scan to open itinerary")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=itinerary-%s.pdf", it.ItineraryID))
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Failed to render PDF", http.StatusInternalServerError)
	}
}
