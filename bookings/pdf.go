package bookings

import (
	"bytes"
	"fmt"
	"net/http"

	"twohtsounds/apperrors"
	"twohtsounds/db"
	"twohtsounds/models"
	"twohtsounds/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PrintBooking renders a one-page PDF summary of a booking request, for
// the band to take to venue walkthroughs.
func PrintBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, ok := utils.ParseObjectID(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var booking models.Booking
	err := db.BookingsCollection.FindOne(r.Context(), bson.M{"_id": oid}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		apperrors.Respond(w, err, "Booking not found", "Failed to fetch booking")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "2HTSounds Booking Sheet")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	line := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(50, 8, label)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, value)
		pdf.Ln(8)
	}

	line("Status", booking.Status)
	line("Contact", booking.Name)
	line("Email", booking.Email)
	line("Phone", booking.Phone)
	line("Date", booking.EventDate.Format("Monday, 2 January 2006"))
	line("Type", booking.EventType)
	line("Venue", booking.Venue)
	line("Address", fmt.Sprintf("%s, %s, %s", booking.Address, booking.City, booking.State))
	if booking.ExpectedAttendance > 0 {
		line("Attendance", fmt.Sprintf("%d", booking.ExpectedAttendance))
	}
	line("Budget", booking.Budget)

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Message")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, booking.Message, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		apperrors.Respond(w, err, "", "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+oid.Hex()+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
