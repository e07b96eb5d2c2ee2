package quotations

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"eventforge/db"
	"eventforge/globals"
	"eventforge/models"
	"eventforge/mq"
	"eventforge/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SendInterest creates a vendor's quotation for an approved event. One
// quotation per (vendor, event) pair; a second attempt is rejected both
// by the upfront lookup and by the unique index underneath it.
func SendInterest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	vendorID, _ := r.Context().Value(globals.UserIDKey).(string)

	var input struct {
		EventID string  `json:"eventid"`
		Message string  `json:"message"`
		Amount  float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.EventID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Event id is required")
		return
	}

	var event models.Event
	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": input.EventID}).Decode(&event)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	err = db.QuotationsCollection.FindOne(context.TODO(), bson.M{
		"vendorid": vendorID,
		"eventid":  input.EventID,
	}).Err()
	if err != nil && err != mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch interestGuard(event.Status, err == nil) {
	case ErrEventNotOpen:
		utils.RespondWithError(w, http.StatusBadRequest, "Event is not open for quotations")
		return
	case ErrDuplicateInterest:
		utils.RespondWithError(w, http.StatusBadRequest, "Interest already sent for this event")
		return
	}

	var vendor models.User
	_ = db.UserCollection.FindOne(context.TODO(), bson.M{"userid": vendorID}).Decode(&vendor)

	quotation := models.Quotation{
		QuotationID:  utils.GenerateID("q", 10),
		VendorID:     vendorID,
		VendorName:   vendor.Name,
		EventID:      input.EventID,
		Message:      input.Message,
		Amount:       input.Amount,
		Status:       models.StatusPending,
		VendorStatus: models.VendorNone,
		Paid:         false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if _, err := db.QuotationsCollection.InsertOne(context.TODO(), quotation); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "Interest already sent for this event")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send interest")
		return
	}

	// Second half of the bidirectional link; see the cascade rules for
	// how the ids are kept consistent on delete.
	_, err = db.EventsCollection.UpdateOne(
		context.TODO(),
		bson.M{"eventid": input.EventID},
		bson.M{"$addToSet": bson.M{"interest_ids": quotation.QuotationID}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to link interest to event")
		return
	}

	go mq.Emit(r.Context(), "interest-sent", models.Index{
		EntityType: "quotation", EntityID: quotation.QuotationID, Method: "POST", UserID: vendorID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, quotation)
}

// RevokeInterest removes the calling vendor's quotation for an event and
// unlinks it from the event document.
func RevokeInterest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	vendorID, _ := r.Context().Value(globals.UserIDKey).(string)
	eventID := ps.ByName("eventid")

	var quotation models.Quotation
	err := db.QuotationsCollection.FindOne(context.TODO(), bson.M{
		"vendorid": vendorID,
		"eventid":  eventID,
	}).Decode(&quotation)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "No interest found for this event")
		return
	}

	if _, err := db.QuotationsCollection.DeleteOne(context.TODO(), bson.M{"quotationid": quotation.QuotationID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to revoke interest")
		return
	}

	_, err = db.EventsCollection.UpdateOne(
		context.TODO(),
		bson.M{"eventid": eventID},
		bson.M{"$pull": bson.M{
			"interest_ids":        quotation.QuotationID,
			"assigned_vendor_ids": vendorID,
		}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to unlink interest")
		return
	}

	go mq.Emit(r.Context(), "interest-revoked", models.Index{
		EntityType: "quotation", EntityID: quotation.QuotationID, Method: "DELETE", UserID: vendorID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// GetMyQuotations lists the calling vendor's quotations, newest first.
func GetMyQuotations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	vendorID, _ := r.Context().Value(globals.UserIDKey).(string)
	listQuotations(w, bson.M{"vendorid": vendorID})
}

// GetAllQuotations is the admin view, optionally filtered by status.
func GetAllQuotations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	listQuotations(w, filter)
}

// GetEventQuotations lists the quotations attached to one event.
func GetEventQuotations(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	listQuotations(w, bson.M{"eventid": ps.ByName("eventid")})
}

func listQuotations(w http.ResponseWriter, filter bson.M) {
	cursor, err := db.QuotationsCollection.Find(context.TODO(), filter, &options.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch quotations")
		return
	}
	defer cursor.Close(context.TODO())

	var quotations []models.Quotation
	if err := cursor.All(context.TODO(), &quotations); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing quotations")
		return
	}
	if quotations == nil {
		quotations = []models.Quotation{}
	}

	utils.RespondWithJSON(w, http.StatusOK, quotations)
}
