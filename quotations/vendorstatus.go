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
)

// AdvanceVendorStatus moves the calling vendor's side of an approved
// quotation through accept/complete/deny. Denying also drops the vendor
// from the event's assigned list.
func AdvanceVendorStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	vendorID, _ := r.Context().Value(globals.UserIDKey).(string)
	eventID := ps.ByName("eventid")

	var input struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var quotation models.Quotation
	err := db.QuotationsCollection.FindOne(context.TODO(), bson.M{
		"vendorid": vendorID,
		"eventid":  eventID,
	}).Decode(&quotation)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "No quotation found for this event")
		return
	}

	if quotation.Status != models.StatusApproved {
		utils.RespondWithError(w, http.StatusBadRequest, "Quotation has not been approved")
		return
	}

	next, err := NextVendorStatus(quotation.VendorStatus, input.Action)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err = db.QuotationsCollection.UpdateOne(
		context.TODO(),
		bson.M{"quotationid": quotation.QuotationID},
		bson.M{"$set": bson.M{"vendor_status": next, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update quotation")
		return
	}

	if next == models.VendorDenied {
		_, err = db.EventsCollection.UpdateOne(
			context.TODO(),
			bson.M{"eventid": eventID},
			bson.M{"$pull": bson.M{"assigned_vendor_ids": vendorID}},
		)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to unassign vendor")
			return
		}
	}

	go mq.Emit(r.Context(), "vendor-status-advanced", models.Index{
		EntityType: "quotation", EntityID: quotation.QuotationID, Method: input.Action, UserID: vendorID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"quotationid":   quotation.QuotationID,
		"vendor_status": next,
	})
}
