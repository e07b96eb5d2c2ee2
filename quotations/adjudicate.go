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

// Adjudicate is the admin approve/deny on a quotation. Approval assigns
// the vendor: vendor_status becomes assigned and the vendor id joins the
// event's assigned list. Denial resets vendor_status and pulls the
// vendor back out, so denying a previously approved quotation never
// leaves the vendor assigned on the event.
func Adjudicate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	quotationID := ps.ByName("quotationid")
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	var input struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	effect, ok := adjudicationEffect(input.Action)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Action must be approve or deny")
		return
	}

	var quotation models.Quotation
	err := db.QuotationsCollection.FindOne(context.TODO(), bson.M{"quotationid": quotationID}).Decode(&quotation)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Quotation not found")
		return
	}

	_, err = db.QuotationsCollection.UpdateOne(
		context.TODO(),
		bson.M{"quotationid": quotationID},
		bson.M{"$set": bson.M{
			"status":        effect.Status,
			"vendor_status": effect.VendorStatus,
			"updated_at":    time.Now(),
		}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update quotation")
		return
	}

	if effect.Unassign {
		_, err = db.EventsCollection.UpdateOne(
			context.TODO(),
			bson.M{"eventid": quotation.EventID},
			bson.M{"$pull": bson.M{"assigned_vendor_ids": quotation.VendorID}},
		)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to unassign vendor")
			return
		}
	} else {
		var event models.Event
		if err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": quotation.EventID}).Decode(&event); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to assign vendor")
			return
		}
		_, err = db.EventsCollection.UpdateOne(
			context.TODO(),
			bson.M{"eventid": quotation.EventID},
			bson.M{"$set": bson.M{"assigned_vendor_ids": withVendorAssigned(event.AssignedVendorIDs, quotation.VendorID)}},
		)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to assign vendor")
			return
		}
	}

	go mq.Emit(r.Context(), "quotation-adjudicated", models.Index{
		EntityType: "quotation", EntityID: quotationID, Method: input.Action, UserID: userID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"quotationid": quotationID, "status": effect.Status})
}

// MarkPaid / MarkUnpaid flip the payment flag on one quotation. The flag
// is independent of the status machine.
func MarkPaid(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	setPaid(w, r, ps.ByName("quotationid"), true)
}

func MarkUnpaid(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	setPaid(w, r, ps.ByName("quotationid"), false)
}

func setPaid(w http.ResponseWriter, r *http.Request, quotationID string, paid bool) {
	result, err := db.QuotationsCollection.UpdateOne(
		context.TODO(),
		bson.M{"quotationid": quotationID},
		bson.M{"$set": bson.M{"paid": paid, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update quotation")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Quotation not found")
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	go mq.Emit(r.Context(), "quotation-paid-flag", models.Index{
		EntityType: "quotation", EntityID: quotationID, Method: "PUT", UserID: userID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"quotationid": quotationID, "paid": paid})
}

// BulkSetPaid updates the paid flag on a batch of quotations in one call.
func BulkSetPaid(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		QuotationIDs []string `json:"quotationids"`
		Paid         bool     `json:"paid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if len(input.QuotationIDs) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No quotation ids given")
		return
	}

	result, err := db.QuotationsCollection.UpdateMany(
		context.TODO(),
		bson.M{"quotationid": bson.M{"$in": input.QuotationIDs}},
		bson.M{"$set": bson.M{"paid": input.Paid, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update quotations")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"updated": result.ModifiedCount, "paid": input.Paid})
}
