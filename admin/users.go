package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"eventforge/db"
	"eventforge/events"
	"eventforge/globals"
	"eventforge/models"
	"eventforge/mq"
	"eventforge/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetUsers lists accounts for the admin console, filterable by role and
// approval status.
func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter := bson.M{}
	if role := r.URL.Query().Get("role"); role != "" {
		filter["role"] = role
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	cursor, err := db.UserCollection.Find(context.TODO(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	defer cursor.Close(context.TODO())

	var users []models.User
	if err := cursor.All(context.TODO(), &users); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing users")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.RespondWithJSON(w, http.StatusOK, users)
}

// ModerateUser approves or denies an account. Denied accounts keep their
// documents but fail the login gate.
func ModerateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	targetID := ps.ByName("userid")
	adminID, _ := r.Context().Value(globals.UserIDKey).(string)

	var input struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var status string
	switch input.Action {
	case "approve":
		status = models.StatusApproved
	case "deny":
		status = models.StatusDenied
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Action must be approve or deny")
		return
	}

	result, err := db.UserCollection.UpdateOne(
		context.TODO(),
		bson.M{"userid": targetID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	go mq.Emit(r.Context(), "user-moderated", models.Index{
		EntityType: "user", EntityID: targetID, Method: input.Action, UserID: adminID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"userid": targetID, "status": status})
}

// DeleteUser removes an account and cascades by role. A client takes
// their events (and those events' quotations) with them; a vendor takes
// their quotations and is stripped from every event's assignment lists.
func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	targetID := ps.ByName("userid")
	adminID, _ := r.Context().Value(globals.UserIDKey).(string)

	var user models.User
	err := db.UserCollection.FindOne(context.TODO(), bson.M{"userid": targetID}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	switch user.Role {
	case models.RoleClient:
		if err := cascadeDeleteClient(context.TODO(), targetID); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete user's events")
			return
		}
	case models.RoleVendor:
		if err := cascadeDeleteVendor(context.TODO(), targetID); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete user's quotations")
			return
		}
	}

	if _, err := db.UserCollection.DeleteOne(context.TODO(), bson.M{"userid": targetID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	go mq.Emit(r.Context(), "user-deleted", models.Index{
		EntityType: "user", EntityID: targetID, Method: "DELETE", UserID: adminID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

func cascadeDeleteClient(ctx context.Context, clientID string) error {
	cursor, err := db.EventsCollection.Find(ctx, bson.M{"postedby": clientID})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var clientEvents []models.Event
	if err := cursor.All(ctx, &clientEvents); err != nil {
		return err
	}

	for _, ev := range clientEvents {
		if err := events.CascadeDeleteEvent(ctx, ev.EventID); err != nil {
			return err
		}
	}
	return nil
}

func cascadeDeleteVendor(ctx context.Context, vendorID string) error {
	cursor, err := db.QuotationsCollection.Find(ctx, bson.M{"vendorid": vendorID})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var vendorQuotations []models.Quotation
	if err := cursor.All(ctx, &vendorQuotations); err != nil {
		return err
	}

	for _, q := range vendorQuotations {
		_, err := db.EventsCollection.UpdateOne(ctx, bson.M{"eventid": q.EventID}, bson.M{
			"$pull": bson.M{
				"interest_ids":        q.QuotationID,
				"assigned_vendor_ids": vendorID,
			},
		})
		if err != nil {
			return err
		}
	}

	_, err = db.QuotationsCollection.DeleteMany(ctx, bson.M{"vendorid": vendorID})
	return err
}
