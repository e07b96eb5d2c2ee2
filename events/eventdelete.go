package events

import (
	"context"
	"net/http"

	"eventforge/db"
	"eventforge/globals"
	"eventforge/models"
	"eventforge/mq"
	"eventforge/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// CascadeDeleteEvent removes an event and every quotation that
// references it. Quotations go first so a failure leaves no orphaned
// interest records pointing at a deleted event.
func CascadeDeleteEvent(ctx context.Context, eventID string) error {
	if _, err := db.QuotationsCollection.DeleteMany(ctx, bson.M{"eventid": eventID}); err != nil {
		return err
	}
	if _, err := db.EventsCollection.DeleteOne(ctx, bson.M{"eventid": eventID}); err != nil {
		return err
	}
	invalidateApprovedCache()
	return nil
}

// DeleteEvent is the admin cascade delete.
func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": eventID}).Err()
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	if err := CascadeDeleteEvent(context.TODO(), eventID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	go mq.Emit(r.Context(), "event-deleted", models.Index{
		EntityType: "event", EntityID: eventID, Method: "DELETE", UserID: userID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
