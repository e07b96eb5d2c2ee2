package events

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

// ModerateEvent sets an event's status from an admin approve/deny call.
func ModerateEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	var input struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	status, ok := statusForAction(input.Action)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Action must be approve or deny")
		return
	}

	result, err := db.EventsCollection.UpdateOne(
		context.TODO(),
		bson.M{"eventid": eventID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	invalidateApprovedCache()

	go mq.Emit(r.Context(), "event-moderated", models.Index{
		EntityType: "event", EntityID: eventID, Method: input.Action, UserID: userID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"eventid": eventID, "status": status})
}

// ProposeEdit stores an admin draft on the event without touching the
// live fields. A later apply or discard consumes the whole draft.
func ProposeEdit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Date        string `json:"date"`
		Location    string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Title == "" && input.Description == "" && input.Date == "" && input.Location == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to edit")
		return
	}

	snapshot := models.PendingEdit{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		EditedBy:    userID,
		ProposedAt:  time.Now(),
	}

	result, err := db.EventsCollection.UpdateOne(
		context.TODO(),
		bson.M{"eventid": eventID},
		bson.M{"$set": bson.M{"pending_edit": snapshot}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store pending edit")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"eventid": eventID, "pending_edit": snapshot})
}

// ApplyPendingEdit copies every proposed field onto the live event and
// clears the draft in the same update.
func ApplyPendingEdit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	var event models.Event
	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": eventID}).Decode(&event)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	if event.PendingEdit == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No pending edit")
		return
	}

	set := snapshotUpdates(event.PendingEdit)
	set["updated_at"] = time.Now()

	_, err = db.EventsCollection.UpdateOne(
		context.TODO(),
		bson.M{"eventid": eventID},
		bson.M{"$set": set, "$unset": bson.M{"pending_edit": ""}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to apply pending edit")
		return
	}

	invalidateApprovedCache()

	go mq.Emit(r.Context(), "event-edit-applied", models.Index{
		EntityType: "event", EntityID: eventID, Method: "PUT", UserID: userID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"eventid": eventID, "applied": true})
}

// DiscardPendingEdit drops the draft unconditionally.
func DiscardPendingEdit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	result, err := db.EventsCollection.UpdateOne(
		context.TODO(),
		bson.M{"eventid": eventID},
		bson.M{"$unset": bson.M{"pending_edit": ""}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to discard pending edit")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"eventid": eventID, "discarded": true})
}
