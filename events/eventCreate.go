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

// CreateEvent posts a new client event. Events always enter the pipeline
// pending; only an admin moderation call can approve them.
func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Date        string `json:"date"`
		Location    string `json:"location"`
		Category    string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Title == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title is required")
		return
	}

	event := models.Event{
		EventID:           utils.GenerateID("e", 10),
		Title:             input.Title,
		Description:       input.Description,
		Date:              input.Date,
		Location:          input.Location,
		Category:          input.Category,
		PostedBy:          userID,
		Status:            models.StatusPending,
		InterestIDs:       []string{},
		AssignedVendorIDs: []string{},
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if _, err := db.EventsCollection.InsertOne(context.TODO(), event); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	go mq.Emit(r.Context(), "event-created", models.Index{
		EntityType: "event", EntityID: event.EventID, Method: "POST", UserID: userID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, event)
}

// GetMyEvents lists the calling client's own events, newest first.
func GetMyEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	cursor, err := db.EventsCollection.Find(context.TODO(), bson.M{"postedby": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	defer cursor.Close(context.TODO())

	var events []models.Event
	if err := cursor.All(context.TODO(), &events); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing events")
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	utils.RespondWithJSON(w, http.StatusOK, events)
}

// DeleteOwnEvent lets a client remove an event they posted. Quotations
// referencing the event go with it.
func DeleteOwnEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	eventID := ps.ByName("eventid")

	var event models.Event
	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": eventID}).Decode(&event)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if event.PostedBy != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Not your event")
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
