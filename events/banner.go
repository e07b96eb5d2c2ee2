package events

import (
	"context"
	"net/http"
	"time"

	"eventforge/db"
	"eventforge/filemgr"
	"eventforge/globals"
	"eventforge/models"
	"eventforge/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadBanner accepts a multipart banner image for an event owned by
// the calling client.
func UploadBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	userID, _ := r.Context().Value(globals.UserIDKey).(string)

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

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("event-banner")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Banner file is required")
		return
	}
	defer file.Close()

	filename, err := filemgr.SaveBanner(file, header)
	if err != nil {
		if err == filemgr.ErrInvalidImage {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid image file")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save banner")
		return
	}

	_, err = db.EventsCollection.UpdateOne(
		context.TODO(),
		bson.M{"eventid": eventID},
		bson.M{"$set": bson.M{"banner": filename, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}
	invalidateApprovedCache()

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"banner": filename})
}
