package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"eventforge/db"
	"eventforge/models"
	"eventforge/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsDocID = "marketplace"

func defaultSettings() models.MarketplaceSettings {
	return models.MarketplaceSettings{
		ID:                   settingsDocID,
		DefaultEventApproval: "manual",
		UpdatedAt:            time.Now(),
	}
}

// GetSettings returns the marketplace settings document, creating the
// defaults on first read.
func GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var settings models.MarketplaceSettings
	err := db.SettingsCollection.FindOne(context.TODO(), bson.M{"_id": settingsDocID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		settings = defaultSettings()
		_, _ = db.SettingsCollection.InsertOne(context.TODO(), settings)
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings stores admin-chosen marketplace settings. Note that
// default_event_approval is persisted for the console but event creation
// does not consult it; new events always start pending.
func UpdateSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		DefaultEventApproval string `json:"default_event_approval"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.DefaultEventApproval != "manual" && input.DefaultEventApproval != "autoApprove" {
		utils.RespondWithError(w, http.StatusBadRequest, "default_event_approval must be manual or autoApprove")
		return
	}

	_, err := db.SettingsCollection.UpdateOne(
		context.TODO(),
		bson.M{"_id": settingsDocID},
		bson.M{"$set": bson.M{
			"default_event_approval": input.DefaultEventApproval,
			"updated_at":             time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"default_event_approval": input.DefaultEventApproval,
	})
}
