package activity

import (
	"context"
	"net/http"

	"eventforge/db"
	"eventforge/models"
	"eventforge/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetActivityFeed returns the most recent audit rows for the admin UI.
func GetActivityFeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)
	skip := int64((opts.Page - 1) * opts.Limit)
	limit := int64(opts.Limit)

	cursor, err := db.ActivitiesCollection.Find(context.TODO(), bson.M{}, &options.FindOptions{
		Skip:  &skip,
		Limit: &limit,
		Sort:  bson.D{{Key: "timestamp", Value: -1}},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch activity")
		return
	}
	defer cursor.Close(context.TODO())

	var activities []models.Activity
	if err := cursor.All(context.TODO(), &activities); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing activity")
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}

	utils.RespondWithJSON(w, http.StatusOK, activities)
}
