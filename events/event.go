package events

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"eventforge/db"
	"eventforge/models"
	"eventforge/rdx"
	"eventforge/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const approvedCacheKey = "events:approved"
const approvedCacheTTL = 60 * time.Second

// GetEvents lists events with pagination and optional status/category
// filters, newest first.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)

	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}

	skip := int64((opts.Page - 1) * opts.Limit)
	limit := int64(opts.Limit)

	cursor, err := db.EventsCollection.Find(context.TODO(), filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &limit,
		Sort:  bson.D{{Key: "created_at", Value: -1}},
	})
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

// GetEvent returns a single event by id.
func GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("eventid")

	var event models.Event
	err := db.EventsCollection.FindOne(context.TODO(), bson.M{"eventid": id}).Decode(&event)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, event)
}

// GetApprovedEvents serves the vendor browse list. The result is cached
// in Redis for a short window; moderation invalidates the key.
func GetApprovedEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(approvedCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	cursor, err := db.EventsCollection.Find(context.TODO(), bson.M{"status": models.StatusApproved}, &options.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}},
	})
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

	if payload, err := json.Marshal(events); err == nil {
		if err := rdx.SetWithExpiry(approvedCacheKey, string(payload), approvedCacheTTL); err != nil {
			log.Printf("Failed to cache approved events: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, events)
}

func invalidateApprovedCache() {
	if err := rdx.RdxDel(approvedCacheKey); err != nil {
		log.Printf("Failed to invalidate approved events cache: %v", err)
	}
}
