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
)

func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	category := models.Category{
		CategoryID:  utils.GenerateID("c", 10),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	if _, err := db.CategoriesCollection.InsertOne(context.TODO(), category); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, category)
}

func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cursor, err := db.CategoriesCollection.Find(context.TODO(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	defer cursor.Close(context.TODO())

	var categories []models.Category
	if err := cursor.All(context.TODO(), &categories); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error processing categories")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	utils.RespondWithJSON(w, http.StatusOK, categories)
}

func UpdateCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID := ps.ByName("categoryid")

	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if len(set) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	result, err := db.CategoriesCollection.UpdateOne(
		context.TODO(),
		bson.M{"categoryid": categoryID},
		bson.M{"$set": set},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"categoryid": categoryID, "updated": true})
}

func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID := ps.ByName("categoryid")

	result, err := db.CategoriesCollection.DeleteOne(context.TODO(), bson.M{"categoryid": categoryID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
