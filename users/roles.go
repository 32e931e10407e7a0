package users

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/models"
)

type roleInput struct {
	Name             string `json:"name" binding:"required"`
	Permission       string `json:"permission"`
	ActionPermission string `json:"action_permission"`
	IsListing        int    `json:"is_listing"`
}

// ListRoles returns all non-deleted roles.
func ListRoles() gin.HandlerFunc {
	return func(c *gin.Context) {
		cursor, err := config.GetMongoDB().Collection(models.CollectionRoles).
			Find(c.Request.Context(), bson.M{"is_deleted": false})
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "ListRoles", "find roles", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}
		defer cursor.Close(c.Request.Context())

		roles := make([]models.Role, 0)
		if err := cursor.All(c.Request.Context(), &roles); err != nil {
			config.LogError(config.GetLogger(), moduleName, "ListRoles", "decode roles", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"success": true,
			"data":    roles,
			"message": "Get all roles successfully.",
		})
	}
}

// CreateRole adds a role.
func CreateRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input roleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}

		now := time.Now().UTC()
		role := models.Role{
			Name:             strings.TrimSpace(input.Name),
			Permission:       input.Permission,
			ActionPermission: input.ActionPermission,
			IsListing:        input.IsListing,
			Status:           true,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		res, err := config.GetMongoDB().Collection(models.CollectionRoles).InsertOne(c.Request.Context(), role)
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "CreateRole", "insert role", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			role.ID = oid
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"success": true,
			"data":    role,
			"message": "Role created successfully.",
		})
	}
}

// UpdateRole edits an existing role in place.
func UpdateRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid role id.")
			return
		}

		var input roleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid request body.")
			return
		}

		res, err := config.GetMongoDB().Collection(models.CollectionRoles).
			UpdateOne(c.Request.Context(), bson.M{"_id": oid, "is_deleted": false}, bson.M{
				"$set": bson.M{
					"name":              strings.TrimSpace(input.Name),
					"permission":        input.Permission,
					"action_permission": input.ActionPermission,
					"is_listing":        input.IsListing,
					"updatedAt":         time.Now().UTC(),
				},
			})
		if err != nil {
			config.LogError(config.GetLogger(), moduleName, "UpdateRole", "update role", nil, err)
			respondError(c, http.StatusInternalServerError, "Something went wrong.")
			return
		}
		if res.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, "Role not found.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"success": true,
			"message": "Role updated successfully.",
		})
	}
}
