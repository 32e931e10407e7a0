package mirrorapi

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/models"
)

// GetAllRemoteUsers lists the mirrored Xero organisation users.
func GetAllRemoteUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := findAll(c.Request.Context(), models.CollectionRemoteUsers, bson.M{}, bson.D{{Key: "updatedDateUTC", Value: -1}})
		if err != nil {
			respondStoreError(c, "GetAllRemoteUsers", err)
			return
		}
		respondList(c, docs, "users")
	}
}
