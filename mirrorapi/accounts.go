package mirrorapi

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/models"
)

// GetAllAccounts lists mirrored accounts. Optional filters: account_status,
// account_type, account_class, start_date/end_date on UpdatedDateUTC.
func GetAllAccounts() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		stringFilter(c, filter, "account_status", "Status")
		stringFilter(c, filter, "account_type", "Type")
		stringFilter(c, filter, "account_class", "Class")
		if err := applyDateRange(c, filter, "UpdatedDateUTC"); err != nil {
			respondBadRequest(c, err)
			return
		}

		docs, err := findAll(c.Request.Context(), models.CollectionAccounts, filter, bson.D{{Key: "UpdatedDateUTC", Value: -1}})
		if err != nil {
			respondStoreError(c, "GetAllAccounts", err)
			return
		}
		respondList(c, docs, "accounts")
	}
}
