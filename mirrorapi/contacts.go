package mirrorapi

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/models"
)

// GetAllContacts lists mirrored contacts. Optional filters: contact_status,
// start_date/end_date on UpdatedDateUTC.
func GetAllContacts() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		stringFilter(c, filter, "contact_status", "ContactStatus")
		if err := applyDateRange(c, filter, "UpdatedDateUTC"); err != nil {
			respondBadRequest(c, err)
			return
		}

		docs, err := findAll(c.Request.Context(), models.CollectionContacts, filter, bson.D{{Key: "UpdatedDateUTC", Value: -1}})
		if err != nil {
			respondStoreError(c, "GetAllContacts", err)
			return
		}
		respondList(c, docs, "contacts")
	}
}
