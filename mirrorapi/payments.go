package mirrorapi

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/models"
)

// GetAllPayments lists mirrored payments. Optional filters: payment_type,
// status, start_date/end_date on UpdatedDateUTC.
func GetAllPayments() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		stringFilter(c, filter, "payment_type", "PaymentType")
		stringFilter(c, filter, "status", "Status")
		if err := applyDateRange(c, filter, "UpdatedDateUTC"); err != nil {
			respondBadRequest(c, err)
			return
		}

		docs, err := findAll(c.Request.Context(), models.CollectionPayments, filter, bson.D{{Key: "UpdatedDateUTC", Value: -1}})
		if err != nil {
			respondStoreError(c, "GetAllPayments", err)
			return
		}
		respondList(c, docs, "payments")
	}
}
