package mirrorapi

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/models"
)

// GetAllPurchaseOrders lists mirrored purchase orders. Optional filters:
// purchase_order_status, start_date/end_date on UpdatedDateUTC.
func GetAllPurchaseOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		stringFilter(c, filter, "purchase_order_status", "Status")
		if err := applyDateRange(c, filter, "UpdatedDateUTC"); err != nil {
			respondBadRequest(c, err)
			return
		}

		docs, err := findAll(c.Request.Context(), models.CollectionPurchaseOrders, filter, bson.D{{Key: "UpdatedDateUTC", Value: -1}})
		if err != nil {
			respondStoreError(c, "GetAllPurchaseOrders", err)
			return
		}
		respondList(c, docs, "purchase orders")
	}
}
