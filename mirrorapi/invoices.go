package mirrorapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/models"
)

// GetAllInvoices lists mirrored invoices. Optional filters: invoice_type,
// invoice_status, line_amount_type, start_date/end_date on the invoice date.
func GetAllInvoices() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		stringFilter(c, filter, "invoice_type", "Type")
		stringFilter(c, filter, "invoice_status", "Status")
		stringFilter(c, filter, "line_amount_type", "LineAmountTypes")
		if err := applyDateRange(c, filter, "Date"); err != nil {
			respondBadRequest(c, err)
			return
		}

		docs, err := findAll(c.Request.Context(), models.CollectionInvoices, filter, bson.D{{Key: "Date", Value: -1}})
		if err != nil {
			respondStoreError(c, "GetAllInvoices", err)
			return
		}
		respondList(c, docs, "invoices")
	}
}

// GetInvoiceDetail returns one invoice by its remote identifier.
func GetInvoiceDetail() gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc bson.M
		err := config.GetMongoDB().Collection(models.CollectionInvoices).
			FindOne(c.Request.Context(), bson.M{"InvoiceID": c.Param("id")}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  http.StatusNotFound,
				"success": false,
				"message": "Invoice not found.",
			})
			return
		}
		if err != nil {
			respondStoreError(c, "GetInvoiceDetail", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"success": true,
			"data":    doc,
			"message": "Get invoice successfully.",
		})
	}
}
