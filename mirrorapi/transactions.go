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

// GetAllTransactions lists mirrored bank transactions. Optional filters:
// status, type, start_date/end_date on the transaction date.
func GetAllTransactions() gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		stringFilter(c, filter, "status", "Status")
		stringFilter(c, filter, "type", "Type")
		if err := applyDateRange(c, filter, "Date"); err != nil {
			respondBadRequest(c, err)
			return
		}

		docs, err := findAll(c.Request.Context(), models.CollectionBankTransactions, filter, bson.D{{Key: "Date", Value: -1}})
		if err != nil {
			respondStoreError(c, "GetAllTransactions", err)
			return
		}
		respondList(c, docs, "transactions")
	}
}

// GetTransactionDetail returns one bank transaction by its remote identifier.
func GetTransactionDetail() gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc bson.M
		err := config.GetMongoDB().Collection(models.CollectionBankTransactions).
			FindOne(c.Request.Context(), bson.M{"BankTransactionID": c.Param("id")}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  http.StatusNotFound,
				"success": false,
				"message": "Transaction not found.",
			})
			return
		}
		if err != nil {
			respondStoreError(c, "GetTransactionDetail", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"success": true,
			"data":    doc,
			"message": "Get transaction successfully.",
		})
	}
}

// GetBankDetails lists the distinct bank accounts seen across mirrored
// transactions.
func GetBankDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := config.GetMongoDB().Collection(models.CollectionBankTransactions).
			Distinct(c.Request.Context(), "BankAccount", bson.M{})
		if err != nil {
			respondStoreError(c, "GetBankDetails", err)
			return
		}
		respondList(c, values, "bank details")
	}
}
