package mirrorapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
)

const moduleName = "mirrorapi"

// dateLayout is the query-parameter format for start_date / end_date filters.
const dateLayout = "2006-01-02"

var (
	errInvalidStartDate = errors.New("Invalid start date format")
	errInvalidEndDate   = errors.New("Invalid end date format")
)

// stringFilter copies a query parameter into the mongo filter when present.
func stringFilter(c *gin.Context, filter bson.M, param string, field string) {
	if v := strings.TrimSpace(c.Query(param)); v != "" {
		filter[field] = v
	}
}

// parseFilterDate accepts a plain day or a full RFC3339 timestamp. dateOnly
// tells the caller whether the value named a whole day or an exact instant.
func parseFilterDate(raw string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(dateLayout, raw); err == nil {
		return t.UTC(), true, nil
	}
	if t, err = time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), false, nil
	}
	return time.Time{}, false, err
}

// applyDateRange narrows the filter to [start_date, end_date] on the given
// timestamp field. A date-only end bound is exclusive of the following day so
// a same-day range still matches; a timestamp end bound is the exact instant.
func applyDateRange(c *gin.Context, filter bson.M, field string) error {
	bounds := bson.M{}
	if raw := strings.TrimSpace(c.Query("start_date")); raw != "" {
		t, _, err := parseFilterDate(raw)
		if err != nil {
			return errInvalidStartDate
		}
		bounds["$gte"] = t
	}
	if raw := strings.TrimSpace(c.Query("end_date")); raw != "" {
		t, dateOnly, err := parseFilterDate(raw)
		if err != nil {
			return errInvalidEndDate
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1)
		}
		bounds["$lt"] = t
	}
	if len(bounds) > 0 {
		filter[field] = bounds
	}
	return nil
}

// findAll runs the filtered query and decodes every document. Results carry
// the stored shape verbatim, extras included.
func findAll(ctx context.Context, collection string, filter bson.M, sort bson.D) ([]bson.M, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := config.GetMongoDB().Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  http.StatusBadRequest,
		"success": false,
		"message": err.Error(),
	})
}

func respondStoreError(c *gin.Context, funcName string, err error) {
	config.LogError(config.GetLogger(), moduleName, funcName, "mirror read failed", nil, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  http.StatusInternalServerError,
		"success": false,
		"message": "Something went wrong.",
	})
}

func respondList(c *gin.Context, data interface{}, label string) {
	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"success": true,
		"data":    data,
		"message": "Get all " + label + " successfully.",
	})
}
