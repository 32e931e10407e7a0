package mirrorapi

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

func testContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestStringFilter(t *testing.T) {
	filter := bson.M{}
	c := testContext(t, "account_status=ACTIVE&blank=%20%20")

	stringFilter(c, filter, "account_status", "Status")
	stringFilter(c, filter, "blank", "Blank")
	stringFilter(c, filter, "missing", "Missing")

	if filter["Status"] != "ACTIVE" {
		t.Fatalf("expected Status filter, got %v", filter)
	}
	if len(filter) != 1 {
		t.Fatalf("blank and missing params must not filter: %v", filter)
	}
}

func TestApplyDateRange(t *testing.T) {
	filter := bson.M{}
	c := testContext(t, "start_date=2021-08-01&end_date=2021-08-31")

	if err := applyDateRange(c, filter, "UpdatedDateUTC"); err != nil {
		t.Fatalf("applyDateRange error: %v", err)
	}
	bounds, ok := filter["UpdatedDateUTC"].(bson.M)
	if !ok {
		t.Fatalf("expected range bounds, got %v", filter)
	}
	gte := bounds["$gte"].(time.Time)
	lt := bounds["$lt"].(time.Time)
	if gte != time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected lower bound %v", gte)
	}
	// End bound is the start of the following day so the last day is included.
	if lt != time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected upper bound %v", lt)
	}
}

func TestApplyDateRangeTimestampBounds(t *testing.T) {
	filter := bson.M{}
	c := testContext(t, "start_date=2021-08-01T06%3A30%3A00Z&end_date=2021-08-01T18%3A00%3A00Z")

	if err := applyDateRange(c, filter, "Date"); err != nil {
		t.Fatalf("applyDateRange error: %v", err)
	}
	bounds := filter["Date"].(bson.M)
	if bounds["$gte"].(time.Time) != time.Date(2021, 8, 1, 6, 30, 0, 0, time.UTC) {
		t.Fatalf("unexpected lower bound %v", bounds["$gte"])
	}
	// Exact instants are strict bounds, no day rounding.
	if bounds["$lt"].(time.Time) != time.Date(2021, 8, 1, 18, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected upper bound %v", bounds["$lt"])
	}
}

func TestApplyDateRangeInvalidStart(t *testing.T) {
	c := testContext(t, "start_date=08-01-2021")
	err := applyDateRange(c, bson.M{}, "UpdatedDateUTC")
	if err == nil {
		t.Fatal("expected error for malformed start date")
	}
	if err.Error() != "Invalid start date format" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestApplyDateRangeInvalidEnd(t *testing.T) {
	c := testContext(t, "end_date=notadate")
	if err := applyDateRange(c, bson.M{}, "UpdatedDateUTC"); err == nil {
		t.Fatal("expected error for malformed end date")
	}
}

func TestApplyDateRangeNoParams(t *testing.T) {
	filter := bson.M{}
	c := testContext(t, "")
	if err := applyDateRange(c, filter, "UpdatedDateUTC"); err != nil {
		t.Fatalf("applyDateRange error: %v", err)
	}
	if len(filter) != 0 {
		t.Fatalf("no params should leave the filter untouched: %v", filter)
	}
}
