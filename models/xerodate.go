package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Xero serialises timestamps as "/Date(1627884000000+0000)/": epoch
// milliseconds with an optional zone suffix. The milliseconds are already UTC
// so the suffix carries no information and is ignored.
var xeroDatePattern = regexp.MustCompile(`^/Date\((-?\d+)([+-]\d{4})?\)/$`)

// ParseXeroDate decodes the wire format. It returns nil for anything that is
// not a well formed Xero date so a bad timestamp never fails a whole record.
func ParseXeroDate(raw string) *time.Time {
	match := xeroDatePattern.FindStringSubmatch(raw)
	if match == nil {
		return nil
	}
	ms, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return nil
	}
	t := time.UnixMilli(ms).UTC()
	return &t
}

// XeroDate is a timestamp decoded from the Xero wire format. Valid is false
// when the source value was absent, null or malformed; such values are stored
// and re-emitted as null.
type XeroDate struct {
	Time  time.Time
	Valid bool
}

func NewXeroDate(t time.Time) XeroDate {
	return XeroDate{Time: t.UTC(), Valid: true}
}

func (d *XeroDate) UnmarshalJSON(data []byte) error {
	d.Time = time.Time{}
	d.Valid = false
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if t := ParseXeroDate(raw); t != nil {
		d.Time = *t
		d.Valid = true
	}
	return nil
}

func (d XeroDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.Time.UTC().Format(time.RFC3339))), nil
}

func (d XeroDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !d.Valid {
		return bson.MarshalValue(primitive.Null{})
	}
	return bson.MarshalValue(d.Time.UTC())
}

func (d *XeroDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	d.Time = time.Time{}
	d.Valid = false
	if t == bsontype.Null {
		return nil
	}
	if t != bsontype.DateTime {
		return fmt.Errorf("cannot decode %v into a timestamp", t)
	}
	rv := bson.RawValue{Type: t, Value: data}
	d.Time = rv.Time().UTC()
	d.Valid = true
	return nil
}
