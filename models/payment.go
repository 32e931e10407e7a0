package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment mirrors one Xero payment, including its embedded account and invoice
// references as opaque sub-documents.
type Payment struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	PaymentID           string   `json:"PaymentID" bson:"PaymentID"`
	Date                XeroDate `json:"Date" bson:"Date"`
	BankAmount          float64  `json:"BankAmount" bson:"BankAmount"`
	Amount              float64  `json:"Amount" bson:"Amount"`
	Reference           string   `json:"Reference" bson:"Reference,omitempty"`
	CurrencyRate        float64  `json:"CurrencyRate" bson:"CurrencyRate"`
	PaymentType         string   `json:"PaymentType" bson:"PaymentType,omitempty"`
	Status              string   `json:"Status" bson:"Status,omitempty"`
	UpdatedDateUTC      XeroDate `json:"UpdatedDateUTC" bson:"UpdatedDateUTC"`
	HasAccount          bool     `json:"HasAccount" bson:"HasAccount"`
	IsReconciled        bool     `json:"IsReconciled" bson:"IsReconciled"`
	Account             bson.M   `json:"Account" bson:"Account,omitempty"`
	Invoice             bson.M   `json:"Invoice" bson:"Invoice,omitempty"`
	HasValidationErrors bool     `json:"HasValidationErrors" bson:"HasValidationErrors"`

	Extra map[string]interface{} `json:"Extra,omitempty" bson:"Extra,omitempty"`
}
