package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BankTransaction mirrors one Xero bank transaction.
type BankTransaction struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	BankTransactionID string   `json:"BankTransactionID" bson:"BankTransactionID"`
	BankAccount       bson.M   `json:"BankAccount" bson:"BankAccount,omitempty"`
	Type              string   `json:"Type" bson:"Type,omitempty"`
	Reference         string   `json:"Reference" bson:"Reference,omitempty"`
	IsReconciled      bool     `json:"IsReconciled" bson:"IsReconciled"`
	HasAttachments    bool     `json:"HasAttachments" bson:"HasAttachments"`
	Contact           bson.M   `json:"Contact" bson:"Contact,omitempty"`
	DateString        string   `json:"DateString" bson:"DateString,omitempty"`
	Date              XeroDate `json:"Date" bson:"Date"`
	Status            string   `json:"Status" bson:"Status,omitempty"`
	LineAmountTypes   string   `json:"LineAmountTypes" bson:"LineAmountTypes,omitempty"`
	LineItems         []bson.M `json:"LineItems" bson:"LineItems,omitempty"`
	SubTotal          float64  `json:"SubTotal" bson:"SubTotal"`
	TotalTax          float64  `json:"TotalTax" bson:"TotalTax"`
	Total             float64  `json:"Total" bson:"Total"`
	UpdatedDateUTC    XeroDate `json:"UpdatedDateUTC" bson:"UpdatedDateUTC"`
	CurrencyCode      string   `json:"CurrencyCode" bson:"CurrencyCode,omitempty"`

	Extra map[string]interface{} `json:"Extra,omitempty" bson:"Extra,omitempty"`
}
