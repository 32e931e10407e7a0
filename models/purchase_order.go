package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchaseOrder mirrors one Xero purchase order.
type PurchaseOrder struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	PurchaseOrderID      string   `json:"PurchaseOrderID" bson:"PurchaseOrderID"`
	PurchaseOrderNumber  string   `json:"PurchaseOrderNumber" bson:"PurchaseOrderNumber,omitempty"`
	DateString           string   `json:"DateString" bson:"DateString,omitempty"`
	Date                 XeroDate `json:"Date" bson:"Date"`
	DeliveryDateString   string   `json:"DeliveryDateString" bson:"DeliveryDateString,omitempty"`
	DeliveryDate         XeroDate `json:"DeliveryDate" bson:"DeliveryDate"`
	DeliveryAddress      string   `json:"DeliveryAddress" bson:"DeliveryAddress,omitempty"`
	AttentionTo          string   `json:"AttentionTo" bson:"AttentionTo,omitempty"`
	Telephone            string   `json:"Telephone" bson:"Telephone,omitempty"`
	DeliveryInstructions string   `json:"DeliveryInstructions" bson:"DeliveryInstructions,omitempty"`
	HasErrors            bool     `json:"HasErrors" bson:"HasErrors"`
	IsDiscounted         bool     `json:"IsDiscounted" bson:"IsDiscounted"`
	Reference            string   `json:"Reference" bson:"Reference,omitempty"`
	Type                 string   `json:"Type" bson:"Type,omitempty"`
	CurrencyRate         float64  `json:"CurrencyRate" bson:"CurrencyRate"`
	CurrencyCode         string   `json:"CurrencyCode" bson:"CurrencyCode,omitempty"`
	Contact              bson.M   `json:"Contact" bson:"Contact,omitempty"`
	BrandingThemeID      string   `json:"BrandingThemeID" bson:"BrandingThemeID,omitempty"`
	Status               string   `json:"Status" bson:"Status,omitempty"`
	LineAmountTypes      string   `json:"LineAmountTypes" bson:"LineAmountTypes,omitempty"`
	LineItems            []bson.M `json:"LineItems" bson:"LineItems,omitempty"`
	SubTotal             float64  `json:"SubTotal" bson:"SubTotal"`
	TotalTax             float64  `json:"TotalTax" bson:"TotalTax"`
	Total                float64  `json:"Total" bson:"Total"`
	UpdatedDateUTC       XeroDate `json:"UpdatedDateUTC" bson:"UpdatedDateUTC"`
	HasAttachments       bool     `json:"HasAttachments" bson:"HasAttachments"`

	Extra map[string]interface{} `json:"Extra,omitempty" bson:"Extra,omitempty"`
}
