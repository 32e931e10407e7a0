package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invoice mirrors one Xero invoice. The embedded contact, payments, credit
// notes and line items are stored opaquely; amounts copy the remote numeric
// representation verbatim.
type Invoice struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	InvoiceID              string   `json:"InvoiceID" bson:"InvoiceID"`
	Type                   string   `json:"Type" bson:"Type,omitempty"`
	InvoiceNumber          string   `json:"InvoiceNumber" bson:"InvoiceNumber,omitempty"`
	Reference              string   `json:"Reference" bson:"Reference,omitempty"`
	Payments               []bson.M `json:"Payments" bson:"Payments,omitempty"`
	CreditNotes            []bson.M `json:"CreditNotes" bson:"CreditNotes,omitempty"`
	Prepayments            []bson.M `json:"Prepayments" bson:"Prepayments,omitempty"`
	Overpayments           []bson.M `json:"Overpayments" bson:"Overpayments,omitempty"`
	AmountDue              float64  `json:"AmountDue" bson:"AmountDue"`
	AmountPaid             float64  `json:"AmountPaid" bson:"AmountPaid"`
	AmountCredited         float64  `json:"AmountCredited" bson:"AmountCredited"`
	IsDiscounted           bool     `json:"IsDiscounted" bson:"IsDiscounted"`
	HasAttachments         bool     `json:"HasAttachments" bson:"HasAttachments"`
	HasErrors              bool     `json:"HasErrors" bson:"HasErrors"`
	InvoiceAddresses       []bson.M `json:"InvoiceAddresses" bson:"InvoiceAddresses,omitempty"`
	InvoicePaymentServices []bson.M `json:"InvoicePaymentServices" bson:"InvoicePaymentServices,omitempty"`
	Contact                bson.M   `json:"Contact" bson:"Contact,omitempty"`
	DateString             string   `json:"DateString" bson:"DateString,omitempty"`
	Date                   XeroDate `json:"Date" bson:"Date"`
	DueDateString          string   `json:"DueDateString" bson:"DueDateString,omitempty"`
	DueDate                XeroDate `json:"DueDate" bson:"DueDate"`
	FullyPaidOnDate        XeroDate `json:"FullyPaidOnDate" bson:"FullyPaidOnDate"`
	Status                 string   `json:"Status" bson:"Status,omitempty"`
	LineAmountTypes        string   `json:"LineAmountTypes" bson:"LineAmountTypes,omitempty"`
	LineItems              []bson.M `json:"LineItems" bson:"LineItems,omitempty"`
	SubTotal               float64  `json:"SubTotal" bson:"SubTotal"`
	TotalTax               float64  `json:"TotalTax" bson:"TotalTax"`
	Total                  float64  `json:"Total" bson:"Total"`
	CurrencyCode           string   `json:"CurrencyCode" bson:"CurrencyCode,omitempty"`
	UpdatedDateUTC         XeroDate `json:"UpdatedDateUTC" bson:"UpdatedDateUTC"`

	Extra map[string]interface{} `json:"Extra,omitempty" bson:"Extra,omitempty"`
}
