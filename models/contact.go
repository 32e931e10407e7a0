package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact mirrors one Xero contact. Addresses, phones and balances are copied
// as opaque sub-documents; their internal shape is the remote API's business.
type Contact struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	ContactID           string        `json:"ContactID" bson:"ContactID"`
	ContactStatus       string        `json:"ContactStatus" bson:"ContactStatus,omitempty"`
	Name                string        `json:"Name" bson:"Name,omitempty"`
	FirstName           string        `json:"FirstName" bson:"FirstName,omitempty"`
	LastName            string        `json:"LastName" bson:"LastName,omitempty"`
	EmailAddress        string        `json:"EmailAddress" bson:"EmailAddress,omitempty"`
	BankAccountDetails  string        `json:"BankAccountDetails" bson:"BankAccountDetails,omitempty"`
	Addresses           []bson.M      `json:"Addresses" bson:"Addresses,omitempty"`
	Phones              []bson.M      `json:"Phones" bson:"Phones,omitempty"`
	ContactGroups       []interface{} `json:"ContactGroups" bson:"ContactGroups,omitempty"`
	ContactPersons      []interface{} `json:"ContactPersons" bson:"ContactPersons,omitempty"`
	IsSupplier          bool          `json:"IsSupplier" bson:"IsSupplier"`
	IsCustomer          bool          `json:"IsCustomer" bson:"IsCustomer"`
	HasAttachments      bool          `json:"HasAttachments" bson:"HasAttachments"`
	HasValidationErrors bool          `json:"HasValidationErrors" bson:"HasValidationErrors"`
	Balances            bson.M        `json:"Balances" bson:"Balances,omitempty"`
	DefaultCurrency     string        `json:"DefaultCurrency" bson:"DefaultCurrency,omitempty"`
	UpdatedDateUTC      XeroDate      `json:"UpdatedDateUTC" bson:"UpdatedDateUTC"`

	Extra map[string]interface{} `json:"Extra,omitempty" bson:"Extra,omitempty"`
}
