package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account mirrors one Xero chart-of-accounts entry. AccountID is the remote
// identifier; once mirrored the record is never updated by the sync engine.
type Account struct {
	ID primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	AccountID               string   `json:"AccountID" bson:"AccountID"`
	Code                    string   `json:"Code" bson:"Code,omitempty"`
	Name                    string   `json:"Name" bson:"Name,omitempty"`
	Type                    string   `json:"Type" bson:"Type,omitempty"`
	Class                   string   `json:"Class" bson:"Class,omitempty"`
	Status                  string   `json:"Status" bson:"Status,omitempty"`
	Description             string   `json:"Description" bson:"Description,omitempty"`
	TaxType                 string   `json:"TaxType" bson:"TaxType,omitempty"`
	SystemAccount           string   `json:"SystemAccount" bson:"SystemAccount,omitempty"`
	BankAccountNumber       string   `json:"BankAccountNumber" bson:"BankAccountNumber,omitempty"`
	BankAccountType         string   `json:"BankAccountType" bson:"BankAccountType,omitempty"`
	CurrencyCode            string   `json:"CurrencyCode" bson:"CurrencyCode,omitempty"`
	ReportingCode           string   `json:"ReportingCode" bson:"ReportingCode,omitempty"`
	ReportingCodeName       string   `json:"ReportingCodeName" bson:"ReportingCodeName,omitempty"`
	EnablePaymentsToAccount bool     `json:"EnablePaymentsToAccount" bson:"EnablePaymentsToAccount"`
	ShowInExpenseClaims     bool     `json:"ShowInExpenseClaims" bson:"ShowInExpenseClaims"`
	AddToWatchlist          bool     `json:"AddToWatchlist" bson:"AddToWatchlist"`
	HasAttachments          bool     `json:"HasAttachments" bson:"HasAttachments"`
	UpdatedDateUTC          XeroDate `json:"UpdatedDateUTC" bson:"UpdatedDateUTC"`

	Extra map[string]interface{} `json:"Extra,omitempty" bson:"Extra,omitempty"`
}
