package xerosync

import (
	"encoding/json"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/models"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/utils"
)

// NormalizeFunc maps one raw remote record into its storage document. A nil
// error means the document is ready for bulk insert; an error drops that one
// record and the batch continues.
type NormalizeFunc func(raw json.RawMessage) (interface{}, error)

// EntityConfig is the static descriptor that turns the generic engine into a
// sync task for one entity type.
type EntityConfig struct {
	// Name identifies the entity type in logs, locks and the scheduler.
	Name string
	// Path is the remote collection path under the API base URL.
	Path string
	// WrapperKey is the JSON property the remote API nests the array under.
	WrapperKey string
	// RemoteIDKey is the identifier field on raw remote records.
	RemoteIDKey string
	// IDField is the identifier field on stored documents. It differs from
	// RemoteIDKey only where the stored shape renames fields (remote users).
	IDField string
	// Collection is the mirror collection the documents land in.
	Collection string
	// Normalize maps a raw record to its storage document.
	Normalize NormalizeFunc
}

var (
	accountFields         = utils.KnownJSONFields(models.Account{})
	contactFields         = utils.KnownJSONFields(models.Contact{})
	invoiceFields         = utils.KnownJSONFields(models.Invoice{})
	paymentFields         = utils.KnownJSONFields(models.Payment{})
	purchaseOrderFields   = utils.KnownJSONFields(models.PurchaseOrder{})
	bankTransactionFields = utils.KnownJSONFields(models.BankTransaction{})
	remoteUserFields      = utils.KnownJSONFields(models.RemoteUser{})
)

func normalizeAccount(raw json.RawMessage) (interface{}, error) {
	var doc models.Account
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	doc.Extra = utils.SplitExtra(raw, accountFields)
	return &doc, nil
}

func normalizeContact(raw json.RawMessage) (interface{}, error) {
	var doc models.Contact
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	doc.Extra = utils.SplitExtra(raw, contactFields)
	return &doc, nil
}

func normalizeInvoice(raw json.RawMessage) (interface{}, error) {
	var doc models.Invoice
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	doc.Extra = utils.SplitExtra(raw, invoiceFields)
	return &doc, nil
}

func normalizePayment(raw json.RawMessage) (interface{}, error) {
	var doc models.Payment
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	doc.Extra = utils.SplitExtra(raw, paymentFields)
	return &doc, nil
}

func normalizePurchaseOrder(raw json.RawMessage) (interface{}, error) {
	var doc models.PurchaseOrder
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	doc.Extra = utils.SplitExtra(raw, purchaseOrderFields)
	return &doc, nil
}

func normalizeBankTransaction(raw json.RawMessage) (interface{}, error) {
	var doc models.BankTransaction
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	doc.Extra = utils.SplitExtra(raw, bankTransactionFields)
	return &doc, nil
}

func normalizeRemoteUser(raw json.RawMessage) (interface{}, error) {
	var doc models.RemoteUser
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	doc.Extra = utils.SplitExtra(raw, remoteUserFields)
	return &doc, nil
}

// Entities returns the descriptor for every mirrored entity type.
func Entities() []EntityConfig {
	return []EntityConfig{
		{
			Name:        "accounts",
			Path:        "Accounts",
			WrapperKey:  "Accounts",
			RemoteIDKey: "AccountID",
			IDField:     "AccountID",
			Collection:  models.CollectionAccounts,
			Normalize:   normalizeAccount,
		},
		{
			Name:        "contacts",
			Path:        "Contacts",
			WrapperKey:  "Contacts",
			RemoteIDKey: "ContactID",
			IDField:     "ContactID",
			Collection:  models.CollectionContacts,
			Normalize:   normalizeContact,
		},
		{
			Name:        "invoices",
			Path:        "Invoices",
			WrapperKey:  "Invoices",
			RemoteIDKey: "InvoiceID",
			IDField:     "InvoiceID",
			Collection:  models.CollectionInvoices,
			Normalize:   normalizeInvoice,
		},
		{
			Name:        "payments",
			Path:        "Payments",
			WrapperKey:  "Payments",
			RemoteIDKey: "PaymentID",
			IDField:     "PaymentID",
			Collection:  models.CollectionPayments,
			Normalize:   normalizePayment,
		},
		{
			Name:        "purchaseorders",
			Path:        "PurchaseOrders",
			WrapperKey:  "PurchaseOrders",
			RemoteIDKey: "PurchaseOrderID",
			IDField:     "PurchaseOrderID",
			Collection:  models.CollectionPurchaseOrders,
			Normalize:   normalizePurchaseOrder,
		},
		{
			Name:        "banktransactions",
			Path:        "BankTransactions",
			WrapperKey:  "BankTransactions",
			RemoteIDKey: "BankTransactionID",
			IDField:     "BankTransactionID",
			Collection:  models.CollectionBankTransactions,
			Normalize:   normalizeBankTransaction,
		},
		{
			Name:        "users",
			Path:        "Users",
			WrapperKey:  "Users",
			RemoteIDKey: "GlobalUserID",
			IDField:     "globalUserID",
			Collection:  models.CollectionRemoteUsers,
			Normalize:   normalizeRemoteUser,
		},
	}
}

// EntityByName looks up a descriptor; ok is false for unknown names.
func EntityByName(name string) (EntityConfig, bool) {
	for _, entity := range Entities() {
		if entity.Name == name {
			return entity, true
		}
	}
	return EntityConfig{}, false
}
