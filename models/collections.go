package models

// Mirror collection names, plus the app-side user store.
const (
	CollectionAccounts         = "accounts"
	CollectionContacts         = "contacts"
	CollectionInvoices         = "invoices"
	CollectionPayments         = "payments"
	CollectionPurchaseOrders   = "purchaseorders"
	CollectionBankTransactions = "banktransactions"
	CollectionRemoteUsers      = "remote_users"
	CollectionUsers            = "users"
	CollectionRoles            = "roles"
)
