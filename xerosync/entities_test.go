package xerosync

import (
	"encoding/json"
	"testing"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/models"
)

func TestEntitiesCoverAllMirrorTypes(t *testing.T) {
	entities := Entities()
	if len(entities) != 7 {
		t.Fatalf("expected 7 entity types, got %d", len(entities))
	}
	seen := make(map[string]struct{})
	for _, entity := range entities {
		if entity.Path == "" || entity.WrapperKey == "" || entity.RemoteIDKey == "" ||
			entity.IDField == "" || entity.Collection == "" || entity.Normalize == nil {
			t.Fatalf("incomplete descriptor: %+v", entity)
		}
		if _, dup := seen[entity.Collection]; dup {
			t.Fatalf("duplicate collection %q", entity.Collection)
		}
		seen[entity.Collection] = struct{}{}
	}
}

func TestNormalizeInvoiceCarriesExtras(t *testing.T) {
	raw := json.RawMessage(`{
		"InvoiceID": "inv-1",
		"Type": "ACCREC",
		"Total": 150.5,
		"Date": "/Date(1627884000000+0000)/",
		"BrandingThemeID": "theme-9"
	}`)

	doc, err := normalizeInvoice(raw)
	if err != nil {
		t.Fatalf("normalize error: %v", err)
	}
	invoice, ok := doc.(*models.Invoice)
	if !ok {
		t.Fatalf("expected *models.Invoice, got %T", doc)
	}
	if invoice.InvoiceID != "inv-1" || invoice.Total != 150.5 {
		t.Fatalf("typed fields not mapped: %+v", invoice)
	}
	if !invoice.Date.Valid || invoice.Date.Time.UnixMilli() != 1627884000000 {
		t.Fatalf("date not decoded: %+v", invoice.Date)
	}
	if invoice.Extra["BrandingThemeID"] != "theme-9" {
		t.Fatalf("unrecognized member should land in extras: %v", invoice.Extra)
	}
	if _, ok := invoice.Extra["InvoiceID"]; ok {
		t.Fatal("typed members must not be duplicated into extras")
	}
}

func TestNormalizeRemoteUserKeepsWireNames(t *testing.T) {
	raw := json.RawMessage(`{"GlobalUserID":"u-1","FirstName":"Ada","IsSubscriber":true}`)

	doc, err := normalizeRemoteUser(raw)
	if err != nil {
		t.Fatalf("normalize error: %v", err)
	}
	user, ok := doc.(*models.RemoteUser)
	if !ok {
		t.Fatalf("expected *models.RemoteUser, got %T", doc)
	}
	if user.GlobalUserID != "u-1" || user.FirstName != "Ada" || !user.IsSubscriber {
		t.Fatalf("wire names not mapped: %+v", user)
	}
	if len(user.Extra) != 0 {
		t.Fatalf("expected no extras, got %v", user.Extra)
	}
}

func TestNormalizeAccountTypeMismatch(t *testing.T) {
	if _, err := normalizeAccount(json.RawMessage(`{"AccountID":"a1","Name":42}`)); err == nil {
		t.Fatal("expected error for wrong member type")
	}
}
