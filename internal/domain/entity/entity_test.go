package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/pricing"
	"github.com/sangkips/gestao-api/pkg/money"
)

func TestMaintenance_Complete(t *testing.T) {
	m := &Maintenance{Type: enum.MaintenanceTypePreventive, Status: enum.MaintenanceStatusInProgress}
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	if err := m.Complete(at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Status != enum.MaintenanceStatusCompleted {
		t.Fatalf("status = %s", m.Status)
	}
	if m.CompletedAt == nil || !m.CompletedAt.Equal(at) {
		t.Fatalf("completed_at = %v", m.CompletedAt)
	}
	if want := at.Add(180 * 24 * time.Hour); m.NextMaintenanceDate == nil || !m.NextMaintenanceDate.Equal(want) {
		t.Fatalf("next = %v, want %v", m.NextMaintenanceDate, want)
	}

	bad := &Maintenance{Type: "semanal", Status: enum.MaintenanceStatusScheduled}
	if err := bad.Complete(at); err == nil {
		t.Fatal("expected error for unknown type")
	}
	if bad.Status != enum.MaintenanceStatusScheduled || bad.CompletedAt != nil {
		t.Fatal("failed completion must not modify the record")
	}
}

func TestQuotation_IsExpired(t *testing.T) {
	valid := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	q := &Quotation{ValidUntil: &valid}

	if q.IsExpired(valid.Add(12 * time.Hour)) {
		t.Fatal("quotation is valid through the whole validity day")
	}
	if !q.IsExpired(valid.Add(25 * time.Hour)) {
		t.Fatal("quotation should be expired the day after")
	}
	if (&Quotation{}).IsExpired(time.Now()) {
		t.Fatal("quotation without validity never expires")
	}
}

func TestItemsFromLines_KeepOrder(t *testing.T) {
	lines := []pricing.Line{
		{Kind: enum.ItemTypeService, ItemID: uuid.New(), Name: "Instalação", UnitPrice: 15000, Quantity: 1, Total: 15000},
		{Kind: enum.ItemTypeProduct, ItemID: uuid.New(), Name: "Purificador", UnitPrice: 89990, Quantity: 2, Total: 179980},
	}

	items := SaleItemsFromLines(lines)
	if len(items) != 2 || items[0].Position != 1 || items[1].Name != "Purificador" || items[1].Total != money.Cents(179980) {
		t.Fatalf("unexpected sale items %+v", items)
	}

	q := &Quotation{Items: QuotationItemsFromLines(lines)}
	back := q.Lines()
	for i := range lines {
		if back[i] != lines[i] {
			t.Fatalf("line %d round trip mismatch: %+v vs %+v", i, back[i], lines[i])
		}
	}
}

func TestUser_Permissions(t *testing.T) {
	u := &User{Roles: []Role{
		{Name: RoleVendor, Permissions: []Permission{{Name: PermManageSales}, {Name: PermManageClients}}},
		{Name: "auditor", Permissions: []Permission{{Name: PermManageSales}}},
	}}

	perms := u.GetPermissions()
	if len(perms) != 2 {
		t.Fatalf("expected deduplicated permissions, got %v", perms)
	}
	if !u.HasRole(RoleVendor) || u.HasRole(RoleAdmin) {
		t.Fatal("unexpected role check result")
	}
}

func TestIdempotencyKey(t *testing.T) {
	now := time.Now()
	k := &IdempotencyKey{Endpoint: "POST /api/v1/sales", RequestHash: "abc", ExpiresAt: now.Add(time.Hour)}
	if k.IsExpired(now) || !k.IsExpired(now.Add(2*time.Hour)) {
		t.Fatal("unexpected expiry")
	}
	if !k.Matches("POST /api/v1/sales", "abc") || k.Matches("POST /api/v1/sales", "def") {
		t.Fatal("unexpected match result")
	}
}
