package costs

import (
	"time"

	"github.com/shopspring/decimal"
)

// LinkedKind enumerates the entity kinds a cost line can reference.
type LinkedKind string

const (
	KindVehicle       LinkedKind = "vehicle"
	KindEmployee      LinkedKind = "employee"
	KindContact       LinkedKind = "contact"
	KindRentalCompany LinkedKind = "rentalCompany"
	KindNone          LinkedKind = "none"
)

// ValidKind reports whether k is a known linked-entity kind.
func ValidKind(k LinkedKind) bool {
	switch k {
	case KindVehicle, KindEmployee, KindContact, KindRentalCompany, KindNone:
		return true
	}
	return false
}

// CostType is a reference-data record describing what a cost line bills.
type CostType struct {
	ID         string     `json:"id"`
	TenantID   string     `json:"tenant_id"`
	Name       string     `json:"name"`
	Unit       string     `json:"unit,omitempty"`
	LinkedKind LinkedKind `json:"linked_kind"`
}

// LinkedEntity is a vehicle, employee, contact or rental company that a
// cost line can be associated with.
type LinkedEntity struct {
	ID   string     `json:"id"`
	Kind LinkedKind `json:"kind"`
	Name string     `json:"name"`
}

// LinkedRef is the tagged association carried on a cost line. Kind
// discriminates the variant; KindNone lines carry no reference at all.
type LinkedRef struct {
	Kind LinkedKind `json:"kind"`
	ID   string     `json:"id"`
	Name string     `json:"name,omitempty"`
}

// Line is one priced, quantified item billed against a project.
// LineNet and LineGross are always derived from quantity and unit prices,
// never stored.
type Line struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	ProjectID     string          `json:"project_id"`
	CostTypeID    string          `json:"cost_type_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitNet       decimal.Decimal `json:"unit_net"`
	UnitGross     decimal.Decimal `json:"unit_gross"`
	HasInvoice    bool            `json:"has_invoice"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Linked        *LinkedRef      `json:"linked,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// LineNet is the extended net value: quantity × unit net.
func (l Line) LineNet() decimal.Decimal {
	return l.Quantity.Mul(l.UnitNet).Round(2)
}

// LineGross is the extended gross value: quantity × unit gross.
func (l Line) LineGross() decimal.Decimal {
	return l.Quantity.Mul(l.UnitGross).Round(2)
}

// Totals is the fold of a project's current lines.
type Totals struct {
	Net   decimal.Decimal `json:"net"`
	Gross decimal.Decimal `json:"gross"`
}

// Sum folds the given lines into totals.
func Sum(lines []Line) Totals {
	t := Totals{Net: decimal.Zero, Gross: decimal.Zero}
	for _, line := range lines {
		t.Net = t.Net.Add(line.LineNet())
		t.Gross = t.Gross.Add(line.LineGross())
	}
	return t
}
