package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// InvoiceItem is one positional line of an invoice
type InvoiceItem struct {
	SlNo        int             `json:"sl_no"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Rate        decimal.Decimal `json:"rate"`
	Per         string          `json:"per"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceLine is the caller-supplied part of an item; numbering and amount are derived
type InvoiceLine struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Rate        decimal.Decimal `json:"rate"`
}

// DefaultUnit is used when a line carries no unit label
const DefaultUnit = "kg"

// NewInvoiceItems numbers lines from 1 and computes each amount as quantity x rate
func NewInvoiceItems(lines []InvoiceLine) []InvoiceItem {
	items := make([]InvoiceItem, 0, len(lines))
	for i, line := range lines {
		unit := line.Unit
		if unit == "" {
			unit = DefaultUnit
		}
		items = append(items, InvoiceItem{
			SlNo:        i + 1,
			Description: line.Description,
			Quantity:    line.Quantity,
			Unit:        unit,
			Rate:        line.Rate,
			Per:         unit,
			Amount:      line.Quantity.Mul(line.Rate),
		})
	}
	return items
}

// ComputeTotals sums quantities and amounts over items
func ComputeTotals(items []InvoiceItem) (totalQuantity, totalAmount decimal.Decimal) {
	totalQuantity, totalAmount = decimal.Zero, decimal.Zero
	for _, item := range items {
		totalQuantity = totalQuantity.Add(item.Quantity)
		totalAmount = totalAmount.Add(item.Quantity.Mul(item.Rate))
	}
	return totalQuantity, totalAmount
}

// InvoiceDetails holds the optional dispatch and reference metadata of an invoice
type InvoiceDetails struct {
	DeliveryNote      string `json:"delivery_note,omitempty"`
	ModeOfPayment     string `json:"mode_of_payment,omitempty"`
	ReferenceNo       string `json:"reference_no,omitempty"`
	ReferenceDate     string `json:"reference_date,omitempty"`
	OtherReferences   string `json:"other_references,omitempty"`
	BuyerOrderNo      string `json:"buyer_order_no,omitempty"`
	BuyerOrderDate    string `json:"buyer_order_date,omitempty"`
	DispatchDocNo     string `json:"dispatch_doc_no,omitempty"`
	DeliveryNoteDate  string `json:"delivery_note_date,omitempty"`
	DispatchedThrough string `json:"dispatched_through,omitempty"`
	Destination       string `json:"destination,omitempty"`
	TermsOfDelivery   string `json:"terms_of_delivery,omitempty"`
}

// Invoice is a GST sales invoice
type Invoice struct {
	ID             string                           `gorm:"primaryKey;type:uuid" json:"id"`
	InvoiceNo      int                              `gorm:"column:invoice_no;not null;uniqueIndex" json:"invoice_no"`
	Date           string                           `gorm:"not null" json:"date"`
	PartyID        string                           `gorm:"column:party_id;type:uuid;index" json:"party_id"`
	Party          Party                            `gorm:"foreignKey:PartyID;references:ID" json:"party"`
	InvoiceDetails `gorm:"embedded"`
	Items          datatypes.JSONSlice[InvoiceItem] `gorm:"type:jsonb" json:"items"`
	TotalQuantity  decimal.Decimal                  `gorm:"column:total_quantity;type:decimal(14,3)" json:"total_quantity"`
	TotalAmount    decimal.Decimal                  `gorm:"column:total_amount;type:decimal(14,2)" json:"total_amount"`
	AmountInWords  string                           `gorm:"column:amount_in_words" json:"amount_in_words"`
	CreatedAt      time.Time                        `json:"-"`
}

// TableName specifies the table name for Invoice
func (Invoice) TableName() string {
	return "invoices"
}

// Clone returns a deep copy of the invoice
func (i Invoice) Clone() Invoice {
	i.Party = i.Party.Clone()
	if i.Items != nil {
		items := make([]InvoiceItem, len(i.Items))
		copy(items, i.Items)
		i.Items = items
	}
	return i
}

// UpdateInvoiceRequest carries the fields of a partial invoice update.
// Nil fields are left untouched.
type UpdateInvoiceRequest struct {
	InvoiceNo         *int             `json:"invoice_no,omitempty"`
	Date              *string          `json:"date,omitempty"`
	DeliveryNote      *string          `json:"delivery_note,omitempty"`
	ModeOfPayment     *string          `json:"mode_of_payment,omitempty"`
	ReferenceNo       *string          `json:"reference_no,omitempty"`
	ReferenceDate     *string          `json:"reference_date,omitempty"`
	OtherReferences   *string          `json:"other_references,omitempty"`
	BuyerOrderNo      *string          `json:"buyer_order_no,omitempty"`
	BuyerOrderDate    *string          `json:"buyer_order_date,omitempty"`
	DispatchDocNo     *string          `json:"dispatch_doc_no,omitempty"`
	DeliveryNoteDate  *string          `json:"delivery_note_date,omitempty"`
	DispatchedThrough *string          `json:"dispatched_through,omitempty"`
	Destination       *string          `json:"destination,omitempty"`
	TermsOfDelivery   *string          `json:"terms_of_delivery,omitempty"`
	Items             *[]InvoiceItem   `json:"items,omitempty"`
	TotalQuantity     *decimal.Decimal `json:"total_quantity,omitempty"`
	TotalAmount       *decimal.Decimal `json:"total_amount,omitempty"`
	AmountInWords     *string          `json:"amount_in_words,omitempty"`
}

func (r *UpdateInvoiceRequest) detailFields(d *InvoiceDetails) []struct {
	column string
	src    *string
	dst    *string
} {
	return []struct {
		column string
		src    *string
		dst    *string
	}{
		{"delivery_note", r.DeliveryNote, &d.DeliveryNote},
		{"mode_of_payment", r.ModeOfPayment, &d.ModeOfPayment},
		{"reference_no", r.ReferenceNo, &d.ReferenceNo},
		{"reference_date", r.ReferenceDate, &d.ReferenceDate},
		{"other_references", r.OtherReferences, &d.OtherReferences},
		{"buyer_order_no", r.BuyerOrderNo, &d.BuyerOrderNo},
		{"buyer_order_date", r.BuyerOrderDate, &d.BuyerOrderDate},
		{"dispatch_doc_no", r.DispatchDocNo, &d.DispatchDocNo},
		{"delivery_note_date", r.DeliveryNoteDate, &d.DeliveryNoteDate},
		{"dispatched_through", r.DispatchedThrough, &d.DispatchedThrough},
		{"destination", r.Destination, &d.Destination},
		{"terms_of_delivery", r.TermsOfDelivery, &d.TermsOfDelivery},
	}
}

// Columns maps the provided fields to their at-rest column names
func (r *UpdateInvoiceRequest) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if r.InvoiceNo != nil {
		cols["invoice_no"] = *r.InvoiceNo
	}
	if r.Date != nil {
		cols["date"] = *r.Date
	}
	for _, f := range r.detailFields(&InvoiceDetails{}) {
		if f.src != nil {
			cols[f.column] = *f.src
		}
	}
	if r.Items != nil {
		items := make([]InvoiceItem, len(*r.Items))
		copy(items, *r.Items)
		cols["items"] = datatypes.JSONSlice[InvoiceItem](items)
	}
	if r.TotalQuantity != nil {
		cols["total_quantity"] = *r.TotalQuantity
	}
	if r.TotalAmount != nil {
		cols["total_amount"] = *r.TotalAmount
	}
	if r.AmountInWords != nil {
		cols["amount_in_words"] = *r.AmountInWords
	}
	return cols
}

// ApplyTo merges the provided fields into inv
func (r *UpdateInvoiceRequest) ApplyTo(inv *Invoice) {
	if r.InvoiceNo != nil {
		inv.InvoiceNo = *r.InvoiceNo
	}
	if r.Date != nil {
		inv.Date = *r.Date
	}
	for _, f := range r.detailFields(&inv.InvoiceDetails) {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	if r.Items != nil {
		items := make([]InvoiceItem, len(*r.Items))
		copy(items, *r.Items)
		inv.Items = items
	}
	if r.TotalQuantity != nil {
		inv.TotalQuantity = *r.TotalQuantity
	}
	if r.TotalAmount != nil {
		inv.TotalAmount = *r.TotalAmount
	}
	if r.AmountInWords != nil {
		inv.AmountInWords = *r.AmountInWords
	}
}

// Revert returns the update that restores, from inv, every field r sets
func (r *UpdateInvoiceRequest) Revert(inv Invoice) UpdateInvoiceRequest {
	inv = inv.Clone()
	keep := func(set *string, prev string) *string {
		if set == nil {
			return nil
		}
		return &prev
	}

	out := UpdateInvoiceRequest{
		Date:              keep(r.Date, inv.Date),
		DeliveryNote:      keep(r.DeliveryNote, inv.DeliveryNote),
		ModeOfPayment:     keep(r.ModeOfPayment, inv.ModeOfPayment),
		ReferenceNo:       keep(r.ReferenceNo, inv.ReferenceNo),
		ReferenceDate:     keep(r.ReferenceDate, inv.ReferenceDate),
		OtherReferences:   keep(r.OtherReferences, inv.OtherReferences),
		BuyerOrderNo:      keep(r.BuyerOrderNo, inv.BuyerOrderNo),
		BuyerOrderDate:    keep(r.BuyerOrderDate, inv.BuyerOrderDate),
		DispatchDocNo:     keep(r.DispatchDocNo, inv.DispatchDocNo),
		DeliveryNoteDate:  keep(r.DeliveryNoteDate, inv.DeliveryNoteDate),
		DispatchedThrough: keep(r.DispatchedThrough, inv.DispatchedThrough),
		Destination:       keep(r.Destination, inv.Destination),
		TermsOfDelivery:   keep(r.TermsOfDelivery, inv.TermsOfDelivery),
		AmountInWords:     keep(r.AmountInWords, inv.AmountInWords),
	}
	if r.InvoiceNo != nil {
		out.InvoiceNo = &inv.InvoiceNo
	}
	if r.Items != nil {
		items := []InvoiceItem(inv.Items)
		if items == nil {
			items = []InvoiceItem{}
		}
		out.Items = &items
	}
	if r.TotalQuantity != nil {
		out.TotalQuantity = &inv.TotalQuantity
	}
	if r.TotalAmount != nil {
		out.TotalAmount = &inv.TotalAmount
	}
	return out
}
