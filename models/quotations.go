package models

import "time"

// Vendor-side sub-states of an approved quotation. VendorStatus stays
// VendorNone until an admin approves the quotation, which assigns it.
const (
	VendorNone      = "none"
	VendorAssigned  = "assigned"
	VendorAccepted  = "accepted"
	VendorCompleted = "completed"
	VendorDenied    = "denied"
)

type Quotation struct {
	QuotationID  string    `json:"quotationid" bson:"quotationid"`
	VendorID     string    `json:"vendorid" bson:"vendorid"`
	VendorName   string    `json:"vendorname,omitempty" bson:"vendorname,omitempty"`
	EventID      string    `json:"eventid" bson:"eventid"`
	Message      string    `json:"message" bson:"message"`
	Amount       float64   `json:"amount,omitempty" bson:"amount,omitempty"`
	Status       string    `json:"status" bson:"status"`
	VendorStatus string    `json:"vendor_status" bson:"vendor_status"`
	Paid         bool      `json:"paid" bson:"paid"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
