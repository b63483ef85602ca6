package models

// Profile is the merged read view combining a user's latest booking and
// latest invoice. Missing fields carry the "-" placeholder.
type Profile struct {
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	Address       string `json:"address"`
	Service       string `json:"service"`
	Estimate      string `json:"estimate"`
	InvoiceStatus string `json:"invoiceStatus"`
}
