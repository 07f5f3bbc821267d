package model

import "strings"

// PaymentStatus describes the payment lifecycle of a single order.
type PaymentStatus string

const (
	// PaymentStatusUnknown marks orders whose status fetch failed or has not
	// happened yet. No payment actions are offered for unknown statuses.
	PaymentStatusUnknown   PaymentStatus = ""
	PaymentStatusUncreated PaymentStatus = "Uncreated"
	PaymentStatusCreated   PaymentStatus = "Created"
	PaymentStatusPaying    PaymentStatus = "Paying"
	PaymentStatusFinished  PaymentStatus = "Finished"
	PaymentStatusCancelled PaymentStatus = "Cancelled"
)

// ParsePaymentStatus maps wire values to a PaymentStatus. The backend has been
// observed to answer both canonical spellings and the legacy upper-case
// variants ("PAYING", "FINISH"), so parsing is case-insensitive and tolerant.
func ParsePaymentStatus(raw string) PaymentStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "UNCREATED":
		return PaymentStatusUncreated
	case "CREATED":
		return PaymentStatusCreated
	case "PAYING":
		return PaymentStatusPaying
	case "FINISH", "FINISHED":
		return PaymentStatusFinished
	case "CANCEL", "CANCELED", "CANCELLED":
		return PaymentStatusCancelled
	default:
		return PaymentStatusUnknown
	}
}

// Terminal reports whether no further payment actions apply to the order.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusFinished || s == PaymentStatusCancelled
}

// Known reports whether the status has been established at all.
func (s PaymentStatus) Known() bool {
	return s != PaymentStatusUnknown
}
