package domain

import (
	"time"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Terminal reports whether no further status transition is allowed.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

type CancelledBy string

const (
	CancelledByCustomer CancelledBy = "customer"
	CancelledByProvider CancelledBy = "provider"
)

// Appointment is one scheduled engagement between a customer and a provider.
// Provider and customer display fields are snapshots captured at booking
// time; later changes to the source records do not alter past appointments.
// The JSON tags are the collection schema used by the durable slot and by
// export/import, so blobs round-trip unchanged.
type Appointment struct {
	ID               string             `json:"id"`
	ProviderID       string             `json:"providerId"`
	ProviderName     string             `json:"providerName"`
	ProviderAvatar   string             `json:"providerAvatar,omitempty"`
	ProviderLocation string             `json:"providerLocation"`
	CustomerID       string             `json:"customerId"`
	CustomerName     string             `json:"customerName"`
	CustomerPhone    string             `json:"customerPhone"`
	CustomerEmail    string             `json:"customerEmail"`
	Services         []string           `json:"services"`
	ServicePrices    map[string]float64 `json:"servicePrices"`
	TotalPrice       float64            `json:"totalPrice"`
	Date             string             `json:"date"`
	Time             string             `json:"time"`
	Duration         int                `json:"duration"`
	Status           AppointmentStatus  `json:"status"`
	CreatedAt        time.Time          `json:"createdAt"`
	Notes            string             `json:"notes,omitempty"`
	CancelledBy      CancelledBy        `json:"cancelledBy,omitempty"`
	CancelledAt      *time.Time         `json:"cancelledAt,omitempty"`
	CancelReason     string             `json:"cancelReason,omitempty"`
}
