package repository

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrObjectNotFound    = errors.New("not found")
	ErrDuplicateLocker   = errors.New("locker number already exists")
	ErrInvalidTransition = errors.New("invalid transition")
)

const (
	LockerStatusAvailable   = "available"
	LockerStatusOccupied    = "occupied"
	LockerStatusMaintenance = "maintenance"
	LockerStatusError       = "error"

	DoorOpen   = "open"
	DoorClosed = "closed"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusPickedUp  = "picked_up"
	OrderStatusExpired   = "expired"
)

// Delivery-info staging flows. "gui" is the SMS/pickup-code flow,
// "giu" is the fingerprint hold flow; the codes come from the kiosk firmware.
const (
	DeliveryTypeCode        = "gui"
	DeliveryTypeFingerprint = "giu"
)

const (
	ReportStatusPending    = "pending"
	ReportStatusReceived   = "received"
	ReportStatusProcessing = "processing"
	ReportStatusResolved   = "resolved"
	ReportStatusClosed     = "closed"

	ReportStageReported   = "reported"
	ReportStageReceived   = "received"
	ReportStageProcessing = "processing"
	ReportStageResolved   = "resolved"
	ReportStageNotified   = "notified"
)

const (
	NotificationTypeError          = "error"
	NotificationTypeWarning        = "warning"
	NotificationTypeInfo           = "info"
	NotificationTypeCustomerAction = "customer_action"
	NotificationTypePickup         = "pickup"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type Locker struct {
	ID             string    `db:"id"`
	Number         string    `db:"number"`
	Size           string    `db:"size"`
	Status         string    `db:"status"`
	DoorState      string    `db:"door_state"`
	CurrentOrderID *string   `db:"current_order_id"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Order struct {
	ID              string     `db:"id"`
	SenderID        string     `db:"sender_id"`
	SenderName      string     `db:"sender_name"`
	SenderPhone     string     `db:"sender_phone"`
	SenderType      string     `db:"sender_type"`
	ReceiverName    string     `db:"receiver_name"`
	ReceiverPhone   string     `db:"receiver_phone"`
	OrderCode       *string    `db:"order_code"`
	LockerID        *string    `db:"locker_id"`
	Status          string     `db:"status"`
	PickupCode      *string    `db:"pickup_code"`
	TransactionType string     `db:"transaction_type"`
	CreatedAt       time.Time  `db:"created_at"`
	DeliveredAt     *time.Time `db:"delivered_at"`
	PickedUpAt      *time.Time `db:"picked_up_at"`
}

// DeliveryInfo is the staging record the kiosk writes before an Order
// exists. Boolean-ish fields arrive as raw text from the hardware and are
// normalized through ParseFlag, never compared to literals elsewhere.
type DeliveryInfo struct {
	ID                  string    `db:"id"`
	DeliveryType        string    `db:"delivery_type"`
	LockerID            *string   `db:"locker_id"`
	SenderID            *string   `db:"sender_id"`
	Fingerprint         *string   `db:"fingerprint"`
	FingerprintVerified *string   `db:"fingerprint_verified"`
	Received            *string   `db:"received"`
	OrderID             *string   `db:"order_id"`
	CreatedAt           time.Time `db:"created_at"`
}

type ErrorReport struct {
	ID                  string     `db:"id"`
	CustomerID          string     `db:"customer_id"`
	CustomerName        string     `db:"customer_name"`
	LockerID            *string    `db:"locker_id"`
	Description         string     `db:"description"`
	Status              string     `db:"status"`
	Stage               string     `db:"stage"`
	AdminNotes          *string    `db:"admin_notes"`
	CreatedAt           time.Time  `db:"created_at"`
	ReceivedAt          *time.Time `db:"received_at"`
	ProcessingStartedAt *time.Time `db:"processing_started_at"`
	ResolvedAt          *time.Time `db:"resolved_at"`
	CustomerNotifiedAt  *time.Time `db:"customer_notified_at"`
	ClosedAt            *time.Time `db:"closed_at"`
}

type Notification struct {
	ID            string    `db:"id"`
	Type          string    `db:"type"`
	Message       string    `db:"message"`
	LockerID      *string   `db:"locker_id"`
	OrderID       *string   `db:"order_id"`
	CustomerID    *string   `db:"customer_id"`
	ErrorReportID *string   `db:"error_report_id"`
	Private       bool      `db:"private"`
	Read          bool      `db:"read"`
	CreatedAt     time.Time `db:"created_at"`
}

// AdminVisible reports whether the notification belongs to the shared admin
// feed rather than a single customer's feed.
func (n *Notification) AdminVisible() bool {
	return n.CustomerID == nil && !n.Private
}

// User mirrors the auth-provider account record. LastLoginAt is kept as raw
// text because legacy records carry unparsable values; the inactivity sweep
// decides what to do with those.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Phone        string    `db:"phone"`
	Role         string    `db:"role"`
	CustomerType *string   `db:"customer_type"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	LastLoginAt  *string   `db:"last_login_at"`
}

// ParseFlag normalizes the boolean encodings the hardware produces
// ("true", "True", "1", "yes") into a proper bool. Nil and anything
// unrecognized are false.
func ParseFlag(v *string) bool {
	if v == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(*v)) {
	case "true", "1", "t", "yes":
		return true
	}
	return false
}
