package pos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session states.
const (
	SessionOpened = "opened"
	SessionClosed = "closed"
)

// Session is a point-of-sale session; inbound orders attach to the open
// session of the target branch.
type Session struct {
	// ID is the local record identifier
	ID int64
	// CompanyID is the branch company running the session
	CompanyID int64
	// State is the session lifecycle state (opened, closed)
	State string
	// ResponsibleUserID is the user accountable for the session
	ResponsibleUserID int64
	// CreatedAt is when the session was opened
	CreatedAt time.Time
}

// IsOpen reports whether the session accepts new orders.
func (s *Session) IsOpen() bool {
	return s.State == SessionOpened
}

// OrderLine is a single order line.
type OrderLine struct {
	// ID is the local record identifier
	ID int64
	// ProductID is the ordered product
	ProductID int64
	// FullProductName is the display name at order time
	FullProductName string
	// Qty is the ordered quantity
	Qty float64
	// UnitPrice is the per-unit price including selected extras
	UnitPrice decimal.Decimal
	// ExtraPrice is the accumulated extra price of the selected values
	ExtraPrice decimal.Decimal
	// Subtotal is qty times unit price
	Subtotal decimal.Decimal
	// AttributeValueIDs are the selected attribute values
	AttributeValueIDs []int64
	// UUID identifies the line across the POS frontends
	UUID uuid.UUID
}

// Order is a point-of-sale order.
type Order struct {
	// ID is the local record identifier
	ID int64
	// SessionID is the session the order belongs to
	SessionID int64
	// CompanyID is the branch company
	CompanyID int64
	// CustomerID is the ordering customer (0 when anonymous)
	CustomerID int64
	// Name is the composite order reference (sssss-uuu-qqqq)
	Name string
	// UUID identifies the order across the POS frontends
	UUID uuid.UUID
	// SequenceNumber is the per-session order sequence
	SequenceNumber int
	// TrackingNumber is the kitchen-facing short number
	TrackingNumber string
	// ReceiptRef is the printed receipt reference
	ReceiptRef string
	// State is the order lifecycle state (draft, paid, done, ...)
	State string
	// AmountTotal is the order total
	AmountTotal decimal.Decimal
	// OrderTechOrderID is the remote order identifier, supplied inbound
	OrderTechOrderID string
	// Lines are the order lines
	Lines []OrderLine
	// CreatedAt is when the order was created
	CreatedAt time.Time
}

// PreparationStage is a kitchen preparation stage orders move through.
type PreparationStage struct {
	// ID is the local record identifier
	ID int64
	// Name is the stage display name
	Name string
	// Sequence orders stages on the preparation display
	Sequence int
}
