package domain

import "time"

type OrderStatus string

const (
	OrderStatusCart      OrderStatus = "CART"
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusPickedUp  OrderStatus = "PICKED_UP"
	OrderStatusReturned  OrderStatus = "RETURNED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusLost      OrderStatus = "LOST"
	OrderStatusOverdue   OrderStatus = "OVERDUE"
)

// Active reports whether the order still blocks its team from disbanding.
// Carts have not been submitted and never block; cancelled and fully returned
// orders are settled.
func (s OrderStatus) Active() bool {
	return s != OrderStatusCart && s != OrderStatusCancelled && s != OrderStatusReturned
}

// Outstanding reports whether items on an order in this status count against
// remaining stock. Carts have not been issued and cancelled orders never were.
func (s OrderStatus) Outstanding() bool {
	return s != OrderStatusCart && s != OrderStatusCancelled
}

type Order struct {
	ID         int32       `json:"id"`
	TeamID     int32       `json:"team_id"`
	Status     OrderStatus `json:"status"`
	PickupNote string      `json:"pickup_note"`
	CreatedOn  time.Time   `json:"created_on"`
	UpdatedOn  time.Time   `json:"updated_on"`
	Items      []OrderItem `json:"items,omitempty"`
}

type ReturnHealth string

const (
	ReturnHealthHealthy ReturnHealth = "HEALTHY"
	ReturnHealthBroken  ReturnHealth = "BROKEN"
	ReturnHealthMissing ReturnHealth = "MISSING"
)

type OrderItem struct {
	ID         int32  `json:"id"`
	OrderID    int32  `json:"order_id"`
	HardwareID int32  `json:"hardware_id"`
	// PartReturnedHealth stays nil while the part is out; once set the item no
	// longer counts against remaining stock.
	PartReturnedHealth *ReturnHealth `json:"part_returned_health,omitempty"`
	ReturnedOn         *time.Time    `json:"returned_on,omitempty"`
}

type IncidentState string

const (
	IncidentStateDamaged IncidentState = "DAMAGED"
	IncidentStateLost    IncidentState = "LOST"
	IncidentStateOther   IncidentState = "OTHER"
)

type Incident struct {
	ID          int32         `json:"id"`
	OrderItemID int32         `json:"order_item_id"`
	State       IncidentState `json:"state"`
	Description string        `json:"description"`
	CreatedOn   time.Time     `json:"created_on"`
}
