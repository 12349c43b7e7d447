// internal/domain/checkout/entity.go
package checkout

import "time"

// State tracks a submission through the two-phase protocol
type State string

const (
	StateDraft      State = "draft"
	StateSubmitting State = "submitting"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
)

// OrderStatus represents the order status, owned by backend fulfilment
// after submission
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentMethod is the label attached to the order; capture happens
// backend-side
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodMTNMobileMoney PaymentMethod = "mtn_momo"
	PaymentMethodAirtelMoney    PaymentMethod = "airtel_money"
)

// IsMobileMoney reports whether the method needs a payment phone number
func (m PaymentMethod) IsMobileMoney() bool {
	return m == PaymentMethodMTNMobileMoney || m == PaymentMethodAirtelMoney
}

// IsValid reports whether the method is one the storefront accepts
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCashOnDelivery, PaymentMethodMTNMobileMoney, PaymentMethodAirtelMoney:
		return true
	}
	return false
}

// ShippingInfo carries the delivery details collected at checkout
type ShippingInfo struct {
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required"`
	ContactPhone string `json:"contact_phone" binding:"required"`
	PaymentPhone string `json:"payment_phone,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// OrderHeader is the order's top-level record. It is created exactly
// once per successful submission and mutated thereafter only by backend
// fulfilment.
type OrderHeader struct {
	ID              string        `json:"id,omitempty"`
	UserID          string        `json:"user_id"`
	TotalAmount     int64         `json:"total_amount"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	Status          OrderStatus   `json:"status"`
	ShippingAddress string        `json:"shipping_address"`
	ShippingCity    string        `json:"shipping_city"`
	ContactPhone    string        `json:"contact_phone"`
	PaymentPhone    string        `json:"payment_phone,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at,omitempty"`
}

// OrderLine is one product on an order. UnitPrice is the price resolved
// at submission time; it is a historical fact and must never be
// recomputed from the live product.
type OrderLine struct {
	ID        string `json:"id,omitempty"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Order pairs a header with its lines, as read back for order history
type Order struct {
	OrderHeader
	Lines []OrderLine `json:"items"`
}

// Result is the outcome of a completed submission
type Result struct {
	State  State       `json:"state"`
	Header OrderHeader `json:"order"`
	Lines  []OrderLine `json:"items"`
}
