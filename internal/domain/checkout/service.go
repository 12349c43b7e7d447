// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/pricing"
	"github.com/your-org/storefront-api/internal/remotestore"
)

const (
	ordersTable     = "orders"
	orderItemsTable = "order_items"
)

// Service runs the order submission protocol. The remote store offers no
// multi-statement transaction, so the header and its lines are written
// in two dependent steps and the failure window between them is made
// observable instead of hidden.
type Service struct {
	gateway remotestore.Gateway
	logger  *logrus.Logger
}

// NewService creates a new checkout service
func NewService(gateway remotestore.Gateway, logger *logrus.Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// SubmitOrder submits the finalized cart as an order for the customer.
// Preconditions are validated before any network call. On success the
// caller must clear the cart store; on any failure the cart must be left
// untouched so the shopper can retry.
//
// Failure modes:
//   - *ValidationError: input problem, remote store never contacted
//   - *HeaderCreationError: nothing persisted, retry from scratch
//   - *ItemsCreationError: orphaned header, carries its id for
//     reconciliation; do not resubmit as-is
func (s *Service) SubmitOrder(ctx context.Context, lines []cart.Line, shipping ShippingInfo, method PaymentMethod, customerID string, tier pricing.Tier) (*Result, error) {
	if err := validate(lines, shipping, method); err != nil {
		return nil, err
	}

	state := StateSubmitting
	log := s.logger.WithFields(logrus.Fields{
		"customer_id": customerID,
		"tier":        tier,
		"line_count":  len(lines),
	})
	log.WithField("state", state).Debug("Submitting order")

	// Step 1: total at current prices and tier
	var total int64
	for _, line := range lines {
		total += pricing.ResolveUnitPrice(&line.Product, line.Quantity, tier) * int64(line.Quantity)
	}

	// Step 2: create the header
	header := OrderHeader{
		UserID:          customerID,
		TotalAmount:     total,
		PaymentMethod:   method,
		PaymentStatus:   PaymentStatusPending,
		Status:          OrderStatusPending,
		ShippingAddress: shipping.Address,
		ShippingCity:    shipping.City,
		ContactPhone:    shipping.ContactPhone,
		PaymentPhone:    shipping.PaymentPhone,
		Notes:           shipping.Notes,
		CreatedAt:       time.Now().UTC(),
	}

	headerRecord, err := remotestore.Encode(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build order header: %w", err)
	}

	created, err := s.gateway.Create(ctx, ordersTable, headerRecord)
	if err != nil {
		state = StateFailed
		log.WithError(err).WithField("state", state).Error("Order header creation failed")
		return nil, &HeaderCreationError{Err: err}
	}

	createdHeader, err := remotestore.Decode[OrderHeader](created)
	if err != nil {
		// The header row exists even though we could not read it back;
		// treat this like a partial failure rather than pretending
		// nothing happened.
		state = StateFailed
		log.WithError(err).WithField("state", state).Error("Order header unreadable after creation")
		return nil, &ItemsCreationError{HeaderID: fmt.Sprint(created["id"]), Err: err}
	}

	// Step 3: create the lines, each with its unit price frozen now.
	// No cancellation from here on: once the header exists the line
	// write is always attempted.
	orderLines := make([]OrderLine, len(lines))
	lineRecords := make([]remotestore.Record, len(lines))
	for i, line := range lines {
		orderLines[i] = OrderLine{
			OrderID:   createdHeader.ID,
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: pricing.ResolveUnitPrice(&line.Product, line.Quantity, tier),
		}
		record, err := remotestore.Encode(orderLines[i])
		if err != nil {
			return nil, &ItemsCreationError{HeaderID: createdHeader.ID, Err: err}
		}
		lineRecords[i] = record
	}

	if _, err := s.gateway.CreateBatch(ctx, orderItemsTable, lineRecords); err != nil {
		state = StateFailed
		log.WithError(err).WithFields(logrus.Fields{
			"state":    state,
			"order_id": createdHeader.ID,
		}).Error("Order items creation failed, header is orphaned")
		return nil, &ItemsCreationError{HeaderID: createdHeader.ID, Err: err}
	}

	state = StateCompleted
	log.WithFields(logrus.Fields{
		"state":        state,
		"order_id":     createdHeader.ID,
		"total_amount": total,
	}).Info("Order submitted")

	return &Result{
		State:  state,
		Header: createdHeader,
		Lines:  orderLines,
	}, nil
}

// ListOrders retrieves the customer's past orders with their lines,
// newest first
func (s *Service) ListOrders(ctx context.Context, customerID string) ([]Order, error) {
	headerRecords, err := s.gateway.Query(ctx, ordersTable, remotestore.Filter{"user_id": customerID}, remotestore.Page{
		OrderBy:    "created_at",
		Descending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	headers, err := remotestore.DecodeAll[OrderHeader](headerRecords)
	if err != nil {
		return nil, err
	}

	orders := make([]Order, len(headers))
	for i, header := range headers {
		lineRecords, err := s.gateway.Query(ctx, orderItemsTable, remotestore.Filter{"order_id": header.ID}, remotestore.Page{})
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve items for order %s: %w", header.ID, err)
		}
		lines, err := remotestore.DecodeAll[OrderLine](lineRecords)
		if err != nil {
			return nil, err
		}
		orders[i] = Order{OrderHeader: header, Lines: lines}
	}

	return orders, nil
}

func validate(lines []cart.Line, shipping ShippingInfo, method PaymentMethod) error {
	if len(lines) == 0 {
		return &ValidationError{Field: "cart", Reason: "cart is empty"}
	}
	if strings.TrimSpace(shipping.Address) == "" {
		return &ValidationError{Field: "address", Reason: "shipping address is required"}
	}
	if strings.TrimSpace(shipping.City) == "" {
		return &ValidationError{Field: "city", Reason: "shipping city is required"}
	}
	if strings.TrimSpace(shipping.ContactPhone) == "" {
		return &ValidationError{Field: "contact_phone", Reason: "contact phone is required"}
	}
	if !method.IsValid() {
		return &ValidationError{Field: "payment_method", Reason: fmt.Sprintf("unknown payment method %q", method)}
	}
	if method.IsMobileMoney() && strings.TrimSpace(shipping.PaymentPhone) == "" {
		return &ValidationError{Field: "payment_phone", Reason: "payment phone is required for mobile money"}
	}
	return nil
}
