package order

import (
	"context"
	"strings"
	"time"

	"seafresh-be/internal/address"
	"seafresh-be/internal/auth"
	"seafresh-be/internal/cart"
	"seafresh-be/internal/events"
	"seafresh-be/internal/logger"
	"seafresh-be/internal/metrics"
	"seafresh-be/internal/payment"
	"seafresh-be/internal/utils"

	"go.uber.org/zap"
)

type AddressGetter interface {
	GetForUser(ctx context.Context, userID, addressID string) (*address.Address, error)
}

// Carts is the subset of the cart service used at checkout.
type Carts interface {
	Get(ctx context.Context, customerID string) (*cart.Cart, error)
	Price(ctx context.Context, items []cart.Item, couponCode string) (cart.Totals, error)
	Clear(ctx context.Context, customerID string) error
}

type Service interface {
	Place(ctx context.Context, userID string, input PlaceInput) (*PlaceResult, error)
	ListMine(ctx context.Context, userID string) ([]*AttributedOrder, error)
	GetMine(ctx context.Context, userID, orderID string) (*AttributedOrder, error)
	ListForSeller(ctx context.Context, sellerID string, limit int) ([]*AttributedOrder, error)
	ListAll(ctx context.Context) ([]*AttributedOrder, error)
	UpdateStatus(ctx context.Context, actor auth.Identity, orderID, status string) (*AttributedOrder, error)
}

type Deps struct {
	Repo      Repository
	Addresses AddressGetter
	Carts     Carts
	Sellers   SellerDirectory
	Publisher events.Publisher
	Metrics   *metrics.Registry
}

type service struct {
	repo      Repository
	addresses AddressGetter
	carts     Carts
	sellers   SellerDirectory
	publisher events.Publisher
	metrics   *metrics.Registry
	now       func() time.Time
}

func NewService(d Deps) Service {
	s := &service{
		repo:      d.Repo,
		addresses: d.Addresses,
		carts:     d.Carts,
		sellers:   d.Sellers,
		publisher: d.Publisher,
		metrics:   d.Metrics,
		now:       time.Now,
	}
	if s.publisher == nil {
		s.publisher = events.NopPublisher{}
	}
	if s.metrics == nil {
		s.metrics = metrics.NewRegistry()
	}
	return s
}

func (s *service) Place(ctx context.Context, userID string, input PlaceInput) (*PlaceResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Place"),
		zap.String("user_id", userID),
	)

	method, ok := payment.ParseMethod(input.PaymentMethod)
	if !ok {
		return nil, ErrInvalidPaymentMethod
	}

	addressID := strings.TrimSpace(input.AddressID)
	if addressID == "" {
		return nil, ErrMissingAddress
	}
	if _, err := s.addresses.GetForUser(ctx, userID, addressID); err != nil {
		log.Warn("address rejected", zap.String("address_id", addressID), zap.Error(err))
		return nil, err
	}

	fromCart := len(input.Items) == 0
	items := input.Items
	if fromCart {
		c, err := s.carts.Get(ctx, userID)
		if err != nil {
			log.Error("failed to load cart", zap.Error(err))
			return nil, err
		}
		items = c.Items
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, cart.ErrInvalidQuantity
		}
	}

	totals, err := s.carts.Price(ctx, items, input.CouponCode)
	if err != nil {
		log.Error("failed to price order", zap.Error(err))
		return nil, err
	}
	if len(totals.Lines) == 0 {
		log.Warn("no orderable items remain", zap.Int("requested", len(items)))
		return nil, ErrEmptyOrder
	}

	o := &Order{
		OrderNumber:   utils.GenerateOrderNumber(s.now()),
		UserID:        userID,
		AddressID:     addressID,
		Items:         snapshot(totals.Lines),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		TotalAmount:   totals.Total,
		PaymentMethod: method,
		PaymentStatus: payment.StatusPending,
		OrderStatus:   StatusPending,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}
	s.metrics.OrdersPlaced.Inc()

	if err := s.carts.Clear(ctx, userID); err != nil {
		log.Warn("failed to clear cart after order", zap.String("order_id", o.ID), zap.Error(err))
	}

	s.publish(ctx, events.TypeOrderPlaced, o)

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.String("order_number", o.OrderNumber),
		zap.Int("items", len(o.Items)),
		zap.Float64("total", o.TotalAmount),
	)

	return &PlaceResult{
		Order:        AttributeOne(ctx, s.sellers, o),
		Instructions: payment.Instructions(method, o.TotalAmount, o.OrderNumber),
	}, nil
}

func snapshot(lines []cart.Line) []LineItem {
	items := make([]LineItem, 0, len(lines))
	for _, l := range lines {
		item := LineItem{
			Version:     LineItemVersion,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Weight:      l.Weight,
			Image:       l.Image,
		}
		if l.SellerID != "" {
			item.SellerID = utils.StrPtr(l.SellerID)
		}
		items = append(items, item)
	}
	return items
}

func (s *service) publish(ctx context.Context, eventType string, o *Order) {
	e := events.Event{
		Type:        eventType,
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		SellerIDs:   o.SellerIDs(),
		Total:       o.TotalAmount,
		Status:      string(o.OrderStatus),
		OccurredAt:  s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.metrics.EventPublishFailures.Inc()
		logger.FromCtx(ctx).Error("failed to publish order event",
			zap.String("type", eventType),
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
	}
}

func (s *service) ListMine(ctx context.Context, userID string) ([]*AttributedOrder, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Attribute(ctx, s.sellers, orders), nil
}

func (s *service) GetMine(ctx context.Context, userID, orderID string) (*AttributedOrder, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		logger.FromCtx(ctx).Warn("order access denied",
			zap.String("user_id", userID),
			zap.String("order_id", orderID),
		)
		return nil, ErrForbidden
	}
	return AttributeOne(ctx, s.sellers, o), nil
}

func (s *service) ListForSeller(ctx context.Context, sellerID string, limit int) ([]*AttributedOrder, error) {
	orders, err := s.repo.ListBySeller(ctx, sellerID, limit)
	if err != nil {
		return nil, err
	}
	return Attribute(ctx, s.sellers, orders), nil
}

func (s *service) ListAll(ctx context.Context) ([]*AttributedOrder, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Attribute(ctx, s.sellers, orders), nil
}

// UpdateStatus lets an admin move any order, and a seller move orders that
// contain at least one of their line items.
func (s *service) UpdateStatus(ctx context.Context, actor auth.Identity, orderID, status string) (*AttributedOrder, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateStatus"),
		zap.String("order_id", orderID),
		zap.String("actor_id", actor.SubjectID),
		zap.String("actor_role", string(actor.Role)),
	)

	next, ok := ParseStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case auth.RoleAdmin:
	case auth.RoleSeller:
		if !o.hasSeller(actor.SubjectID) {
			log.Warn("seller does not own any line item")
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}

	if !o.OrderStatus.CanTransitionTo(next) {
		log.Warn("rejected status transition",
			zap.String("from", string(o.OrderStatus)),
			zap.String("to", string(next)),
		)
		return nil, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, o.OrderStatus, next)
	if err != nil {
		return nil, err
	}
	s.metrics.OrderStatusChanges.Inc()
	s.publish(ctx, events.TypeOrderStatusChanged, updated)

	log.Info("order status updated",
		zap.String("from", string(o.OrderStatus)),
		zap.String("to", string(next)),
	)
	return AttributeOne(ctx, s.sellers, updated), nil
}
