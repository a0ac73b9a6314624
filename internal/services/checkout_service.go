package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Checkout wizard steps, in order.
const (
	StepShipping = "shipping"
	StepDelivery = "delivery"
	StepPayment  = "payment"
)

// Submission states for order placement.
const (
	SubmitIdle       = "idle"
	SubmitSubmitting = "submitting"
	SubmitSuccess    = "success"
	SubmitFailed     = "failed"
)

// Sentinel errors surfaced by the checkout flow.
var (
	ErrAuthRequired       = errors.New("authentication required to place an order")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrWrongStep          = errors.New("order can only be placed from the payment step")
	ErrSubmissionInFlight = errors.New("an order submission is already in progress")
)

// ShippingInfo carries the shipping form fields. Full name, email and address
// gate the transition out of the shipping step; city and postal code are
// collected but not required.
type ShippingInfo struct {
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// CardDetails are the card sub-fields collected for the card payment method.
// They are shape-checked only and never persisted; this is a stand-in, not a
// gateway integration.
type CardDetails struct {
	Name   string `json:"name" validate:"required"`
	Number string `json:"number" validate:"required,min=12,max=19"`
	Expiry string `json:"expiry" validate:"required"`
	CVC    string `json:"cvc" validate:"required,min=3,max=4"`
}

// CheckoutSession is the per-session wizard state. It is not persisted;
// abandoning checkout discards it.
type CheckoutSession struct {
	Step           string       `json:"step"`
	Shipping       ShippingInfo `json:"shipping"`
	DeliveryMethod string       `json:"delivery_method"`
	PaymentMethod  string       `json:"payment_method"`
	SubmitState    string       `json:"submit_state"`
}

// CheckoutService drives the three-step checkout wizard and the order
// placement flow on top of the cart.
type CheckoutService struct {
	cart      *CartService
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
	validate  *validator.Validate

	mu       sync.Mutex
	sessions map[string]*CheckoutSession
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(cart *CartService, orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *CheckoutService {
	return &CheckoutService{
		cart:      cart,
		orderRepo: orderRepo,
		mqClient:  mqClient,
		validate:  validator.New(),
		sessions:  make(map[string]*CheckoutSession),
	}
}

// Session returns the checkout session for a cart session key, creating it at
// the shipping step with standard delivery if none exists.
func (s *CheckoutService) Session(sessionID string) CheckoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.session(sessionID)
}

func (s *CheckoutService) session(sessionID string) *CheckoutSession {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &CheckoutSession{
			Step:           StepShipping,
			DeliveryMethod: models.DeliveryStandard,
			SubmitState:    SubmitIdle,
		}
		s.sessions[sessionID] = sess
	}
	return sess
}

// SubmitShipping validates the shipping fields and advances to the delivery
// step. Validation failure blocks the transition.
func (s *CheckoutService) SubmitShipping(sessionID string, info ShippingInfo) error {
	if err := s.validate.Struct(info); err != nil {
		return fmt.Errorf("shipping validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.Shipping = info
	if sess.Step == StepShipping {
		sess.Step = StepDelivery
	}
	return nil
}

// SelectDelivery records the delivery method and advances to the payment
// step. Express carries a fixed 15.00 surcharge, standard is free.
func (s *CheckoutService) SelectDelivery(sessionID, method string) error {
	if method != models.DeliveryStandard && method != models.DeliveryExpress {
		return fmt.Errorf("invalid delivery method: %s", method)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	if sess.Shipping.FullName == "" {
		return fmt.Errorf("shipping information must be completed first")
	}
	sess.DeliveryMethod = method
	if sess.Step == StepDelivery {
		sess.Step = StepPayment
	}
	return nil
}

// SelectPayment records the payment method on the payment step. Card payments
// require the card sub-fields to be present and well-shaped.
func (s *CheckoutService) SelectPayment(sessionID, method string, card *CardDetails) error {
	switch method {
	case models.PaymentCard:
		if card == nil {
			return fmt.Errorf("card details are required for card payment")
		}
		if err := s.validate.Struct(card); err != nil {
			return fmt.Errorf("card validation failed: %w", err)
		}
	case models.PaymentPaypal, models.PaymentCOD:
		// No method-specific fields to validate.
	default:
		return fmt.Errorf("invalid payment method: %s", method)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	if sess.Shipping.FullName == "" {
		return fmt.Errorf("shipping information must be completed first")
	}
	sess.PaymentMethod = method
	return nil
}

// Back navigates one step backwards. A completed step remains editable.
func (s *CheckoutService) Back(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	switch sess.Step {
	case StepPayment:
		sess.Step = StepDelivery
	case StepDelivery:
		sess.Step = StepShipping
	}
}

// OrderTotal returns the effective total: cart subtotal plus the shipping fee
// of the currently selected delivery method. It is recomputed on every read
// so cart or delivery changes are reflected immediately.
func (s *CheckoutService) OrderTotal(sessionID string) float64 {
	s.mu.Lock()
	method := s.session(sessionID).DeliveryMethod
	s.mu.Unlock()

	return s.cart.CartTotal(sessionID) + models.ShippingFeeFor(method)
}

// PlaceOrder runs the order placement flow: insert the order row, then
// bulk-insert its items. The item insert failing after the order row was
// written is compensated by deleting the order row, so no orphaned order
// survives; the cart is only cleared once both writes succeeded.
func (s *CheckoutService) PlaceOrder(sessionID, userID string) (*models.Order, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}

	s.mu.Lock()
	sess := s.session(sessionID)
	if sess.Step != StepPayment || sess.PaymentMethod == "" {
		s.mu.Unlock()
		return nil, ErrWrongStep
	}
	if sess.SubmitState == SubmitSubmitting {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	sess.SubmitState = SubmitSubmitting
	shipping := sess.Shipping
	delivery := sess.DeliveryMethod
	payment := sess.PaymentMethod
	s.mu.Unlock()

	finish := func(state string) {
		s.mu.Lock()
		sess.SubmitState = state
		s.mu.Unlock()
	}

	items := s.cart.Items(sessionID)
	if len(items) == 0 {
		finish(SubmitIdle)
		return nil, ErrEmptyCart
	}

	fee := models.ShippingFeeFor(delivery)
	order := &models.Order{
		ID:             uuid.New().String(),
		UserID:         userID,
		FullName:       shipping.FullName,
		Email:          shipping.Email,
		Address:        shipping.Address,
		City:           shipping.City,
		PostalCode:     shipping.PostalCode,
		DeliveryMethod: delivery,
		PaymentMethod:  payment,
		ShippingFee:    fee,
		Total:          models.Cart{Items: items}.Total() + fee,
		Status:         "pending",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		finish(SubmitFailed)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Image:     item.Image,
		})
	}

	if err := s.orderRepo.CreateItems(orderItems); err != nil {
		// Compensate so the order row is not left without items. The cart is
		// left intact for a retry.
		if delErr := s.orderRepo.Delete(order.ID); delErr != nil {
			log.Printf("Failed to compensate order %s after item insert failure: %v", order.ID, delErr)
		}
		finish(SubmitFailed)
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}
	order.Items = orderItems

	s.cart.ClearCart(sessionID)
	s.publishOrderCreated(order)

	s.mu.Lock()
	sess.SubmitState = SubmitSuccess
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	return order, nil
}

// publishOrderCreated emits an order.created event. Publish failures are
// logged and never fail the order.
func (s *CheckoutService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.Total,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return
	}
	if err := s.mqClient.Publish("order.created", body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Successfully published order created event for order %s", order.ID)
	}
}
