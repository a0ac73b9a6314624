package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/services"
	"storefront/pkg/cartstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateItems(items []models.OrderItem) error {
	args := m.Called(items)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

// seedCheckout builds a cart with A(10x2)+B(5x1)=25 and walks the wizard to
// the payment step.
func seedCheckout(t *testing.T, delivery string) (*services.CartService, *services.CheckoutService, *MockOrderRepository) {
	t.Helper()

	cart := services.NewCartService(cartstore.NewMemoryStore())
	cart.AddToCart("sess-1", models.CartItem{ID: "A", Name: "Lipstick", Price: 10, Quantity: 2, Image: "a.png"})
	cart.AddToCart("sess-1", models.CartItem{ID: "B", Name: "Serum", Price: 5, Quantity: 1, Image: "b.png"})

	mockRepo := new(MockOrderRepository)
	checkout := services.NewCheckoutService(cart, mockRepo, nil)

	err := checkout.SubmitShipping("sess-1", services.ShippingInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Address:  "123 Main St",
		City:     "Los Angeles",
	})
	assert.NoError(t, err)
	assert.NoError(t, checkout.SelectDelivery("sess-1", delivery))
	assert.NoError(t, checkout.SelectPayment("sess-1", models.PaymentCOD, nil))

	return cart, checkout, mockRepo
}

func TestCheckoutService_ShippingGuard(t *testing.T) {
	cart := services.NewCartService(cartstore.NewMemoryStore())
	checkout := services.NewCheckoutService(cart, new(MockOrderRepository), nil)

	// Missing address blocks the transition.
	err := checkout.SubmitShipping("sess-1", services.ShippingInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	})
	assert.Error(t, err)
	assert.Equal(t, services.StepShipping, checkout.Session("sess-1").Step)

	// Malformed email blocks too.
	err = checkout.SubmitShipping("sess-1", services.ShippingInfo{
		FullName: "Jane Doe",
		Email:    "not-an-email",
		Address:  "123 Main St",
	})
	assert.Error(t, err)

	// Valid fields advance to delivery; city/postal stay optional.
	err = checkout.SubmitShipping("sess-1", services.ShippingInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Address:  "123 Main St",
	})
	assert.NoError(t, err)
	assert.Equal(t, services.StepDelivery, checkout.Session("sess-1").Step)
}

func TestCheckoutService_DeliveryAffectsTotal(t *testing.T) {
	_, checkout, _ := seedCheckout(t, models.DeliveryStandard)
	assert.Equal(t, 25.0, checkout.OrderTotal("sess-1"))

	// Switching to express adds exactly 15.00 for the identical cart.
	assert.NoError(t, checkout.SelectDelivery("sess-1", models.DeliveryExpress))
	assert.Equal(t, 40.0, checkout.OrderTotal("sess-1"))

	assert.Error(t, checkout.SelectDelivery("sess-1", "overnight"))
}

func TestCheckoutService_BackKeepsStepsEditable(t *testing.T) {
	_, checkout, _ := seedCheckout(t, models.DeliveryStandard)
	assert.Equal(t, services.StepPayment, checkout.Session("sess-1").Step)

	checkout.Back("sess-1")
	assert.Equal(t, services.StepDelivery, checkout.Session("sess-1").Step)
	checkout.Back("sess-1")
	assert.Equal(t, services.StepShipping, checkout.Session("sess-1").Step)

	// Entered data survives the navigation.
	assert.Equal(t, "Jane Doe", checkout.Session("sess-1").Shipping.FullName)
}

func TestCheckoutService_PlaceOrderSuccess(t *testing.T) {
	cart, checkout, mockRepo := seedCheckout(t, models.DeliveryExpress)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockRepo.On("CreateItems", mock.AnythingOfType("[]models.OrderItem")).Return(nil).Once()

	order, err := checkout.PlaceOrder("sess-1", "user-123")
	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, "user-123", order.UserID)
	assert.Equal(t, 40.0, order.Total) // 25 subtotal + 15 express
	assert.Equal(t, 15.0, order.ShippingFee)
	assert.Equal(t, models.DeliveryExpress, order.DeliveryMethod)
	assert.Equal(t, models.PaymentCOD, order.PaymentMethod)
	assert.Equal(t, "pending", order.Status)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, order.ID, order.Items[0].OrderID)

	// Cart is cleared only on full success.
	assert.Empty(t, cart.Items("sess-1"))
	mockRepo.AssertExpectations(t)
}

func TestCheckoutService_PlaceOrderUnauthenticated(t *testing.T) {
	cart, checkout, mockRepo := seedCheckout(t, models.DeliveryStandard)

	order, err := checkout.PlaceOrder("sess-1", "")
	assert.ErrorIs(t, err, services.ErrAuthRequired)
	assert.Nil(t, order)

	// No remote writes happened and the cart is untouched.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertNotCalled(t, "CreateItems", mock.Anything)
	assert.Len(t, cart.Items("sess-1"), 2)
}

func TestCheckoutService_PlaceOrderOrderInsertFails(t *testing.T) {
	cart, checkout, mockRepo := seedCheckout(t, models.DeliveryStandard)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(fmt.Errorf("connection refused")).Once()

	order, err := checkout.PlaceOrder("sess-1", "user-123")
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "connection refused")

	// Aborts cleanly: no items written, cart intact, resubmission possible.
	mockRepo.AssertNotCalled(t, "CreateItems", mock.Anything)
	assert.Len(t, cart.Items("sess-1"), 2)
	assert.Equal(t, services.SubmitFailed, checkout.Session("sess-1").SubmitState)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockRepo.On("CreateItems", mock.AnythingOfType("[]models.OrderItem")).Return(nil).Once()
	_, err = checkout.PlaceOrder("sess-1", "user-123")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCheckoutService_PlaceOrderItemInsertFailsCompensates(t *testing.T) {
	cart, checkout, mockRepo := seedCheckout(t, models.DeliveryStandard)

	var createdID string
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		createdID = args.Get(0).(*models.Order).ID
	}).Return(nil).Once()
	mockRepo.On("CreateItems", mock.AnythingOfType("[]models.OrderItem")).Return(fmt.Errorf("bulk insert failed")).Once()
	mockRepo.On("Delete", mock.AnythingOfType("string")).Return(nil).Once()

	order, err := checkout.PlaceOrder("sess-1", "user-123")
	assert.Error(t, err)
	assert.Nil(t, order)

	// The order row is compensated away and the cart is NOT cleared.
	mockRepo.AssertCalled(t, "Delete", createdID)
	assert.Len(t, cart.Items("sess-1"), 2)
	assert.Equal(t, services.SubmitFailed, checkout.Session("sess-1").SubmitState)
	mockRepo.AssertExpectations(t)
}

func TestCheckoutService_PlaceOrderGuards(t *testing.T) {
	cart := services.NewCartService(cartstore.NewMemoryStore())
	mockRepo := new(MockOrderRepository)
	checkout := services.NewCheckoutService(cart, mockRepo, nil)

	// Still on the shipping step: placement is rejected.
	_, err := checkout.PlaceOrder("sess-1", "user-123")
	assert.ErrorIs(t, err, services.ErrWrongStep)

	// Empty cart at the payment step is rejected before any write.
	assert.NoError(t, checkout.SubmitShipping("sess-1", services.ShippingInfo{
		FullName: "Jane Doe", Email: "jane@example.com", Address: "123 Main St",
	}))
	assert.NoError(t, checkout.SelectDelivery("sess-1", models.DeliveryStandard))
	assert.NoError(t, checkout.SelectPayment("sess-1", models.PaymentPaypal, nil))
	_, err = checkout.PlaceOrder("sess-1", "user-123")
	assert.ErrorIs(t, err, services.ErrEmptyCart)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCheckoutService_CardPaymentValidation(t *testing.T) {
	_, checkout, _ := seedCheckout(t, models.DeliveryStandard)

	// Card method without details is rejected.
	assert.Error(t, checkout.SelectPayment("sess-1", models.PaymentCard, nil))

	// Incomplete card details are rejected.
	assert.Error(t, checkout.SelectPayment("sess-1", models.PaymentCard, &services.CardDetails{
		Name: "Jane Doe",
	}))

	// Well-shaped details pass.
	assert.NoError(t, checkout.SelectPayment("sess-1", models.PaymentCard, &services.CardDetails{
		Name:   "Jane Doe",
		Number: "4242424242424242",
		Expiry: "12/27",
		CVC:    "123",
	}))
	assert.Equal(t, models.PaymentCard, checkout.Session("sess-1").PaymentMethod)

	assert.Error(t, checkout.SelectPayment("sess-1", "bitcoin", nil))
}
