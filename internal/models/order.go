package models

import "time"

// Delivery methods and their shipping fees.
const (
	DeliveryStandard = "standard"
	DeliveryExpress  = "express"

	ExpressShippingFee = 15.00
)

// Payment methods accepted at checkout.
const (
	PaymentCard   = "card"
	PaymentPaypal = "paypal"
	PaymentCOD    = "cod"
)

// OrderItem is one line of an order, snapshotting the product id, quantity,
// unit price and image at the time of purchase.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // Price at the time of order
	Image     string  `json:"image"`
}

// Order represents a completed purchase intent.
type Order struct {
	ID             string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         string      `json:"user_id" gorm:"index;type:varchar(36)"`
	FullName       string      `json:"full_name"`
	Email          string      `json:"email"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	PostalCode     string      `json:"postal_code"`
	DeliveryMethod string      `json:"delivery_method" gorm:"type:varchar(20)"`
	PaymentMethod  string      `json:"payment_method" gorm:"type:varchar(20)"`
	ShippingFee    float64     `json:"shipping_fee"`
	Total          float64     `json:"total"` // Cart subtotal + shipping fee
	Status         string      `json:"status"`
	Items          []OrderItem `json:"items" gorm:"-"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// ShippingFeeFor returns the fee charged for a delivery method. Express
// carries a fixed surcharge, standard is free.
func ShippingFeeFor(method string) float64 {
	if method == DeliveryExpress {
		return ExpressShippingFee
	}
	return 0
}
