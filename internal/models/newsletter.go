package models

import "time"

// NewsletterSubscription is one subscribed email address.
type NewsletterSubscription struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	CreatedAt time.Time `json:"created_at"`
}
