package specification

import "gorm.io/gorm"

// WithSender preloads the sender profile on message queries.
type WithSender struct{}

func (s WithSender) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Sender")
}
