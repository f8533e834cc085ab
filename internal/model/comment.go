package model

import "time"

// Comment is a free-form note attached to a sale by a staff member.
type Comment struct {
	ID          uint64    `json:"id"`          // comments.id
	RelatedSale uint64    `json:"relatedSale"` // comments.related_sale (references sales.id)
	Comment     string    `json:"comment"`     // comments.comment
	CreatedBy   uint64    `json:"createdBy"`   // comments.created_by (references users.id)
	CreatedAt   time.Time `json:"createdAt"`   // comments.created_at
}
