package models

const (
	ReviewStatusPending  = "Pending"
	ReviewStatusApproved = "Approved"
	ReviewStatusRejected = "Rejected"
)

// Review is the moderation record every offer-bearing entity points at. Nothing is
// visible to customers until its review is Approved, at every level of nesting.
type Review struct {
	ID     string `json:"id" gorm:"primaryKey"`
	Status string `json:"status" gorm:"default:'Pending';index"`
}
