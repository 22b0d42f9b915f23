package models

import "gorm.io/gorm"

// ComplaintStatus tracks a complaint through its lifecycle.
type ComplaintStatus string

const (
	StatusOpen       ComplaintStatus = "OPEN"
	StatusInProgress ComplaintStatus = "IN_PROGRESS"
	StatusResolved   ComplaintStatus = "RESOLVED"
)

// ComplaintPriority orders complaints for triage.
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "LOW"
	PriorityMedium ComplaintPriority = "MEDIUM"
	PriorityHigh   ComplaintPriority = "HIGH"
)

// Complaint is the central record of the system. All party references
// (user, resolver, recorder, complainee, complainer) are weak references
// by id; integrity across them is the store's concern.
type Complaint struct {
	Base

	Title    string            `json:"title" gorm:"type:text;not null" binding:"required"`
	Message  string            `json:"message" gorm:"type:text;not null" binding:"required"`
	Status   ComplaintStatus   `json:"status" gorm:"type:text;index" binding:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED"`
	Priority ComplaintPriority `json:"priority" gorm:"type:text;index" binding:"omitempty,oneof=LOW MEDIUM HIGH"`

	CategoryID   uint  `json:"category_id" gorm:"index" binding:"required"`
	UserID       *uint `json:"user_id" gorm:"index"`
	ResolverID   *uint `json:"resolver_id" gorm:"index"`
	RecorderID   *uint `json:"recorder_id" gorm:"index"`
	ComplaineeID *uint `json:"complainee_id" gorm:"index"`
	ComplainerID *uint `json:"complainer_id" gorm:"index"`
}

// BeforeCreate fills in defaults for records submitted without an
// explicit status or priority.
func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = StatusOpen
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	return nil
}
