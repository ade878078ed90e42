package model

import "time"

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Task struct {
	Record
	Title        string       `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Description  string       `gorm:"type:text" json:"description"`
	AssignedToID *uint        `gorm:"index" json:"assigned_to_id,omitempty"`
	AssignedTo   *Employee    `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty" validate:"-"`
	DueDate      *time.Time   `gorm:"type:date" json:"due_date,omitempty"`
	Status       TaskStatus   `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Priority     TaskPriority `gorm:"type:varchar(10);default:'medium'" json:"priority"`
}
