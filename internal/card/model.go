package card

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Column string

const (
	ColumnTodo  Column = "todo"
	ColumnDoing Column = "doing"
	ColumnDone  Column = "done"
)

func ValidColumn(c Column) bool {
	switch c {
	case ColumnTodo, ColumnDoing, ColumnDone:
		return true
	}
	return false
}

// Card is a kanban board item. The stage column is persisted as column_name
// because "column" is an SQL keyword.
type Card struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"default:''" json:"description"`
	Column      Column    `gorm:"column:column_name;type:varchar(10);default:'todo'" json:"column"`
	CreatorID   string    `gorm:"type:uuid" json:"creatorId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
