package model

// Item is a single task-list entry. The ID is store-assigned and immutable
// for the lifetime of the record.
type Item struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"size:255"`
	IsComplete bool   `json:"isComplete" gorm:"default:false"`
}
