package models

import "time"

type Category struct {
	ID        uint      `json:"-" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"not null;size:256"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null;size:50"`
	CreatedAt time.Time `json:"-"`
}
