package models

import "time"

type Genre struct {
	ID        uint      `json:"-" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"not null;size:200"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null;size:50"`
	CreatedAt time.Time `json:"-"`
}
