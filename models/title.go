package models

import "time"

type Title struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"not null;size:256"`
	Year        *int      `json:"year"`
	Description string    `json:"description" gorm:"type:text"`
	CategoryID  *uint     `json:"-"`
	Category    *Category `json:"category" gorm:"foreignKey:CategoryID"`
	Genres      []Genre   `json:"genre" gorm:"many2many:title_genres;"`
	// Rounded average review score, annotated by the repository on reads.
	// Null until the title has at least one review.
	Rating    *int      `json:"rating" gorm:"->;-:migration"`
	CreatedAt time.Time `json:"-"`
}
