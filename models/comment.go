package models

import "time"

type Comment struct {
	ID       uint      `json:"id" gorm:"primarykey"`
	ReviewID uint      `json:"-" gorm:"not null;index"`
	Review   *Review   `json:"-" gorm:"foreignKey:ReviewID"`
	AuthorID uint      `json:"-" gorm:"not null"`
	Author   User      `json:"-" gorm:"foreignKey:AuthorID"`
	Text     string    `json:"text" gorm:"type:text;not null"`
	PubDate  time.Time `json:"pub_date" gorm:"autoCreateTime;index"`
}
