package models

import "time"

type Review struct {
	ID       uint      `json:"id" gorm:"primarykey"`
	TitleID  uint      `json:"-" gorm:"not null;uniqueIndex:idx_review_author_title"`
	Title    *Title    `json:"-" gorm:"foreignKey:TitleID"`
	AuthorID uint      `json:"-" gorm:"not null;uniqueIndex:idx_review_author_title"`
	Author   User      `json:"-" gorm:"foreignKey:AuthorID"`
	Text     string    `json:"text" gorm:"type:text;not null"`
	Score    int       `json:"score" gorm:"not null"`
	PubDate  time.Time `json:"pub_date" gorm:"autoCreateTime"`
}
