package models

import "time"

type SignupRequest struct {
	Username string `json:"username" binding:"required" validate:"required,max=150,username_format,not_me"`
	Email    string `json:"email" binding:"required,email" validate:"required,email,max=254"`
}

type TokenRequest struct {
	Username         string `json:"username" binding:"required"`
	ConfirmationCode string `json:"confirmation_code" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateUserRequest struct {
	Username  string   `json:"username" binding:"required" validate:"required,max=150,username_format,not_me"`
	Email     string   `json:"email" binding:"required,email" validate:"required,email,max=254"`
	FirstName string   `json:"first_name" validate:"max=150"`
	LastName  string   `json:"last_name" validate:"max=150"`
	Bio       string   `json:"bio"`
	Role      UserRole `json:"role"`
}

type UpdateUserRequest struct {
	Email     *string   `json:"email" validate:"omitempty,email,max=254"`
	FirstName *string   `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string   `json:"last_name" validate:"omitempty,max=150"`
	Bio       *string   `json:"bio"`
	Role      *UserRole `json:"role"`
}

type UserListParams struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=256"`
	Slug string `json:"slug" binding:"required,max=50" validate:"required,slug_format"`
}

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,max=200"`
	Slug string `json:"slug" binding:"required,max=50" validate:"required,slug_format"`
}

type CreateTitleRequest struct {
	Name        string   `json:"name" binding:"required,max=256"`
	Year        *int     `json:"year"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Genre       []string `json:"genre"`
}

type UpdateTitleRequest struct {
	Name        *string   `json:"name" validate:"omitempty,max=256"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Genre       *[]string `json:"genre"`
}

type TitleListParams struct {
	Category string `form:"category"`
	Genre    string `form:"genre"`
	Name     string `form:"name"`
	Year     int    `form:"year"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}

type CreateReviewRequest struct {
	Text  string `json:"text" binding:"required"`
	Score int    `json:"score" binding:"required,min=1,max=10"`
}

type UpdateReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score" validate:"omitempty,min=1,max=10"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

type ListParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// ReviewResponse flattens the author relation to a username, matching the
// public payload shape.
type ReviewResponse struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func NewReviewResponse(r *Review) ReviewResponse {
	return ReviewResponse{
		ID:      r.ID,
		Text:    r.Text,
		Author:  r.Author.Username,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
}

func NewReviewResponses(reviews []Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}

type CommentResponse struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

func NewCommentResponse(c *Comment) CommentResponse {
	return CommentResponse{
		ID:      c.ID,
		Text:    c.Text,
		Author:  c.Author.Username,
		PubDate: c.PubDate,
	}
}

func NewCommentResponses(comments []Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentResponse(&comments[i]))
	}
	return out
}
