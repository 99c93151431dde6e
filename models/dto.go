package models

import "time"

// API requests

type APILoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ArticleRequest struct {
	Title   string `json:"title"`
	Perex   string `json:"perex"`
	Content string `json:"content"`
}

// API responses (inside the {ok:true, ...} envelope)

type APILoginResponse struct {
	Token    string   `json:"token"`
	Role     UserRole `json:"role"`
	Username string   `json:"username"`
}

type ArticleListItem struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	AuthorID  uint      `json:"author_id"`
}

type ArticleDetail struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Perex     string    `json:"perex"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Web form submissions

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type RegisterForm struct {
	Username string `form:"username" binding:"required,min=3,max=50"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type ChangePasswordForm struct {
	Password string `form:"password" binding:"required"`
	Confirm  string `form:"confirm" binding:"required"`
}

type ProfileEditForm struct {
	DisplayName string `form:"display_name"`
	Bio         string `form:"bio"`
	BirthDate   string `form:"birth_date"` // YYYY-MM-DD, optional
	Gender      string `form:"gender"`
	Theme       string `form:"theme"`
}

type CommentForm struct {
	Content string `form:"content" binding:"required"`
}
