package models

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=4"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	User  User   `json:"user"`
}

type ProfileResponse struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
	User User   `json:"user"`
}

// UpdateUserRequest carries a partial update; nil fields are left unchanged.
type UpdateUserRequest struct {
	Password  *string `json:"password" validate:"omitempty,min=4"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
}

type ChangeUserStatusRequest struct {
	UserStatus *int `json:"user_status" validate:"required"`
}

type CreateArticleRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Text string `json:"text" validate:"required"`
}

type UpdateArticleRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Text *string `json:"text"`
}

type CreateChangeRequest struct {
	ArticleID uint   `json:"article_id" validate:"required"`
	NewText   string `json:"new_text" validate:"required"`
}

type CreateReviewRequest struct {
	ChangeID uint   `json:"change_id" validate:"required"`
	Verdict  *bool  `json:"verdict" validate:"required"`
	Comment  string `json:"comment" validate:"required,max=200"`
}

type UpdateReviewRequest struct {
	Verdict *bool   `json:"verdict" validate:"required"`
	Comment *string `json:"comment" validate:"omitempty,max=200"`
}
