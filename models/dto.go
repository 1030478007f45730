package models

type SignUpRequest struct {
	FirstName       string `json:"firstName" binding:"required" validate:"required,alpha"`
	LastName        string `json:"lastName" binding:"required" validate:"required,alpha"`
	Email           string `json:"emailId" binding:"required,email" validate:"required,email"`
	Password        string `json:"password" binding:"required,min=6" validate:"required,min=6,strongpwd"`
	ConfirmPassword string `json:"confirmPassword" binding:"required" validate:"required,eqfield=Password"`
}

type SignInRequest struct {
	Email    string `json:"emailId" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type ForgotPasswordRequest struct {
	Email string `json:"emailId" binding:"required,email"`
}

type ResetPasswordRequest struct {
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type CreateQuestionRequest struct {
	Question    string   `json:"question" binding:"required"`
	Description string   `json:"questionDescribe" binding:"required"`
	Tags        []string `json:"tags" binding:"required"`
}

type UpdateQuestionRequest struct {
	Question    *string   `json:"question"`
	Description *string   `json:"questionDescribe"`
	Tags        *[]string `json:"tags"`
}

type CreateAnswerRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type UpdateAnswerRequest struct {
	Answer *string `json:"answer"`
}

type CreateBlogRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type UpdateBlogRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	IsApproved *bool   `json:"isApproved"`
}

type UpdateDocumentRequest struct {
	FileName   *string `json:"fileName"`
	IsApproved *bool   `json:"isApproved"`
}

type BookmarkRequest struct {
	QuestionID uint `json:"questionId" binding:"required"`
}

// Page carries resolved pagination input. Absent or non-numeric query values
// fall back to the per-resource defaults before this is built.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
