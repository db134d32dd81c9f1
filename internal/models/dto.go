package models

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type AddContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CountryCode int    `json:"country_code"`
	Number      int64  `json:"number"`
	CreatedBy   string `json:"created_by"`
}

type ContactResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CountryCode int    `json:"country_code"`
	Number      int64  `json:"number"`
}

type GetContactsRequest struct {
	CreatedBy string `json:"created_by"`
}

type StartInterviewResponse struct {
	InterviewID     string `json:"interviewId"`
	CurrentQuestion string `json:"current_question,omitempty"`
}

type NextQuestionRequest struct {
	Response          string `json:"response"`
	InterviewID       string `json:"interviewId"`
	CurrentQuestionID int    `json:"current_question_id"`
}

type NextQuestionResponse struct {
	Question          string `json:"question,omitempty"`
	CurrentQuestionID int    `json:"current_question_id"`
}

type EndInterviewRequest struct {
	InterviewID string `json:"interviewId"`
}

type EndInterviewResponse struct {
	Feedback string `json:"feedback"`
}
