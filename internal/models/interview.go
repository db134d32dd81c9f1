package models

import (
	"time"

	"github.com/lib/pq"
)

// InterviewData holds the extracted source texts an interview was
// generated from. It is written once, when the interview starts, and is
// independent of the evolving Interview record that shares its id.
type InterviewData struct {
	ID             string    `gorm:"type:text;primary_key" json:"id"`
	ResumeText     string    `gorm:"type:text" json:"resume_text"`
	JobDescription string    `gorm:"type:text" json:"job_description"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (d *InterviewData) TableName() string {
	return "interview_data"
}

// Interview is the evolving session state: the fixed question list, the
// append-only response list and, once the session ends, the feedback.
// All writes after creation are upserts keyed by id.
type Interview struct {
	ID                string         `gorm:"type:text;primary_key" json:"id"`
	CurrentQuestionID int            `gorm:"not null;default:0" json:"current_question_id"`
	Questions         pq.StringArray `gorm:"type:text[]" json:"questions"`
	Responses         pq.StringArray `gorm:"type:text[]" json:"responses"`
	Feedback          string         `gorm:"type:text" json:"feedback"`
	CreatedAt         time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (i *Interview) TableName() string {
	return "interviews"
}
