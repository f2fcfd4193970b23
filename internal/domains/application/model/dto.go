package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubmitApplicationRequest là JSON trong field "applicationData" của multipart
type SubmitApplicationRequest struct {
	PersonalInfo  PersonalInfo   `json:"personalInfo"`
	QuizResults   *QuizResults   `json:"quizResults"`
	InterviewSlot *InterviewSlot `json:"interviewSlot"`
}

func (r *SubmitApplicationRequest) Normalize() {
	p := &r.PersonalInfo
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	p.Branch = strings.TrimSpace(p.Branch)
	p.Year = strings.TrimSpace(p.Year)
	p.PreferredRole = strings.TrimSpace(p.PreferredRole)
	p.Motivation = strings.TrimSpace(p.Motivation)
	p.Experience = strings.TrimSpace(p.Experience)
	p.PortfolioURL = strings.TrimSpace(p.PortfolioURL)
}

func (r SubmitApplicationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PersonalInfo),
		validation.Field(&r.QuizResults),
	)
}

func (p PersonalInfo) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FullName, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
		validation.Field(&p.Motivation, validation.Length(0, 5000)),
		validation.Field(&p.Experience, validation.Length(0, 5000)),
		validation.Field(&p.PortfolioURL, is.URL),
	)
}

func (q QuizResults) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Score, validation.Min(0), validation.Max(100)),
		validation.Field(&q.CorrectAnswers, validation.Min(0)),
		validation.Field(&q.TotalQuestions, validation.Min(0)),
	)
}

// SubmitResult - DB đã lưu; EmailSent=false nghĩa là "saved but not emailed"
type SubmitResult struct {
	ID        string `json:"id"`
	EmailSent bool   `json:"emailSent"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.In(Statuses...)),
	)
}
