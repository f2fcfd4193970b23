package model

import (
	"time"

	"qbrain-backend/internal/infrastructure/docstore"
)

type PersonalInfo struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Branch        string `json:"branch"`
	Year          string `json:"year"`
	PreferredRole string `json:"preferredRole"`
	Motivation    string `json:"motivation"`
	Experience    string `json:"experience"`
	PortfolioURL  string `json:"portfolioUrl"`
}

// QuizResults - Score là phần trăm (0-100), nil nếu chưa làm quiz
type QuizResults struct {
	Score          *int       `json:"score,omitempty"`
	CorrectAnswers int        `json:"correctAnswers"`
	TotalQuestions int        `json:"totalQuestions"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

type ResumeFile struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type InterviewSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (s *InterviewSlot) String() string {
	if s == nil {
		return ""
	}
	if s.Time == "" {
		return s.Date
	}
	return s.Date + " " + s.Time
}

// Application - hồ sơ ứng tuyển từ wizard "Join the team"
type Application struct {
	docstore.Meta
	PersonalInfo  PersonalInfo   `json:"personalInfo"`
	QuizResults   *QuizResults   `json:"quizResults,omitempty"`
	ResumeFile    *ResumeFile    `json:"resumeFile,omitempty"`
	InterviewSlot *InterviewSlot `json:"interviewSlot,omitempty"`
	Status        string         `json:"status"`
}

// QuizScore trả về nil nếu chưa có kết quả
func (a *Application) QuizScore() *int {
	if a.QuizResults == nil {
		return nil
	}
	return a.QuizResults.Score
}

func (a *Application) ResumeURL() string {
	if a.ResumeFile == nil {
		return ""
	}
	return a.ResumeFile.URL
}
