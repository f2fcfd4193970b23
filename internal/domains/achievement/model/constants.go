package model

// Status
const (
	StatusCompleted = "completed"
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
)

// Category
const (
	CategoryHackathon   = "hackathon"
	CategoryCompetition = "competition"
	CategoryProject     = "project"
	CategoryAward       = "award"
)

const (
	DateLayout     = "2006-01-02"
	CacheKeyList   = "achievements:list"
	CachePattern   = "achievements:*"
	FormDataField  = "data"
	FormImageField = "image"
)

var (
	Statuses   = []interface{}{StatusCompleted, StatusUpcoming, StatusOngoing}
	Categories = []interface{}{CategoryHackathon, CategoryCompetition, CategoryProject, CategoryAward}
)
