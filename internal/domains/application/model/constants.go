package model

// Application status
const (
	StatusPending     = "pending"
	StatusReviewing   = "reviewing"
	StatusShortlisted = "shortlisted"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
)

var Statuses = []interface{}{StatusPending, StatusReviewing, StatusShortlisted, StatusAccepted, StatusRejected}

const (
	FormDataField   = "applicationData"
	FormResumeField = "resume"

	ExportSheetName = "Applications"
)

// IsValidStatus - "" được coi là hợp lệ (không lọc)
func IsValidStatus(status string) bool {
	if status == "" {
		return true
	}
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
