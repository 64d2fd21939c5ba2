package constants

// Admission application lifecycle
const (
	AdmissionStatusPending  = "pending"
	AdmissionStatusApproved = "approved"
	AdmissionStatusRejected = "rejected"
)

var AdmissionStatuses = []string{
	AdmissionStatusPending,
	AdmissionStatusApproved,
	AdmissionStatusRejected,
}

// IsValidAdmissionStatus checks a reviewer-supplied status value.
// Any of the three values may be written at any time; the review flow
// does not guard transitions, so re-approving or re-rejecting is allowed.
func IsValidAdmissionStatus(s string) bool {
	for _, v := range AdmissionStatuses {
		if s == v {
			return true
		}
	}
	return false
}
