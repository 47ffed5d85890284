package api

import "strings"

// Badge buckets for order statuses.
const (
	StatusClassSuccess = "success"
	StatusClassPending = "pending"
	StatusClassFailed  = "failed"
	StatusClassOther   = "other"
)

// ClassifyStatus maps a free-form status to a badge bucket. Statuses
// are advisory strings, not a state machine the backend enforces, so
// unknown ones fall through to "other" rather than erroring.
func ClassifyStatus(status string) string {
	switch strings.ToLower(status) {
	case "completed", "delivered":
		return StatusClassSuccess
	case "pending", "processing":
		return StatusClassPending
	case "failed", "cancelled", "canceled":
		return StatusClassFailed
	default:
		return StatusClassOther
	}
}
