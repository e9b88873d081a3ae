// Package dto defines request and response schemas for the HTTP API.
package dto

import "time"

const dateLayout = "2006-01-02"

// StatusResponse confirms a delete.
type StatusResponse struct {
	Status string `json:"status"`
}

// Deleted is the confirmation body for delete endpoints.
func Deleted() StatusResponse {
	return StatusResponse{Status: "deleted"}
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
