package v1

import (
	"time"

	bb_uuid "github.com/budgetbook/backend/internal/uuid"
)

type URIID struct {
	ID bb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2024-08"` // Year and month in YYYY-MM format
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"827"` // The total number of resources matching the query
}
