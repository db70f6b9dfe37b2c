package response

import (
	"time"

	"lazarus_guide/internal/usecase"
)

// ListGuidesResponse flattens the pagination envelope the way the listing
// endpoint exposes it: metadata at the top level next to the data page.
type ListGuidesResponse struct {
	Success   bool                     `json:"success"`
	Data      []usecase.GuideWithAudit `json:"data"`
	Total     int64                    `json:"total"`
	Page      int                      `json:"page"`
	Limit     int                      `json:"limit"`
	HasNext   bool                     `json:"hasNext"`
	HasPrev   bool                     `json:"hasPrev"`
	Timestamp string                   `json:"timestamp"`
}

func FromPaginatedGuides(p usecase.PaginatedGuides) ListGuidesResponse {
	data := p.Data
	if data == nil {
		data = []usecase.GuideWithAudit{}
	}
	return ListGuidesResponse{
		Success:   true,
		Data:      data,
		Total:     p.Total,
		Page:      p.Page,
		Limit:     p.Limit,
		HasNext:   p.HasNext,
		HasPrev:   p.HasPrev,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
