package domain

import "time"

// SessionState é o retrato de uma sessão de dashboard
type SessionState struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId,omitempty"`
	Product      *ProductSummary `json:"product,omitempty"`
	DisplayState DisplayState    `json:"displayState"`
	Generation   uint64          `json:"generation"`
	Viewport     *Viewport       `json:"viewport,omitempty"`
	TimeUnit     Granularity     `json:"timeUnit,omitempty"`
	Sort         SortState       `json:"sort"`
	CreatedAt    time.Time       `json:"createdAt"`
	LastSeenAt   time.Time       `json:"lastSeenAt"`
}
