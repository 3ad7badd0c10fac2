package domain

import "time"

type CreateLinkRequest struct {
	URL     string `json:"url" validate:"required"`
	TTLDays *int   `json:"ttl_days,omitempty" validate:"omitnil,min=1,max=3650"`
}

type CreateLinkResponse struct {
	ShortCode   string     `json:"short_code"`
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type CreateLinkBatchRequest struct {
	URLs    []string `json:"urls"`
	TTLDays *int     `json:"ttl_days,omitempty" validate:"omitnil,min=1,max=3650"`
}

type CreateLinkBatchResponse struct {
	Links []CreateLinkResponse `json:"links"`
}

type LinkView struct {
	ID           string     `json:"id"`
	ShortURL     string     `json:"shortUrl"`
	OriginalURL  string     `json:"originalUrl"`
	CreatedAt    time.Time  `json:"createdAt"`
	ExpiresAt    *time.Time `json:"expiresAt"`
	ClickCount   int64      `json:"clickCount"`
	LastAccessed *time.Time `json:"lastAccessed"`
}
