package models

type Location struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type EventType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Image struct {
	ID      int    `json:"id"`
	EventID int    `json:"event_id"`
	URL     string `json:"url"`
	IsCover bool   `json:"is_cover"`
}
