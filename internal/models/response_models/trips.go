package response_models

type Trip struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	City      string     `json:"city"`
	Days      int        `json:"days"`
	Author    string     `json:"author"`
	CreatedAt string     `json:"created_at"`
	Itinerary *Itinerary `json:"itinerary,omitempty"`
}
