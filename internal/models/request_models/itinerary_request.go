package request_models

type GenerateItineraryRequest struct {
	City      string   `json:"city"`
	Budget    string   `json:"budget"`
	Days      int      `json:"days"`
	Interests []string `json:"interests"`
}

const (
	MinDays = 1
	MaxDays = 14
)

func (r GenerateItineraryRequest) ValidDayCount() bool {
	return r.Days >= MinDays && r.Days <= MaxDays
}
