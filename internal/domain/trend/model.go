// internal/domain/trend/model.go

package trend

// Summary represents one aggregated fashion category with its simulated
// popularity metrics. The JSON field names are the contract with the
// frontend and must not change.
type Summary struct {
	ID                        int      `json:"id"`
	TrendName                 string   `json:"trendName"`
	Category                  string   `json:"category"`
	CurrentPopularity         int      `json:"currentPopularity"`
	PredictedPopularityChange string   `json:"predictedPopularityChange"`
	Keywords                  []string `json:"keywords"`
	ImageURL                  string   `json:"imageUrl"`
	Description               string   `json:"description"`
}
