// internal/domain/trend/fallback.go

package trend

// Fallback lists returned when the dataset cannot be processed. Each
// degraded mode gets a distinguishable, fixed payload so the frontend can
// visually detect it; the HTTP layer still responds 200 with a valid shape.

// FallbackMissingDataset is served when the dataset file does not exist.
func FallbackMissingDataset() []Summary {
	return []Summary{
		{
			ID:                        1,
			TrendName:                 "Fallback: Oversized Blazers",
			Category:                  "Outerwear",
			CurrentPopularity:         85,
			PredictedPopularityChange: "+10",
			Keywords:                  []string{"blazer", "oversized", "formal", "casual", "chic"},
			ImageURL:                  "https://placehold.co/300x200/F0F0F0/333333?text=Fallback+Data",
			Description:               "Using fallback data. Please ensure Kaggle dataset is downloaded.",
		},
		{
			ID:                        2,
			TrendName:                 "Fallback: Cargo Pants",
			Category:                  "Bottoms",
			CurrentPopularity:         78,
			PredictedPopularityChange: "+15",
			Keywords:                  []string{"cargo", "pants", "utility", "streetwear", "comfort"},
			ImageURL:                  "https://placehold.co/300x200/F0F0F0/333333?text=Fallback+Data",
			Description:               "Using fallback data. Please ensure Kaggle dataset is downloaded.",
		},
	}
}

// FallbackProcessingError is served when the dataset exists but cannot be
// parsed.
func FallbackProcessingError() []Summary {
	return []Summary{
		{
			ID:                        1,
			TrendName:                 "Fallback: Processing Error",
			Category:                  "Error",
			CurrentPopularity:         50,
			PredictedPopularityChange: "+0",
			Keywords:                  []string{"error", "processing", "check-console"},
			ImageURL:                  "https://placehold.co/300x200/CCCCCC/666666?text=Processing+Error",
			Description:               "An error occurred during data processing. See backend console.",
		},
	}
}

// FallbackDataIssue is served when the dataset parses but carries no usable
// category column.
func FallbackDataIssue() []Summary {
	return []Summary{
		{
			ID:                        1,
			TrendName:                 "Fallback: Data Issue",
			Category:                  "Unknown",
			CurrentPopularity:         50,
			PredictedPopularityChange: "+0",
			Keywords:                  []string{"data", "error", "check-console"},
			ImageURL:                  "https://placehold.co/300x200/CCCCCC/666666?text=Data+Error",
			Description:               "Could not process Kaggle data. Check backend console for column issues.",
		},
	}
}
