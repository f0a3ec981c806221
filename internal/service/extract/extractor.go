// internal/service/extract/extractor.go

package extract

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"pintrends/internal/adapter/dataset"
	"pintrends/internal/domain/trend"
	"pintrends/internal/logger"
)

// Column priority lists. The dataset this backend was built around ships a
// "Type " header with a trailing space, so names are matched verbatim.
var (
	categoryColumns = []string{"Type ", "Subtype", "Category", "category", "ProductCategory", "product_category"}
	textColumns     = []string{"description", "title"}
	imageColumns    = []string{"image_url", "imageUrl", "image", "img_url"}
)

const (
	minPopularity = 30
	maxPopularity = 95

	maxKeywords   = 5
	minWordLength = 4

	maxDescriptionLen = 150
)

// Config contains configuration for the extractor.
type Config struct {
	// DatasetPath is the delimited file to load at startup.
	DatasetPath string

	// Seed fixes the RNG behind the simulated prediction numbers.
	// Zero means seed from the clock.
	Seed int64
}

// Extractor derives per-category trend summaries from a pin dataset. It
// runs once at startup; its output is immutable for the process lifetime.
type Extractor struct {
	config Config
	rng    *rand.Rand
}

// New creates a new extractor.
func New(config Config) *Extractor {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Extractor{
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Run loads the dataset and produces the process-wide snapshot. It never
// fails: every degraded mode substitutes a fixed fallback list.
func (e *Extractor) Run() *Snapshot {
	return NewSnapshot(e.extract())
}

func (e *Extractor) extract() []trend.Summary {
	path := e.config.DatasetPath
	logger.Infof("extract: loading dataset from %q", path)

	if _, err := os.Stat(path); err != nil {
		logger.Warnf("extract: dataset file %q not found, serving fallback list", path)
		return trend.FallbackMissingDataset()
	}

	table, err := dataset.Load(path)
	if err != nil {
		logger.Errorf("extract: %v, serving processing-error fallback", err)
		return trend.FallbackProcessingError()
	}
	logger.Infof("extract: dataset loaded, %d rows, columns %v", len(table.Rows), table.Headers)

	categoryIdx := -1
	categoryCol := ""
	for _, name := range categoryColumns {
		if idx := table.ColumnIndex(name); idx >= 0 {
			categoryIdx, categoryCol = idx, name
			break
		}
	}
	if categoryIdx < 0 {
		logger.Warnf("extract: no category column among %v, serving data-issue fallback", categoryColumns)
		return trend.FallbackDataIssue()
	}
	logger.Infof("extract: grouping by column %q", categoryCol)

	groups := groupRows(table, categoryIdx)
	if len(groups) == 0 {
		logger.Warnf("extract: column %q holds no values, serving data-issue fallback", categoryCol)
		return trend.FallbackDataIssue()
	}

	// Descending by row count; ties keep first-appearance order so output
	// is deterministic for a given file.
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].rows) > len(groups[j].rows)
	})
	maxCount := len(groups[0].rows)

	summaries := make([]trend.Summary, 0, len(groups))
	for i, g := range groups {
		sample := sampleText(table, g.rows)

		summaries = append(summaries, trend.Summary{
			ID:                        i + 1,
			TrendName:                 g.category,
			Category:                  g.category,
			CurrentPopularity:         popularity(len(g.rows), maxCount),
			PredictedPopularityChange: e.predictedChange(),
			Keywords:                  keywords(sample, g.category),
			ImageURL:                  imageURL(table, g.rows, g.category),
			Description:               description(sample, g.category),
		})
	}

	logger.Infof("extract: derived %d trends from %d groups", len(summaries), len(groups))
	return summaries
}

type categoryGroup struct {
	category string
	rows     [][]string
}

// groupRows buckets rows by the category column value, skipping rows with
// an empty value, preserving first-appearance order of the categories.
func groupRows(table *dataset.Table, categoryIdx int) []*categoryGroup {
	byName := make(map[string]*categoryGroup)
	var ordered []*categoryGroup

	for _, row := range table.Rows {
		value := table.Value(row, categoryIdx)
		if value == "" {
			continue
		}
		g, ok := byName[value]
		if !ok {
			g = &categoryGroup{category: value}
			byName[value] = g
			ordered = append(ordered, g)
		}
		g.rows = append(g.rows, row)
	}

	return ordered
}

// popularity scales a group's row count against the largest group and
// clamps the result to [minPopularity, maxPopularity]. The clamp is a
// presentation choice, not a statistically meaningful scale.
func popularity(count, maxCount int) int {
	p := int(math.Round(float64(count) / float64(maxCount) * 100))
	if p < minPopularity {
		return minPopularity
	}
	if p > maxPopularity {
		return maxPopularity
	}
	return p
}

// predictedChange simulates a trend signal: a uniform integer in [-10, 25]
// with an explicit sign for non-negative values. There is no model behind
// it.
func (e *Extractor) predictedChange() string {
	n := e.rng.Intn(36) - 10
	if n >= 0 {
		return fmt.Sprintf("+%d", n)
	}
	return strconv.Itoa(n)
}

// sampleText returns the first non-empty description (then title) value
// among the group's rows, or "".
func sampleText(table *dataset.Table, rows [][]string) string {
	for _, name := range textColumns {
		idx := table.ColumnIndex(name)
		if idx < 0 {
			continue
		}
		for _, row := range rows {
			if v := table.Value(row, idx); v != "" {
				return v
			}
		}
	}
	return ""
}

// keywords picks up to maxKeywords distinct lowercase words longer than
// three characters from the sample text, in first-occurrence order. With no
// usable text the hyphenated category name stands in.
func keywords(sample, category string) []string {
	if sample == "" {
		return []string{strings.ReplaceAll(strings.ToLower(category), " ", "-")}
	}

	seen := make(map[string]struct{})
	var words []string
	for _, word := range strings.Fields(sample) {
		if utf8.RuneCountInString(word) < minWordLength {
			continue
		}
		word = strings.ToLower(word)
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
		if len(words) == maxKeywords {
			break
		}
	}

	if len(words) == 0 {
		return []string{strings.ReplaceAll(strings.ToLower(category), " ", "-")}
	}
	return words
}

// description truncates the sample text to maxDescriptionLen runes. With no
// usable text a sentence naming the category stands in.
func description(sample, category string) string {
	if sample == "" {
		return fmt.Sprintf("Trends in the '%s' category, derived from Kaggle data.", category)
	}

	runes := []rune(sample)
	if len(runes) > maxDescriptionLen {
		runes = runes[:maxDescriptionLen]
	}
	return string(runes) + "..."
}

// imageURL returns the first "http"-prefixed value in the first present
// image column for the group, else a placeholder image encoding the
// category name.
func imageURL(table *dataset.Table, rows [][]string, category string) string {
	for _, name := range imageColumns {
		idx := table.ColumnIndex(name)
		if idx < 0 {
			continue
		}
		for _, row := range rows {
			if v := table.Value(row, idx); strings.HasPrefix(v, "http") {
				return v
			}
		}
		break
	}
	return "https://placehold.co/300x200/F0F0F0/333333?text=" + strings.ReplaceAll(category, " ", "+")
}
