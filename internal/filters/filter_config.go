package filters

import (
	"strings"
	"time"

	"log-stats/internal/models"
	"log-stats/internal/shared/validators"
)

// FilterDateTimeLayout is the layout of --from and --to. Values are read as UTC.
const FilterDateTimeLayout = "2006-01-02 15:04"

// FilterOptions holds raw, unresolved filter values as typed by the user.
// Empty strings mean "not set".
type FilterOptions struct {
	From   string
	To     string
	Status string
	TopN   int
}

var validate = validators.New()

// NewFilterConfig resolves FilterOptions into a FilterConfig. A malformed datetime or a TopN below
// 1 is an invalid-argument error; an unrecognized status class is accepted and filters nothing.
// The status class is kept verbatim, so " 4xx" is unrecognized.
func NewFilterConfig(opts FilterOptions) (*models.FilterConfig, error) {
	cfg := &models.FilterConfig{
		Status: models.StatusClass(opts.Status),
		TopN:   opts.TopN,
	}

	from, err := parseFilterDateTime("--from", opts.From)
	if err != nil {
		return nil, err
	}
	cfg.From = from

	to, err := parseFilterDateTime("--to", opts.To)
	if err != nil {
		return nil, err
	}
	cfg.To = to

	if err := validate.Struct(cfg); err != nil {
		return nil, errInvalidTopN(opts.TopN, err)
	}

	return cfg, nil
}

func parseFilterDateTime(flag, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(FilterDateTimeLayout, value, time.UTC)
	if err != nil {
		return nil, errInvalidDateTime(flag, value, err)
	}
	return &t, nil
}
