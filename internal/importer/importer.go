package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/project-jobexec/board-client/internal/domain"
)

// Importer scrapes an external job posting page into a JobDraft, so a
// company cross-posting a listing does not retype it into the posting
// form. The draft is a prefill: the form owns validation and the final
// save goes through the normal job mutation path.
type Importer struct {
	collector *colly.Collector
}

// Config holds scraping settings for the importer
type Config struct {
	UserAgent    string
	RequestDelay time.Duration
}

// jsonLDPosting is the subset of a schema.org JobPosting we prefill from
type jsonLDPosting struct {
	Type           string `json:"@type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	EmploymentType string `json:"employmentType"`
	JobLocation    struct {
		Address struct {
			Locality string `json:"addressLocality"`
			Region   string `json:"addressRegion"`
		} `json:"address"`
	} `json:"jobLocation"`
	BaseSalary struct {
		Value struct {
			MinValue json.Number `json:"minValue"`
			MaxValue json.Number `json:"maxValue"`
		} `json:"value"`
		Currency string `json:"currency"`
	} `json:"baseSalary"`
}

// New creates an importer
func New(cfg Config) *Importer {
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}

	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	if cfg.RequestDelay > 0 {
		c.Limit(&colly.LimitRule{
			DomainGlob:  "*",
			Delay:       cfg.RequestDelay,
			RandomDelay: cfg.RequestDelay / 2,
		})
	}

	return &Importer{collector: c}
}

// Import fetches the page at url and extracts a posting draft.
// Structured data (schema.org JobPosting JSON-LD) wins when present;
// otherwise common heading/meta selectors fill in what they can.
func (i *Importer) Import(ctx context.Context, url string) (*domain.JobDraft, error) {
	draft := &domain.JobDraft{SourceURL: url}
	var fromJSONLD bool
	var visitErr error

	c := i.collector.Clone()

	c.OnHTML(`script[type="application/ld+json"]`, func(el *colly.HTMLElement) {
		if fromJSONLD {
			return
		}
		var posting jsonLDPosting
		if err := json.Unmarshal([]byte(el.Text), &posting); err != nil {
			return
		}
		if posting.Type != "JobPosting" {
			return
		}

		draft.Title = strings.TrimSpace(posting.Title)
		draft.Description = strings.TrimSpace(posting.Description)
		draft.WorkType = strings.TrimSpace(posting.EmploymentType)
		draft.Location = joinNonEmpty(
			posting.JobLocation.Address.Locality,
			posting.JobLocation.Address.Region,
		)
		if min := posting.BaseSalary.Value.MinValue.String(); min != "" {
			draft.SalaryText = strings.TrimSpace(fmt.Sprintf(
				"%s - %s %s", min, posting.BaseSalary.Value.MaxValue, posting.BaseSalary.Currency,
			))
		}
		fromJSONLD = draft.Title != ""
	})

	// Fallbacks for pages without structured data
	c.OnHTML("h1", func(el *colly.HTMLElement) {
		if draft.Title == "" {
			draft.Title = strings.TrimSpace(el.Text)
		}
	})
	c.OnHTML(`meta[property="og:title"]`, func(el *colly.HTMLElement) {
		if draft.Title == "" {
			draft.Title = strings.TrimSpace(el.Attr("content"))
		}
	})
	c.OnHTML(`meta[property="og:description"]`, func(el *colly.HTMLElement) {
		if draft.Description == "" {
			draft.Description = strings.TrimSpace(el.Attr("content"))
		}
	})
	c.OnHTML(".location, .job-location", func(el *colly.HTMLElement) {
		if draft.Location == "" {
			draft.Location = strings.TrimSpace(el.Text)
		}
	})
	c.OnHTML(".salary, .job-salary", func(el *colly.HTMLElement) {
		if draft.SalaryText == "" {
			draft.SalaryText = strings.TrimSpace(el.Text)
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		visitErr = fmt.Errorf("fetch posting: %w (status: %d)", err, r.StatusCode)
	})

	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("visit url: %w", err)
	}

	if visitErr != nil {
		return nil, visitErr
	}
	if draft.Title == "" {
		return nil, fmt.Errorf("no posting data found at %s", url)
	}
	return draft, nil
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
