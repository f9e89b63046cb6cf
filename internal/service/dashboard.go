package service

import (
	"context"
	"sort"
	"time"

	"sigtransportes/internal/repository"
)

// AreaCount is one bar of the documents-per-area chart.
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"cantidad"`
}

// DateCount is one point of the documents-per-date chart. Date is empty for
// the null bucket holding documents whose stored date did not parse.
type DateCount struct {
	Date  string `json:"fecha"`
	Count int    `json:"cantidad"`
}

// DashboardStats is the aggregated view over all cataloged documents.
type DashboardStats struct {
	Total  int
	ByArea []AreaCount
	ByDate []DateCount
}

// DashboardService aggregates the document catalog for the dashboard view.
type DashboardService interface {
	// Stats groups all documents by area and by parsed creation date.
	// An empty catalog yields Total == 0 and no groups; the view renders a
	// placeholder in that case instead of charts.
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	docs repository.DocumentRepository
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(docs repository.DocumentRepository) DashboardService {
	return &dashboardService{docs: docs}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	docs, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{Total: len(docs)}
	if len(docs) == 0 {
		return stats, nil
	}

	byArea := make(map[string]int)
	byDate := make(map[string]int)
	for _, d := range docs {
		byArea[d.Area]++

		// Unparseable dates fall into the null bucket instead of failing the view.
		date := d.CreatedAt
		if _, err := time.Parse("2006-01-02", date); err != nil {
			date = ""
		}
		byDate[date]++
	}

	for area, n := range byArea {
		stats.ByArea = append(stats.ByArea, AreaCount{Area: area, Count: n})
	}
	sort.Slice(stats.ByArea, func(i, j int) bool {
		return stats.ByArea[i].Area < stats.ByArea[j].Area
	})

	for date, n := range byDate {
		stats.ByDate = append(stats.ByDate, DateCount{Date: date, Count: n})
	}
	// Chronological; the null bucket sorts last.
	sort.Slice(stats.ByDate, func(i, j int) bool {
		a, b := stats.ByDate[i].Date, stats.ByDate[j].Date
		if (a == "") != (b == "") {
			return b == ""
		}
		return a < b
	})

	return stats, nil
}
