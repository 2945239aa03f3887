package service

import (
	"fmt"

	"maintenance-registry-backend/internal/database/models"
	"maintenance-registry-backend/internal/repository"
)

// DashboardService aggregates the registry-wide statistics shown on the dashboard
type DashboardService struct {
	repo repository.DashboardRepositoryInterface
}

// Ensure DashboardService implements DashboardServiceInterface
var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo repository.DashboardRepositoryInterface) *DashboardService {
	return &DashboardService{repo: repo}
}

// SparePartSplit is the custom versus standard spare part breakdown
type SparePartSplit struct {
	Custom   int64 `json:"custom"`
	Standard int64 `json:"standard"`
}

// DashboardStatsResponse is the aggregate statistics payload of the dashboard
type DashboardStatsResponse struct {
	Counts                 repository.EntityCounts          `json:"counts"`
	WorkshopsByBusyLevel   map[string]int64                 `json:"workshopsByBusyLevel"`
	ComponentsByImportance map[models.ImportanceLevel]int64 `json:"componentsByImportance"`
	SpareParts             SparePartSplit                   `json:"spareParts"`
}

// Stats assembles the dashboard statistics
func (s *DashboardService) Stats() (*DashboardStatsResponse, error) {
	counts, err := s.repo.EntityCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to count entities: %w", err)
	}

	busyCounts, err := s.repo.WorkshopCountsByBusyLevel()
	if err != nil {
		return nil, fmt.Errorf("failed to count workshops by busy level: %w", err)
	}

	importanceCounts, err := s.repo.ComponentCountsByImportance()
	if err != nil {
		return nil, fmt.Errorf("failed to count components by importance: %w", err)
	}

	custom, standard, err := s.repo.SparePartCustomSplit()
	if err != nil {
		return nil, fmt.Errorf("failed to split spare parts: %w", err)
	}

	byBusyLevel := make(map[string]int64, len(busyCounts))
	for level, count := range busyCounts {
		byBusyLevel[level.String()] = count
	}

	return &DashboardStatsResponse{
		Counts:                 *counts,
		WorkshopsByBusyLevel:   byBusyLevel,
		ComponentsByImportance: importanceCounts,
		SpareParts:             SparePartSplit{Custom: custom, Standard: standard},
	}, nil
}
