package services

import (
	"github.com/KirkDiggler/battler-opacity/internal/repositories/records"
	battlerService "github.com/KirkDiggler/battler-opacity/internal/services/battler"
	"github.com/KirkDiggler/battler-opacity/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	RecordRepository records.Repository
	BattlerService   battlerService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	RecordRepository records.Repository
	UUIDGenerator    uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	repo := cfg.RecordRepository
	if repo == nil {
		repo = records.NewInMemory()
	}

	return &Provider{
		RecordRepository: repo,
		BattlerService: battlerService.NewService(&battlerService.ServiceConfig{
			Repository:    repo,
			UUIDGenerator: cfg.UUIDGenerator,
		}),
	}
}
