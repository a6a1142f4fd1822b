package service

import (
	"context"
	"database/sql"
	"errors"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository"
)

type inventoryService struct {
	hardwareRepo repository.HardwareRepository
}

func NewInventoryService(hardwareRepo repository.HardwareRepository) InventoryService {
	return &inventoryService{hardwareRepo: hardwareRepo}
}

func (s *inventoryService) ListHardware(ctx context.Context) ([]domain.Hardware, error) {
	items, err := s.hardwareRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		remaining, err := s.remaining(ctx, &items[i])
		if err != nil {
			return nil, err
		}
		items[i].QuantityRemaining = remaining
	}
	return items, nil
}

func (s *inventoryService) GetHardware(ctx context.Context, id int32) (*domain.Hardware, error) {
	hw, err := s.hardwareRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("hardware not found")
	}
	if err != nil {
		return nil, err
	}
	remaining, err := s.remaining(ctx, hw)
	if err != nil {
		return nil, err
	}
	hw.QuantityRemaining = remaining
	return hw, nil
}

func (s *inventoryService) QuantityRemaining(ctx context.Context, hardwareID int32) (int32, error) {
	hw, err := s.GetHardware(ctx, hardwareID)
	if err != nil {
		return 0, err
	}
	return hw.QuantityRemaining, nil
}

// remaining subtracts outstanding loans from owned stock. Cart and cancelled
// orders never count, nor do items already returned with a recorded health.
func (s *inventoryService) remaining(ctx context.Context, hw *domain.Hardware) (int32, error) {
	outstanding, err := s.hardwareRepo.CountOutstandingItems(ctx, hw.ID)
	if err != nil {
		return 0, err
	}
	return hw.QuantityAvailable - outstanding, nil
}
