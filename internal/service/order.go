package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hackathon-backend/internal/domain"
	"hackathon-backend/internal/repository"
)

type orderService struct {
	orderRepo    repository.OrderRepository
	hardwareRepo repository.HardwareRepository
	profileRepo  repository.ProfileRepository
	userRepo     repository.UserRepository
	incidentRepo repository.IncidentRepository
	inventorySvc InventoryService
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	hardwareRepo repository.HardwareRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	incidentRepo repository.IncidentRepository,
	inventorySvc InventoryService,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		hardwareRepo: hardwareRepo,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		incidentRepo: incidentRepo,
		inventorySvc: inventorySvc,
	}
}

func (s *orderService) teamOf(ctx context.Context, userID int32) (int32, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.Forbidden("you do not have an attendee profile")
	}
	if err != nil {
		return 0, err
	}
	return profile.TeamID, nil
}

func (s *orderService) requireStaff(ctx context.Context, userID int32) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Role.CanReview() {
		return domain.Forbidden("staff access required")
	}
	return nil
}

func (s *orderService) CreateCart(ctx context.Context, userID int32, hardwareIDs []int32) (*domain.Order, error) {
	if len(hardwareIDs) == 0 {
		return nil, domain.Validation("a cart needs at least one item")
	}
	teamID, err := s.teamOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{TeamID: teamID, Status: domain.OrderStatusCart}
	for _, hwID := range hardwareIDs {
		if _, err := s.hardwareRepo.GetByID(ctx, hwID); errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFound(fmt.Sprintf("hardware %d not found", hwID))
		} else if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, domain.OrderItem{HardwareID: hwID})
	}
	if err := s.orderRepo.CreateWithItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) SubmitCart(ctx context.Context, userID, orderID int32) (*domain.Order, error) {
	teamID, err := s.teamOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	order, err := s.getTeamOrder(ctx, teamID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusCart {
		return nil, domain.Conflict("order has already been submitted")
	}

	// Per-hardware caps: requested plus already-outstanding must stay within
	// both the team cap and remaining stock.
	requested := map[int32]int32{}
	for _, it := range order.Items {
		requested[it.HardwareID]++
	}
	for hwID, qty := range requested {
		hw, err := s.hardwareRepo.GetByID(ctx, hwID)
		if err != nil {
			return nil, err
		}
		outstanding, err := s.orderRepo.CountOutstandingItemsForTeam(ctx, teamID, hwID)
		if err != nil {
			return nil, err
		}
		if hw.MaxPerTeam > 0 && outstanding+qty > hw.MaxPerTeam {
			return nil, domain.Conflict(fmt.Sprintf("your team may hold at most %d of %s", hw.MaxPerTeam, hw.Name))
		}
		remaining, err := s.inventorySvc.QuantityRemaining(ctx, hwID)
		if err != nil {
			return nil, err
		}
		if qty > remaining {
			return nil, domain.Conflict(fmt.Sprintf("not enough %s in stock", hw.Name))
		}
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusPending); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *orderService) getTeamOrder(ctx context.Context, teamID, orderID int32) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}
	if order.TeamID != teamID {
		return nil, domain.NotFound("order not found")
	}
	return order, nil
}

func (s *orderService) ListTeamOrders(ctx context.Context, userID int32) ([]domain.Order, error) {
	teamID, err := s.teamOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.ListByTeam(ctx, teamID)
}

var staffStatuses = map[domain.OrderStatus]bool{
	domain.OrderStatusReady:    true,
	domain.OrderStatusPickedUp: true,
	domain.OrderStatusLost:     true,
}

func (s *orderService) UpdateStatus(ctx context.Context, actorID, orderID int32, status domain.OrderStatus) (*domain.Order, error) {
	if err := s.requireStaff(ctx, actorID); err != nil {
		return nil, err
	}
	if !staffStatuses[status] {
		return nil, domain.Validation(fmt.Sprintf("cannot set order status to %s", status))
	}
	if _, err := s.orderRepo.GetByID(ctx, orderID); errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("order not found")
	} else if err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *orderService) ReturnItem(ctx context.Context, actorID, itemID int32, health domain.ReturnHealth) (*domain.Order, error) {
	if err := s.requireStaff(ctx, actorID); err != nil {
		return nil, err
	}
	item, err := s.orderRepo.GetItem(ctx, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("order item not found")
	}
	if err != nil {
		return nil, err
	}
	if item.PartReturnedHealth != nil {
		return nil, domain.Conflict("item has already been returned")
	}

	if err := s.orderRepo.MarkItemReturned(ctx, itemID, health, time.Now()); err != nil {
		return nil, err
	}

	// The order flips to RETURNED once its last outstanding item comes back.
	unreturned, err := s.orderRepo.CountUnreturnedItems(ctx, item.OrderID)
	if err != nil {
		return nil, err
	}
	if unreturned == 0 {
		if err := s.orderRepo.UpdateStatus(ctx, item.OrderID, domain.OrderStatusReturned); err != nil {
			return nil, err
		}
	}
	return s.orderRepo.GetByID(ctx, item.OrderID)
}

func (s *orderService) CancelOrder(ctx context.Context, userID, orderID int32) (*domain.Order, error) {
	teamID, err := s.teamOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	order, err := s.getTeamOrder(ctx, teamID, orderID)
	if err != nil {
		return nil, err
	}
	switch order.Status {
	case domain.OrderStatusCart, domain.OrderStatusPending, domain.OrderStatusReady:
	default:
		return nil, domain.Conflict("order can no longer be cancelled")
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusCancelled); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *orderService) HasActiveOrders(ctx context.Context, teamID int32) (bool, error) {
	return s.orderRepo.HasActiveOrders(ctx, teamID)
}

func (s *orderService) CreateIncident(ctx context.Context, actorID int32, incident *domain.Incident) error {
	if err := s.requireStaff(ctx, actorID); err != nil {
		return err
	}
	if err := validIncidentState(incident.State); err != nil {
		return err
	}
	if incident.Description == "" {
		return domain.Validation("incident description is required")
	}
	if _, err := s.orderRepo.GetItem(ctx, incident.OrderItemID); errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("order item not found")
	} else if err != nil {
		return err
	}
	return s.incidentRepo.Create(ctx, incident)
}

func validIncidentState(state domain.IncidentState) error {
	switch state {
	case domain.IncidentStateDamaged, domain.IncidentStateLost, domain.IncidentStateOther:
		return nil
	}
	return domain.Validation("unknown incident state")
}

func (s *orderService) ListIncidents(ctx context.Context, actorID int32) ([]domain.Incident, error) {
	if err := s.requireStaff(ctx, actorID); err != nil {
		return nil, err
	}
	return s.incidentRepo.List(ctx)
}
