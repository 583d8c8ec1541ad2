package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/gestao-api/internal/domain/entity"
	"github.com/sangkips/gestao-api/internal/domain/enum"
	"github.com/sangkips/gestao-api/internal/domain/repository"
	"github.com/sangkips/gestao-api/pkg/apperror"
	"github.com/sangkips/gestao-api/pkg/money"
	"github.com/sangkips/gestao-api/pkg/pagination"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
	now        Clock
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository, now Clock) *ClientService {
	return &ClientService{clientRepo: clientRepo, now: now}
}

// ClientInput carries the editable client fields. Nil pointers are left
// untouched on update.
type ClientInput struct {
	VendorID      *uuid.UUID
	Name          *string
	Email         *string
	Phone         *string
	Address       *string
	DocumentType  *enum.DocumentType
	Document      *string
	ScheduledDate *time.Time
	IsPremium     *bool
	PlanValue     *money.Cents
	PaymentDue    *time.Time
	PurchasedItem *string
}

// CreateClient creates a new client attributed to the actor's vendor
func (s *ClientService) CreateClient(ctx context.Context, actor Actor, input *ClientInput) (*entity.Client, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, apperror.NewFieldError("name", "Nome é obrigatório", nil)
	}

	client := &entity.Client{}
	if actor.IsAdmin {
		client.VendorID = input.VendorID
	} else {
		client.VendorID = actor.VendorID
	}
	if err := s.apply(ctx, client, input); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil || !canSeeClient(actor, client) {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClientsInput holds the client listing options
type ListClientsInput struct {
	Pagination  *pagination.PaginationParams
	Search      string
	SortBy      string
	SortOrder   string
	PremiumOnly bool
}

// ListClients lists the clients the actor can see
func (s *ClientService) ListClients(ctx context.Context, actor Actor, input *ListClientsInput) (*pagination.PaginatedResult[entity.Client], error) {
	filter := repository.ClientFilter{
		FilterParams: repository.FilterParams{
			Pagination: input.Pagination,
			Search:     input.Search,
			SortBy:     input.SortBy,
			SortOrder:  input.SortOrder,
		},
		VendorScope: actor.Scope(),
		PremiumOnly: input.PremiumOnly,
	}
	params := filter.Page()
	filter.Pagination = params

	clients, total, err := s.clientRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(clients, params, total), nil
}

// UpdateClient updates a client
func (s *ClientService) UpdateClient(ctx context.Context, actor Actor, id uuid.UUID, input *ClientInput) (*entity.Client, error) {
	client, err := s.GetClient(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, apperror.NewFieldError("name", "Nome é obrigatório", nil)
	}
	if actor.IsAdmin && input.VendorID != nil {
		client.VendorID = input.VendorID
	}
	if err := s.apply(ctx, client, input); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.GetClient(ctx, actor, id); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, id)
}

// PremiumDueTomorrow lists premium clients whose plan payment is due on the
// next calendar day in the business time zone
func (s *ClientService) PremiumDueTomorrow(ctx context.Context, actor Actor) ([]entity.Client, error) {
	tomorrow := startOfDay(s.now()).AddDate(0, 0, 1)
	clients, err := s.clientRepo.ListPremiumDueOn(ctx, tomorrow)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin {
		return clients, nil
	}

	visible := make([]entity.Client, 0, len(clients))
	for _, c := range clients {
		if canSeeClient(actor, &c) {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

func (s *ClientService) apply(ctx context.Context, client *entity.Client, input *ClientInput) error {
	if input.Name != nil {
		client.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Address != nil {
		client.Address = input.Address
	}
	if input.ScheduledDate != nil {
		client.ScheduledDate = input.ScheduledDate
	}
	if input.PurchasedItem != nil {
		client.PurchasedItem = input.PurchasedItem
	}

	if input.DocumentType != nil {
		client.DocumentType = *input.DocumentType
	}
	if input.Document != nil {
		digits := money.DigitsOf(*input.Document)
		if digits != "" {
			if err := validateDocument(client.DocumentType, digits); err != nil {
				return err
			}
			existing, err := s.clientRepo.GetByDocument(ctx, digits)
			if err != nil {
				return err
			}
			if existing != nil && existing.ID != client.ID {
				return apperror.NewConflictError("Document already registered")
			}
		}
		client.Document = digits
	}

	if input.IsPremium != nil {
		client.IsPremium = *input.IsPremium
	}
	if input.PlanValue != nil {
		if input.PlanValue.IsNegative() {
			return apperror.NewFieldError("plan_value", "O valor do plano não pode ser negativo", nil)
		}
		client.PlanValue = *input.PlanValue
	}
	if input.PaymentDue != nil {
		client.PaymentDue = input.PaymentDue
	}
	if client.IsPremium && client.PaymentDue == nil {
		return apperror.NewFieldError("payment_due", "Data de vencimento é obrigatória para clientes premium", nil)
	}
	return nil
}

// validateDocument checks the digit count of a CPF (11) or CNPJ (14)
func validateDocument(kind enum.DocumentType, digits string) error {
	switch kind {
	case enum.DocumentTypeCPF:
		if len(digits) != 11 {
			return apperror.NewFieldError("document", "CPF deve ter 11 dígitos", nil)
		}
	case enum.DocumentTypeCNPJ:
		if len(digits) != 14 {
			return apperror.NewFieldError("document", "CNPJ deve ter 14 dígitos", nil)
		}
	default:
		return apperror.NewFieldError("document_type", "Tipo de documento é obrigatório", nil)
	}
	return nil
}

func canSeeClient(actor Actor, client *entity.Client) bool {
	if actor.IsAdmin || client.VendorID == nil {
		return true
	}
	return actor.VendorID != nil && *actor.VendorID == *client.VendorID
}
