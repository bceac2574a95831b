package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/Stsam98/employee-service/internal/models"
)

// EmployeeRepository is the interface that wraps methods for Employee table data access
type EmployeeRepository interface {
	// Method Create inserts a new employee and returns the stored record
	// including the assigned ID.
	Create(ctx context.Context, fields *models.EmployeeFields) (*models.Employee, error)
	// Method GetByID retrieves an employee by ID.
	//
	// If no employee has the given ID, models.ErrEmployeeNotFound is returned.
	GetByID(ctx context.Context, id int) (*models.Employee, error)
	// Method GetAll retrieves all employees in creation order.
	GetAll(ctx context.Context) ([]models.Employee, error)
	// Method GetByName retrieves the first employee whose name matches exactly.
	//
	// If no employee matches, models.ErrEmployeeNotFound is returned.
	GetByName(ctx context.Context, name string) (*models.Employee, error)
	// Method Update applies only the provided fields to an existing employee.
	//
	// If no employee has the given ID, models.ErrEmployeeNotFound is returned.
	Update(ctx context.Context, id int, fields *models.EmployeeFields) error
	// Method Delete removes an employee permanently.
	//
	// If no employee has the given ID, models.ErrEmployeeNotFound is returned.
	Delete(ctx context.Context, id int) error
}

// employeeService validates payloads and delegates to the repository
type employeeService struct {
	repo   EmployeeRepository
	logger *zap.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo EmployeeRepository, logger *zap.Logger) *employeeService {
	return &employeeService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates a creation payload and stores the new employee
func (s *employeeService) Create(ctx context.Context, payload map[string]any) (*models.Employee, error) {
	if err := validateCreatePayload(payload); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, extractFields(payload))
}

// GetByID retrieves a single employee
func (s *employeeService) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAll retrieves every employee
func (s *employeeService) GetAll(ctx context.Context) ([]models.Employee, error) {
	return s.repo.GetAll(ctx)
}

// GetByName retrieves the first employee with the exact given name
func (s *employeeService) GetByName(ctx context.Context, name string) (*models.Employee, error) {
	return s.repo.GetByName(ctx, name)
}

// Update validates a partial payload, applies the present fields and returns
// the updated record
func (s *employeeService) Update(ctx context.Context, id int, payload map[string]any) (*models.Employee, error) {
	if err := validateUpdatePayload(payload); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, extractFields(payload)); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes an employee permanently
func (s *employeeService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
