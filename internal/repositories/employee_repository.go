package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Stsam98/employee-service/internal/models"
)

// employeeRepository implements employee data access over MySQL
type employeeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *sql.DB, logger *zap.Logger) *employeeRepository {
	return &employeeRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new employee and fills in the assigned ID
func (r *employeeRepository) Create(ctx context.Context, fields *models.EmployeeFields) (*models.Employee, error) {
	query := `
		INSERT INTO employees (name, surname, position, city)
		VALUES (?, ?, ?, ?)
	`

	var city any
	if fields.City != nil {
		city = *fields.City
	}

	result, err := r.db.ExecContext(ctx, query, *fields.Name, *fields.Surname, *fields.Position, city)
	if err != nil {
		r.logger.Error("failed to create employee", zap.Error(err))
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return &models.Employee{
		ID:       int(id),
		Name:     *fields.Name,
		Surname:  *fields.Surname,
		Position: *fields.Position,
		City:     fields.City,
	}, nil
}

// GetByID retrieves an employee by ID
func (r *employeeRepository) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	query := `
		SELECT id, name, surname, position, city
		FROM employees
		WHERE id = ?
	`

	employee := &models.Employee{}
	var city sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Surname,
		&employee.Position,
		&city,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrEmployeeNotFound
	}
	if err != nil {
		r.logger.Error("failed to get employee by id", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get employee by id: %w", err)
	}

	if city.Valid {
		employee.City = &city.String
	}

	return employee, nil
}

// GetAll retrieves all employees in creation order
func (r *employeeRepository) GetAll(ctx context.Context) ([]models.Employee, error) {
	query := `
		SELECT id, name, surname, position, city
		FROM employees
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query employees", zap.Error(err))
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var employee models.Employee
		var city sql.NullString
		if err := rows.Scan(&employee.ID, &employee.Name, &employee.Surname, &employee.Position, &city); err != nil {
			r.logger.Error("failed to scan employee", zap.Error(err))
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		if city.Valid {
			employee.City = &city.String
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return employees, nil
}

// GetByName retrieves the first employee whose name matches exactly
func (r *employeeRepository) GetByName(ctx context.Context, name string) (*models.Employee, error) {
	query := `
		SELECT id, name, surname, position, city
		FROM employees
		WHERE name = ?
		ORDER BY id
		LIMIT 1
	`

	employee := &models.Employee{}
	var city sql.NullString
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Surname,
		&employee.Position,
		&city,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrEmployeeNotFound
	}
	if err != nil {
		r.logger.Error("failed to get employee by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to get employee by name: %w", err)
	}

	if city.Valid {
		employee.City = &city.String
	}

	return employee, nil
}

// Update applies only the provided fields to an existing employee
func (r *employeeRepository) Update(ctx context.Context, id int, fields *models.EmployeeFields) error {
	setClauses := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if fields.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *fields.Name)
	}
	if fields.Surname != nil {
		setClauses = append(setClauses, "surname = ?")
		args = append(args, *fields.Surname)
	}
	if fields.Position != nil {
		setClauses = append(setClauses, "position = ?")
		args = append(args, *fields.Position)
	}
	if fields.CitySet {
		setClauses = append(setClauses, "city = ?")
		if fields.City != nil {
			args = append(args, *fields.City)
		} else {
			args = append(args, nil)
		}
	}

	// An empty update payload is still a valid request; only existence matters
	if len(setClauses) == 0 {
		return r.exists(ctx, id)
	}

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = ?", strings.Join(setClauses, ", "))
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to update employee", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to update employee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	// Zero rows affected can mean "absent" or "values unchanged"
	if affected == 0 {
		return r.exists(ctx, id)
	}

	return nil
}

// Delete removes an employee permanently
func (r *employeeRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM employees WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete employee", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("failed to get rows affected", zap.Error(err))
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		return models.ErrEmployeeNotFound
	}

	return nil
}

// exists reports ErrEmployeeNotFound when no employee has the given ID
func (r *employeeRepository) exists(ctx context.Context, id int) error {
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		r.logger.Error("failed to check employee existence", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to check employee existence: %w", err)
	}

	if !exists {
		return models.ErrEmployeeNotFound
	}

	return nil
}
