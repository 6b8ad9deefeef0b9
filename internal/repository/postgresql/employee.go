package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/retouchhive/office-backend/internal/domain/employee"
	"github.com/retouchhive/office-backend/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, employee_code, email, full_name, designation, phone, address,
	photo_url, joining_date, status, salary_pin_hash, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID,
		&emp.EmployeeCode,
		&emp.Email,
		&emp.FullName,
		&emp.Designation,
		&emp.Phone,
		&emp.Address,
		&emp.PhotoURL,
		&emp.JoiningDate,
		&emp.Status,
		&emp.SalaryPinHash,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO employees (employee_code, email, full_name, designation, phone, address, photo_url, joining_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, insertQuery,
		emp.EmployeeCode,
		emp.Email,
		emp.FullName,
		emp.Designation,
		emp.Phone,
		emp.Address,
		emp.PhotoURL,
		emp.JoiningDate,
		string(emp.Status),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByEmail implements employee.Repository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, selectQuery, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context, status *employee.Status) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `SELECT ` + employeeColumns + ` FROM employees`
	args := []any{}
	if status != nil {
		selectQuery += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	selectQuery += ` ORDER BY full_name`

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, int64(len(employees)), nil
}

// ListEmails implements employee.Repository.
func (r *employeeRepositoryImpl) ListEmails(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT email FROM employees WHERE status != $1`, string(employee.StatusDeactivate))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

// UpdateProfile implements employee.Repository.
func (r *employeeRepositoryImpl) UpdateProfile(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE employees
		SET full_name = $1, designation = $2, phone = $3, address = $4,
			photo_url = $5, joining_date = $6, updated_at = NOW()
		WHERE email = $7
	`

	tag, err := q.Exec(ctx, updateQuery,
		emp.FullName,
		emp.Designation,
		emp.Phone,
		emp.Address,
		emp.PhotoURL,
		emp.JoiningDate,
		emp.Email,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetStatus implements employee.Repository.
func (r *employeeRepositoryImpl) SetStatus(ctx context.Context, email string, status employee.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET status = $1, updated_at = NOW() WHERE email = $2`,
		string(status), email,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetSalaryPinHash implements employee.Repository.
func (r *employeeRepositoryImpl) SetSalaryPinHash(ctx context.Context, email string, pinHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET salary_pin_hash = $1, updated_at = NOW() WHERE email = $2`,
		pinHash, email,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
