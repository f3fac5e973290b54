package repositories

import (
	"database/sql"
	"fmt"

	"github.com/xiaojl/musicbox/internal/models"
	"github.com/xiaojl/musicbox/internal/shared"
)

// UserRepository persists [models.User] rows.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the given database connection
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user with a store-assigned id. A duplicate user name
// surfaces as [shared.ErrAlreadyExists].
func (r *UserRepository) Create(user *models.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO users (user_name, password, email, tel, year, month, day)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		user.UserName,
		user.Password,
		nullString(user.Email),
		nullString(user.Tel),
		user.Year,
		user.Month,
		user.Day,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user %q: %w", user.UserName, storeError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted user id: %w", err)
	}
	user.ID = int(id)

	return nil
}

// ByName retrieves a user by exact user name.
func (r *UserRepository) ByName(name string) (*models.User, error) {
	query := `
		SELECT user_id, user_name, password, email, tel, year, month, day
		FROM users
		WHERE user_name = ?
	`

	var (
		user  models.User
		email sql.NullString
		tel   sql.NullString
		year  sql.NullInt64
		month sql.NullInt64
		day   sql.NullInt64
	)

	err := r.db.QueryRow(query, name).Scan(&user.ID, &user.UserName, &user.Password, &email, &tel, &year, &month, &day)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrUserNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	user.Email = email.String
	user.Tel = tel.String
	user.Year = int(year.Int64)
	user.Month = int(month.Int64)
	user.Day = int(day.Int64)

	return &user, nil
}

// Authenticate checks a user name and password pair and returns the user's id.
// An unknown name surfaces as [shared.ErrUserNotFound]; a wrong password as
// [shared.ErrInvalidCredentials].
func (r *UserRepository) Authenticate(name, password string) (int, error) {
	var (
		id     int
		stored string
	)

	err := r.db.QueryRow("SELECT user_id, password FROM users WHERE user_name = ?", name).Scan(&id, &stored)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: %s", shared.ErrUserNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query user: %w", err)
	}

	if stored != password {
		return 0, shared.ErrInvalidCredentials
	}

	return id, nil
}

// UpdateInfo performs a full-row profile update by primary key. The password
// is not part of the profile and stays untouched.
func (r *UserRepository) UpdateInfo(user *models.User) error {
	if user.UserName == "" {
		return fmt.Errorf("validation failed: user name is required")
	}

	query := `
		UPDATE users
		SET user_name = ?, email = ?, tel = ?, year = ?, month = ?, day = ?
		WHERE user_id = ?
	`

	result, err := r.db.Exec(query,
		user.UserName,
		nullString(user.Email),
		nullString(user.Tel),
		user.Year,
		user.Month,
		user.Day,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, storeError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: id %d", shared.ErrUserNotFound, user.ID)
	}

	return nil
}

// Delete removes a user by id. The store cascades the user's favorites away;
// songs and other catalog rows are untouched.
func (r *UserRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM users WHERE user_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: id %d", shared.ErrUserNotFound, id)
	}

	return nil
}
