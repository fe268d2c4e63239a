package repo

import (
	"errors"
	"hazel-brief-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepo struct {
	db *gorm.DB
}

type UserRepoInterface interface {
	GetOrCreateByEmail(email string) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	PromoteToDesigner(id uuid.UUID) (*models.User, error)
}

func NewUserRepository(db *gorm.DB) UserRepoInterface {
	return &UserRepo{db: db}
}

// GetOrCreateByEmail looks up a user by email and creates the row with the
// default customer role when the identity provider hands us someone new.
func (r *UserRepo) GetOrCreateByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		UUID:  uuid.New(),
		Email: email,
		Role:  models.UserRoleCustomer,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "uuid = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at ASC").Find(&users).Error
	return users, err
}

// PromoteToDesigner is the only role mutation. It is a plain last-write-wins
// update: two admins promoting the same customer both succeed harmlessly.
// There is no demotion path.
func (r *UserRepo) PromoteToDesigner(id uuid.UUID) (*models.User, error) {
	user, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if user.Role != models.UserRoleCustomer {
		// already designer or admin, nothing to do
		return user, nil
	}

	if err := r.db.Model(user).Update("role", models.UserRoleDesigner).Error; err != nil {
		return nil, err
	}
	user.Role = models.UserRoleDesigner
	return user, nil
}
