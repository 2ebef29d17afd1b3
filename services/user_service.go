package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/models"
	"github.com/surajjaiswar2003/BlueMedix-Project-SDRMH482736--sub000/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Register(ctx context.Context, firstName, lastName, email, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashed,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, errors.New("invalid email or password")
	}
	token, err := utils.GenerateJWT(user.Email, "user")
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// UserSummary is the listing shape: no password, no audit columns.
type UserSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (s *UserService) List(ctx context.Context) ([]UserSummary, error) {
	var rows []UserSummary
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Select("id, first_name, last_name, email").
		Scan(&rows).Error
	return rows, err
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

func (s *UserService) NewThisMonth(ctx context.Context) (int64, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("created_at >= ?", monthStart).
		Count(&count).Error
	return count, err
}

// ---- dietitians ----

type DietitianService struct {
	db *gorm.DB
}

func NewDietitianService(db *gorm.DB) *DietitianService {
	return &DietitianService{db: db}
}

func (s *DietitianService) Register(ctx context.Context, firstName, lastName, email, password string) (*models.Dietitian, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	d := models.Dietitian{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashed,
	}
	if err := s.db.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DietitianService) Authenticate(ctx context.Context, email, password string) (string, *models.Dietitian, error) {
	var d models.Dietitian
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&d).Error; err != nil {
		return "", nil, errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, d.Password) {
		return "", nil, errors.New("invalid email or password")
	}
	token, err := utils.GenerateJWT(d.Email, "dietitian")
	if err != nil {
		return "", nil, err
	}
	return token, &d, nil
}

func (s *DietitianService) List(ctx context.Context) ([]UserSummary, error) {
	var rows []UserSummary
	err := s.db.WithContext(ctx).
		Model(&models.Dietitian{}).
		Select("id, first_name, last_name, email").
		Scan(&rows).Error
	return rows, err
}

func (s *DietitianService) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Dietitian{}).Count(&count).Error
	return count, err
}
