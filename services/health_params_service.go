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

type HealthParamsService struct {
	db *gorm.DB
}

func NewHealthParamsService(db *gorm.DB) *HealthParamsService {
	return &HealthParamsService{db: db}
}

type HealthParamsInput struct {
	Diabetes           string  `json:"diabetes"`
	Hypertension       string  `json:"hypertension"`
	Cardiovascular     string  `json:"cardiovascular"`
	DigestiveDisorders string  `json:"digestiveDisorders"`
	FoodAllergies      string  `json:"foodAllergies"`
	Height             float64 `json:"height"`
	Weight             float64 `json:"weight"`
	TargetWeight       float64 `json:"targetWeight"`
	DietType           string  `json:"dietType"`
	ActivityLevel      string  `json:"activityLevel"`
}

var (
	diabetesValues  = map[string]bool{"": true, "None": true, "Type 1": true, "Type 2": true}
	yesNoValues     = map[string]bool{"": true, "Yes": true, "No": true}
	cardioValues    = map[string]bool{"": true, "Present": true, "Absent": true}
	digestiveValues = map[string]bool{"": true, "None": true, "IBS": true, "Celiac": true}
	allergyValues   = map[string]bool{"": true, "None": true, "Dairy": true, "Nuts": true, "Shellfish": true}
)

func validateHealthParams(in *HealthParamsInput) error {
	fields := map[string]string{}
	if !diabetesValues[in.Diabetes] {
		fields["diabetes"] = "must be one of None, Type 1, Type 2"
	}
	if !yesNoValues[in.Hypertension] {
		fields["hypertension"] = "must be Yes or No"
	}
	if !cardioValues[in.Cardiovascular] {
		fields["cardiovascular"] = "must be Present or Absent"
	}
	if !digestiveValues[in.DigestiveDisorders] {
		fields["digestiveDisorders"] = "must be one of None, IBS, Celiac"
	}
	if !allergyValues[in.FoodAllergies] {
		fields["foodAllergies"] = "must be one of None, Dairy, Nuts, Shellfish"
	}
	if in.Height < 0 || in.Weight < 0 || in.TargetWeight < 0 {
		fields["height"] = "body metrics must be non-negative"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *HealthParamsService) Get(ctx context.Context, userID uint) (*models.HealthParameters, error) {
	var hp models.HealthParameters
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&hp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("health parameters: %w", ErrNotFound)
		}
		return nil, err
	}
	return &hp, nil
}

// Upsert creates or overwrites the user's parameter set. BMI category is
// derived from height/weight when both are present, never taken from input.
func (s *HealthParamsService) Upsert(ctx context.Context, userID uint, in HealthParamsInput) (*models.HealthParameters, error) {
	if err := validateHealthParams(&in); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, err
	}

	hp := models.HealthParameters{
		UserID:             userID,
		Diabetes:           in.Diabetes,
		Hypertension:       in.Hypertension,
		Cardiovascular:     in.Cardiovascular,
		DigestiveDisorders: in.DigestiveDisorders,
		FoodAllergies:      in.FoodAllergies,
		Height:             in.Height,
		Weight:             in.Weight,
		TargetWeight:       in.TargetWeight,
		DietType:           in.DietType,
		ActivityLevel:      in.ActivityLevel,
		LastUpdated:        time.Now().UTC(),
	}
	if in.Height > 0 && in.Weight > 0 {
		if bmi, err := utils.CalculateBMI(in.Height, in.Weight); err == nil {
			hp.BMICategory = utils.BMICategory(bmi)
		}
	}

	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Assign(hp).
		FirstOrCreate(&hp).Error
	if err != nil {
		return nil, err
	}
	return &hp, nil
}

func (s *HealthParamsService) Delete(ctx context.Context, userID uint) error {
	// hard delete, the user_id unique index must be free for a later re-create
	res := s.db.WithContext(ctx).Unscoped().Where("user_id = ?", userID).Delete(&models.HealthParameters{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("health parameters: %w", ErrNotFound)
	}
	return nil
}
