package services

import (
    "errors"
    "fmt"

    "gorm.io/gorm"

    "github.com/itstoasti/KetoMate-sub001/config"
    "github.com/itstoasti/KetoMate-sub001/models"
    "github.com/itstoasti/KetoMate-sub001/utils"
)

func GetProfile(userID uint) (*models.UserProfile, error) {
    var profile models.UserProfile
    err := config.DB.Where("user_id = ?", userID).First(&profile).Error
    if err != nil {
        return nil, err
    }
    return &profile, nil
}

// profileOrDefault filters a profile read for callers that compute against
// default limits when the user has no profile yet. Only the missing-row
// case maps to a nil profile; genuine store errors propagate.
func profileOrDefault(p *models.UserProfile, err error) (*models.UserProfile, error) {
    if err == nil {
        return p, nil
    }
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, nil
    }
    return nil, err
}

// EnsureProfile creates the minimal profile row on first authentication;
// defaults fill in via the column defaults and onboarding.
func EnsureProfile(userID uint) (*models.UserProfile, error) {
    profile := models.UserProfile{UserID: userID}
    err := config.DB.
        Where("user_id = ?", userID).
        FirstOrCreate(&profile).Error
    if err != nil {
        return nil, err
    }
    return &profile, nil
}

// UpdateProfile applies a partial update. Weight and height arriving in a
// display unit are converted to kg/cm here, before the payload is built, so
// the canonical columns never hold a display-unit figure. Omitted fields
// are left untouched server-side.
func UpdateProfile(userID uint, upd models.ProfileUpdate) (*models.UserProfile, error) {
    if upd.Goal != nil && !models.ValidGoal(*upd.Goal) {
        return nil, fmt.Errorf("invalid goal %q", *upd.Goal)
    }
    if upd.ActivityLevel != nil && !models.ValidActivityLevel(*upd.ActivityLevel) {
        return nil, fmt.Errorf("invalid activity level %q", *upd.ActivityLevel)
    }

    current, err := GetProfile(userID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            if current, err = EnsureProfile(userID); err != nil {
                return nil, err
            }
        } else {
            return nil, err
        }
    }

    normalizeProfileUnits(&upd, current)

    payload := upd.Payload()
    if len(payload) == 0 {
        return current, nil
    }

    if err := config.DB.
        Model(&models.UserProfile{}).
        Where("user_id = ?", userID).
        Updates(payload).Error; err != nil {
        return nil, err
    }
    return GetProfile(userID)
}

// normalizeProfileUnits rewrites incoming weight/height values to canonical
// units. The unit on the update wins over the stored preference, since the
// client sends the value in whatever unit it is currently displaying.
func normalizeProfileUnits(upd *models.ProfileUpdate, current *models.UserProfile) {
    if upd.Weight != nil {
        unit := current.WeightUnit
        if upd.WeightUnit != nil {
            unit = *upd.WeightUnit
        }
        if unit == models.WeightUnitLbs {
            kg := utils.LbToKg(*upd.Weight)
            upd.Weight = &kg
        }
    }
    if upd.Height != nil {
        unit := current.HeightUnit
        if upd.HeightUnit != nil {
            unit = *upd.HeightUnit
        }
        if unit == models.HeightUnitFtIn {
            cm := utils.InchesToCm(*upd.Height)
            upd.Height = &cm
        }
    }
}

type OnboardingInput struct {
    Name                 string  `json:"name"`
    Weight               float64 `json:"weight" binding:"required"`
    Height               float64 `json:"height" binding:"required"`
    WeightUnit           string  `json:"weightUnit"`
    HeightUnit           string  `json:"heightUnit"`
    Goal                 string  `json:"goal"`
    ActivityLevel        string  `json:"activityLevel"`
    ProfilePictureBase64 string  `json:"profilePicture"`
}

// CompleteOnboarding normalizes the measurements, derives the default keto
// macro budget from them, and flips the user's onboarded flag.
func CompleteOnboarding(userID uint, input OnboardingInput) (*models.UserProfile, error) {
    profile, err := EnsureProfile(userID)
    if err != nil {
        return nil, err
    }

    weightKg := input.Weight
    if input.WeightUnit == models.WeightUnitLbs {
        weightKg = utils.LbToKg(input.Weight)
    } else {
        input.WeightUnit = models.WeightUnitKg
    }
    heightCm := input.Height
    if input.HeightUnit == models.HeightUnitFtIn {
        heightCm = utils.InchesToCm(input.Height)
    } else {
        input.HeightUnit = models.HeightUnitCm
    }

    goal := input.Goal
    if !models.ValidGoal(goal) {
        goal = models.GoalWeightLoss
    }
    activity := input.ActivityLevel
    if !models.ValidActivityLevel(activity) {
        activity = models.ActivitySedentary
    }

    calories, err := utils.EstimateCalorieTarget(heightCm, weightKg, activity, goal)
    if err != nil {
        return nil, err
    }
    targets := utils.DefaultMacroTargets(calories)

    profile.Name = input.Name
    profile.Weight = weightKg
    profile.Height = heightCm
    profile.WeightUnit = input.WeightUnit
    profile.HeightUnit = input.HeightUnit
    profile.Goal = goal
    profile.ActivityLevel = activity
    profile.DailyCarbsLimit = targets.Carbs
    profile.DailyProteinLimit = targets.Protein
    profile.DailyFatLimit = targets.Fat
    profile.DailyCalorieLimit = targets.Calories

    if err := config.DB.Save(profile).Error; err != nil {
        return nil, err
    }

    if input.ProfilePictureBase64 != "" {
        if _, err := utils.UploadBase64ImageToS3(input.ProfilePictureBase64, "profile-pictures/user"); err != nil {
            return nil, fmt.Errorf("failed to upload profile picture: %w", err)
        }
    }

    if err := config.DB.
        Model(&models.User{}).
        Where("id = ?", userID).
        Update("onboarded", true).Error; err != nil {
        return nil, err
    }
    return profile, nil
}
