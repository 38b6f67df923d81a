package services

import (
    "errors"

    "github.com/itstoasti/KetoMate-sub001/config"
    "github.com/itstoasti/KetoMate-sub001/models"
    "github.com/itstoasti/KetoMate-sub001/utils"
)

// RegisterUser creates the user plus the minimal profile row; the profile
// is filled in during onboarding.
func RegisterUser(email, password string) error {
    hashedPassword, err := utils.HashPassword(password)
    if err != nil {
        return err
    }

    user := models.User{Email: email, Password: hashedPassword}
    if err := config.DB.Create(&user).Error; err != nil {
        return err
    }

    _, err = EnsureProfile(user.ID)
    return err
}

func AuthenticateUser(email, password string) (string, *models.User, error) {
    var user models.User
    if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
        return "", nil, errors.New("user not found")
    }

    if !utils.CheckPasswordHash(password, user.Password) {
        return "", nil, errors.New("incorrect password")
    }

    token, err := utils.GenerateJWT(user.ID, user.Email)
    if err != nil {
        return "", nil, err
    }
    return token, &user, nil
}
