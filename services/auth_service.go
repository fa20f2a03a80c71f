package services

import (
	"errors"
	"log"
	"time"

	"forkful/config"
	"forkful/models"
	"forkful/utils"
)

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	// Welcome email is best-effort.
	if err := utils.SendWelcomeEmail(email, fullName); err != nil {
		log.Printf("welcome email to %s failed: %v", email, err)
	}
	return nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func StartPasswordReset(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		// Do not leak which emails exist.
		return nil
	}

	token := utils.GenerateRandomToken(16)
	user.ResetToken = token
	user.ResetSentAt = time.Now()
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}

	return utils.SendPasswordResetEmail(email, token)
}

func CompletePasswordReset(email, token, newPassword string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return errors.New("invalid reset request")
	}
	if user.ResetToken == "" || user.ResetToken != token {
		return errors.New("invalid reset token")
	}
	if time.Since(user.ResetSentAt) > time.Hour {
		return errors.New("reset token expired")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	return config.DB.Save(user).Error
}
