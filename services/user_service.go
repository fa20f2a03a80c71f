package services

import (
	"forkful/config"
	"forkful/models"
)

func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := config.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateProfile(id uint, fullName, homeCity string) (*models.User, error) {
	user, err := GetUserByID(id)
	if err != nil {
		return nil, err
	}
	user.FullName = fullName
	user.HomeCity = homeCity
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
