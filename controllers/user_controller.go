package controllers

import (
	"net/http"

	"github.com/Malav2364/calorify/models"
	"github.com/Malav2364/calorify/services"
	"github.com/Malav2364/calorify/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	user := currentUser(c)
	respondOK(c, http.StatusOK, profilePayload(user))
}

type ProfileInput struct {
	Name          *string  `json:"name"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	Gender        *string  `json:"gender"`
	ActivityLevel *string  `json:"activityLevel"`
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ctl.users.UpdateProfile(currentUser(c), services.ProfileUpdate{
		Name:          input.Name,
		Height:        input.Height,
		Weight:        input.Weight,
		Gender:        input.Gender,
		ActivityLevel: input.ActivityLevel,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	respondOK(c, http.StatusOK, profilePayload(user))
}

func profilePayload(user *models.User) gin.H {
	payload := gin.H{
		"user":        user,
		"bmiCategory": utils.BMICategory(user.Height, user.Weight),
		"dailyTarget": utils.DailyCalorieTarget(user.Weight, user.Height, user.Gender, user.ActivityLevel),
	}
	if bmi, ok := utils.CalculateBMI(user.Height, user.Weight); ok {
		payload["bmi"] = bmi
	}
	return payload
}
