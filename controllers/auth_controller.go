package controllers

import (
	"net/http"

	"github.com/Malav2364/calorify/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type RegisterInput struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=8"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	Gender        string   `json:"gender" binding:"required"`
	ActivityLevel string   `json:"activityLevel"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ctl.auth.Register(services.RegisterInput{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Height:        input.Height,
		Weight:        input.Weight,
		Gender:        input.Gender,
		ActivityLevel: input.ActivityLevel,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := ctl.auth.Authenticate(input.Email, input.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	// Browser clients ride on the session cookie; API clients keep the
	// bearer token from the response body.
	c.SetCookie("session_token", token, 72*3600, "/", "", false, true)

	respondOK(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
