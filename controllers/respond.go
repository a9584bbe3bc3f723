package controllers

import (
	"errors"
	"net/http"

	"github.com/Malav2364/calorify/models"
	"github.com/Malav2364/calorify/services"

	"github.com/gin-gonic/gin"
)

func respondOK(c *gin.Context, status int, payload gin.H) {
	payload["success"] = true
	c.JSON(status, payload)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// serviceError maps service sentinel errors onto HTTP statuses. Anything
// unrecognized is a storage failure and surfaces as a generic 500.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		respondError(c, http.StatusConflict, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "something went wrong")
	}
}

// currentUser returns the user resolved by the auth middleware.
func currentUser(c *gin.Context) *models.User {
	v, _ := c.Get("user")
	user, _ := v.(*models.User)
	return user
}
