package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Malav2364/calorify/services"

	"github.com/gin-gonic/gin"
)

type DishController struct {
	dishes *services.DishService
}

func NewDishController(dishes *services.DishService) *DishController {
	return &DishController{dishes: dishes}
}

type DishInput struct {
	Name     string   `json:"name" binding:"required"`
	Calories *float64 `json:"calories" binding:"required"`
}

func (ctl *DishController) Create(c *gin.Context) {
	var input DishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Dish name and calories are required")
		return
	}

	dish, err := ctl.dishes.Add(currentUser(c).ID, input.Name, *input.Calories)
	if err != nil {
		serviceError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"dish": dish})
}

// List returns the user's dishes, optionally filtered to one UTC calendar
// day via ?date=YYYY-MM-DD.
func (ctl *DishController) List(c *gin.Context) {
	user := currentUser(c)

	if raw := c.Query("date"); raw != "" {
		day, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			respondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		dishes, err := ctl.dishes.ListByDay(user.ID, day)
		if err != nil {
			serviceError(c, err)
			return
		}
		respondOK(c, http.StatusOK, gin.H{"dishes": dishes})
		return
	}

	dishes, err := ctl.dishes.List(user.ID)
	if err != nil {
		serviceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"dishes": dishes})
}

func (ctl *DishController) Get(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	dish, err := ctl.dishes.Get(id, currentUser(c).ID)
	if err != nil {
		serviceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"dish": dish})
}

type DishPatchInput struct {
	Name     *string  `json:"name"`
	Calories *float64 `json:"calories"`
}

func (ctl *DishController) Update(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	var input DishPatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	dish, err := ctl.dishes.Update(id, currentUser(c).ID, services.DishPatch{
		Name:     input.Name,
		Calories: input.Calories,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"dish": dish})
}

func (ctl *DishController) Delete(c *gin.Context) {
	id, ok := dishID(c)
	if !ok {
		return
	}

	if err := ctl.dishes.Delete(id, currentUser(c).ID); err != nil {
		serviceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Dish deleted successfully"})
}

func dishID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid dish id")
		return 0, false
	}
	return uint(id), true
}
