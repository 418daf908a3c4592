package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/httpx"
	"github.com/MikeMC777/verduleria-ecom/internal/vegetable"
)

// @Summary  List the catalog
// @Tags     vegetables
// @Produce  json
// @Success  200 {array} vegetable.Vegetable
// @Router   /vegetables [get]
func listVegetablesHandler(repo vegetable.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// @Summary  Get a vegetable
// @Tags     vegetables
// @Produce  json
// @Param    id path string true "vegetable id"
// @Success  200 {object} vegetable.Vegetable
// @Failure  404 {object} errorResponse
// @Router   /vegetables/{id} [get]
func getVegetableHandler(repo vegetable.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// @Summary  Create a vegetable
// @Tags     vegetables
// @Accept   json
// @Produce  json
// @Security ApiKeyAuth
// @Param    body body vegetable.CreateRequest true "vegetable"
// @Success  201 {object} vegetable.Vegetable
// @Failure  400 {object} errorResponse
// @Router   /vegetables [post]
func createVegetableHandler(repo vegetable.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in vegetable.CreateRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, apperr.Validation("invalid body"))
			return
		}
		if err := in.Validate(); err != nil {
			httpx.WriteError(c, err)
			return
		}
		v := in.Vegetable(vegetable.NewID())
		if err := repo.Create(c.Request.Context(), &v); err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusCreated, v)
	}
}

// @Summary  Merge-update a vegetable
// @Tags     vegetables
// @Accept   json
// @Produce  json
// @Security ApiKeyAuth
// @Param    id   path string                  true "vegetable id"
// @Param    body body vegetable.UpdateRequest true "fields to change"
// @Success  200 {object} vegetable.Vegetable
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /vegetables/{id} [put]
func updateVegetableHandler(repo vegetable.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in vegetable.UpdateRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, apperr.Validation("invalid body"))
			return
		}
		if err := in.Validate(); err != nil {
			httpx.WriteError(c, err)
			return
		}
		v, err := repo.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// @Summary  Delete a vegetable
// @Tags     vegetables
// @Produce  json
// @Security ApiKeyAuth
// @Param    id path string true "vegetable id"
// @Success  200 {object} messageResponse
// @Failure  404 {object} errorResponse
// @Router   /vegetables/{id} [delete]
func deleteVegetableHandler(repo vegetable.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if !ok {
			httpx.WriteError(c, vegetable.ErrNotFound)
			return
		}
		c.JSON(http.StatusOK, messageResponse{Message: "Vegetable deleted successfully"})
	}
}
