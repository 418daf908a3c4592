package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/customer"
	"github.com/MikeMC777/verduleria-ecom/internal/httpx"
)

// @Summary  Register a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    body body customer.RegisterRequest true "customer"
// @Success  201 {object} customer.Customer
// @Failure  400 {object} errorResponse
// @Router   /customers/register [post]
func registerCustomerHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customer.RegisterRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, apperr.Validation("Name, email, and phone are required"))
			return
		}
		cust, err := svc.Register(c.Request.Context(), in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cust)
	}
}

// @Summary  Get a customer
// @Tags     customers
// @Produce  json
// @Param    id path string true "customer id"
// @Success  200 {object} customer.Customer
// @Failure  404 {object} errorResponse
// @Router   /customers/{id} [get]
func getCustomerHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cust, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}

// @Summary  Update a customer profile
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    id   path string                 true "customer id"
// @Param    body body customer.UpdateRequest true "fields to change"
// @Success  200 {object} customer.Customer
// @Failure  404 {object} errorResponse
// @Router   /customers/{id} [put]
func updateCustomerHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customer.UpdateRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, apperr.Validation("invalid body"))
			return
		}
		cust, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, cust)
	}
}
