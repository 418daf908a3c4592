package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
	"github.com/MikeMC777/verduleria-ecom/internal/checkout"
	"github.com/MikeMC777/verduleria-ecom/internal/httpx"
	"github.com/MikeMC777/verduleria-ecom/internal/order"
	"github.com/MikeMC777/verduleria-ecom/internal/stats"
)

// @Summary  Place an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body order.PlaceOrderRequest true "order"
// @Success  201 {object} order.Order
// @Failure  400 {object} errorResponse
// @Failure  500 {object} errorResponse
// @Router   /orders [post]
func placeOrderHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.PlaceOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, apperr.Validation("Invalid order data"))
			return
		}
		o, err := svc.PlaceOrder(c.Request.Context(), in)
		if errors.Is(err, checkout.ErrUnknownVegetable) {
			// an unknown line is a bad request, not a missing resource
			httpx.WriteErrorStatus(c, http.StatusBadRequest, err)
			return
		}
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// @Summary  List all orders
// @Tags     orders
// @Produce  json
// @Security ApiKeyAuth
// @Success  200 {array} order.Order
// @Router   /orders [get]
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// @Summary  Get an order
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} order.Order
// @Failure  404 {object} errorResponse
// @Router   /orders/{id} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// @Summary  List a customer's orders
// @Tags     orders
// @Produce  json
// @Param    customerId path string true "customer id"
// @Success  200 {array} order.Order
// @Router   /orders/customer/{customerId} [get]
func listCustomerOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.ListByCustomer(c.Request.Context(), c.Param("customerId"))
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// @Summary  Change an order's status
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security ApiKeyAuth
// @Param    id   path string                    true "order id"
// @Param    body body order.UpdateStatusRequest true "new status"
// @Success  200 {object} order.Order
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /orders/{id}/status [put]
func updateOrderStatusHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Status) == "" {
			httpx.WriteError(c, apperr.Validation("status is required"))
			return
		}
		o, err := repo.UpdateStatus(c.Request.Context(), c.Param("id"), strings.TrimSpace(in.Status))
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// @Summary  Dashboard figures
// @Tags     stats
// @Produce  json
// @Security ApiKeyAuth
// @Success  200 {object} stats.Summary
// @Router   /stats [get]
func statsHandler(svc *stats.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := svc.Summary(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}
