package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/verduleria-ecom/docs"
	"github.com/MikeMC777/verduleria-ecom/internal/checkout"
	"github.com/MikeMC777/verduleria-ecom/internal/customer"
	"github.com/MikeMC777/verduleria-ecom/internal/httpx"
	"github.com/MikeMC777/verduleria-ecom/internal/order"
	"github.com/MikeMC777/verduleria-ecom/internal/stats"
)

type errorResponse struct {
	Error string `json:"error" example:"Vegetable not found"`
}

type messageResponse struct {
	Message string `json:"message" example:"Vegetable deleted successfully"`
}

type routerOptions struct {
	AdminKeyHash string
	CORSOrigins  []string
	PublicDir    string
}

func newRouter(st *stores, pub order.Publisher, opts routerOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	admin := httpx.AdminKey(opts.AdminKeyHash)
	customers := customer.NewService(st.customers)
	placement := checkout.NewService(st.ledger, pub)
	summary := stats.NewService(st.vegetables, st.customers, st.orders)

	api := r.Group("/api")
	{
		api.GET("/vegetables", listVegetablesHandler(st.vegetables))
		api.GET("/vegetables/:id", getVegetableHandler(st.vegetables))
		api.POST("/vegetables", admin, createVegetableHandler(st.vegetables))
		api.PUT("/vegetables/:id", admin, updateVegetableHandler(st.vegetables))
		api.DELETE("/vegetables/:id", admin, deleteVegetableHandler(st.vegetables))

		api.POST("/customers/register", registerCustomerHandler(customers))
		api.GET("/customers/:id", getCustomerHandler(customers))
		api.PUT("/customers/:id", updateCustomerHandler(customers))

		api.POST("/orders", placeOrderHandler(placement))
		api.GET("/orders", admin, listOrdersHandler(st.orders))
		api.GET("/orders/:id", getOrderHandler(st.orders))
		api.GET("/orders/customer/:customerId", listCustomerOrdersHandler(st.orders))
		api.PUT("/orders/:id/status", admin, updateOrderStatusHandler(st.orders))

		api.GET("/stats", admin, statsHandler(summary))
	}

	r.NoRoute(staticHandler(opts.PublicDir))
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID", httpx.HeaderAPIKey},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// staticHandler serves the storefront's files for anything outside /api.
// Without a directory every unknown path is a JSON 404.
func staticHandler(dir string) gin.HandlerFunc {
	var files http.Handler
	if dir != "" {
		files = http.FileServer(http.Dir(dir))
	}
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if files == nil || strings.HasPrefix(path, "/api/") || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, errorResponse{Error: "route not found"})
			return
		}
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(path))); err != nil {
			c.Request.URL.Path = "/"
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
