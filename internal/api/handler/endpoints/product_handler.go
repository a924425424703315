package endpoints

import (
	"errors"
	"genperm"
	"genperm/internal/api/handler/response"
	"genperm/internal/api/models"
	"genperm/internal/api/service"
	"net/http"
	"strconv"

	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type productHandler struct {
	logger         zerolog.Logger
	productService *service.ProductService
}

func newProductHandler() *productHandler {
	return &productHandler{
		logger:         genperm.Logger,
		productService: service.NewProductService(),
	}
}

func ProductHandler(router *graceful.Graceful) {
	h := newProductHandler()

	routes := router.Group("/api/products")
	{
		routes.GET("", h.getAll)
		routes.GET("/search/:name", h.searchByName)
		routes.GET("/category/:categoryId", h.getByCategory)
		routes.GET("/:id", h.getByID)
	}
}

func (slf *productHandler) getAll(c *gin.Context) {
	products, err := slf.productService.FindAll()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to fetch products")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (slf *productHandler) getByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid product id"})
		return
	}

	product, err := slf.productService.FindByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Product not found"})
			return
		}
		slf.logger.Error().Err(err).Int("id", id).Msg("Failed to fetch product")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (slf *productHandler) searchByName(c *gin.Context) {
	products, err := slf.productService.SearchByName(c.Param("name"))
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to search products")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (slf *productHandler) getByCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid category id"})
		return
	}

	products, err := slf.productService.FindByCategory(categoryID)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Failed to fetch category products")
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Server error"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}
