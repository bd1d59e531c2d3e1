package handler

import (
	"net/http"
	"strconv"

	"kix/internal/delivery/http/response"
	"kix/internal/domain/entity"
	"kix/internal/domain/repository"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type productRequest struct {
	Name            string   `json:"name" validate:"required"`
	Brand           string   `json:"brand" validate:"required"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice   *float64 `json:"originalPrice,omitempty"`
	DiscountPercent *int     `json:"discountPercent,omitempty"`
	OnSale          bool     `json:"onSale"`
	Category        string   `json:"category" validate:"required,oneof=mens womens kids"`
	ImageURL        string   `json:"imageUrl" validate:"required"`
	Images          []string `json:"images,omitempty"`
	Description     string   `json:"description"`
	Features        []string `json:"features,omitempty"`
	Sizes           []float64 `json:"sizes" validate:"required,min=1"`
	IsNewArrival    bool     `json:"isNewArrival"`
	IsTrending      bool     `json:"isTrending"`
}

type productDetailView struct {
	Product *entity.Product       `json:"product"`
	Reviews *entity.ReviewSummary `json:"reviews"`
}

func (req *productRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:            req.Name,
		Brand:           req.Brand,
		Price:           req.Price,
		OriginalPrice:   req.OriginalPrice,
		DiscountPercent: req.DiscountPercent,
		OnSale:          req.OnSale,
		Category:        entity.Category(req.Category),
		ImageURL:        req.ImageURL,
		Images:          req.Images,
		Description:     req.Description,
		Features:        req.Features,
		Sizes:           req.Sizes,
		IsNewArrival:    req.IsNewArrival,
		IsTrending:      req.IsTrending,
	}
}

// ListProducts retrieves products matching the query filters.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := repository.ProductFilter{
		Category: entity.Category(c.QueryParam("category")),
		Brand:    c.QueryParam("brand"),
		Search:   c.QueryParam("search"),
	}
	if v := c.QueryParam("onSale"); v != "" {
		onSale, err := strconv.ParseBool(v)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid onSale filter")
		}
		filter.OnSale = &onSale
	}
	if v := c.QueryParam("newArrival"); v != "" {
		newArrival, err := strconv.ParseBool(v)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid newArrival filter")
		}
		filter.NewArrival = &newArrival
	}
	if v := c.QueryParam("trending"); v != "" {
		trending, err := strconv.ParseBool(v)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid trending filter")
		}
		filter.Trending = &trending
	}

	products, err := h.uc.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct retrieves a single product with its review summary.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, summary, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, productDetailView{
		Product: product,
		Reviews: summary,
	})
}

// CreateProduct adds a new catalog entry. Merchant only.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct replaces a catalog entry's fields. Merchant only.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a catalog entry. Merchant only.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"})
}
