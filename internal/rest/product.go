package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"glowSkincare/business/catalog"
	"glowSkincare/domain"
	"glowSkincare/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ProductService interface {
	SearchProducts(ctx context.Context, c catalog.Criteria) (catalog.Page, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type ProductLinkRequest struct {
	Store string `json:"store" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

type ProductRequest struct {
	Name         string               `json:"name" validate:"required"`
	Brand        string               `json:"brand" validate:"required"`
	Rating       float64              `json:"rating" validate:"gte=0,lte=5"`
	ReviewsCount int                  `json:"reviews_count" validate:"gte=0"`
	Description  string               `json:"description"`
	SkinTypes    []string             `json:"skin_types" validate:"required,min=1"`
	Goals        []string             `json:"goals" validate:"required,min=1"`
	Links        []ProductLinkRequest `json:"links" validate:"dive"`
}

func (r ProductRequest) toProduct(id string) *domain.Product {
	p := &domain.Product{
		ID:           id,
		Name:         strings.TrimSpace(r.Name),
		Brand:        strings.TrimSpace(r.Brand),
		Rating:       r.Rating,
		ReviewsCount: r.ReviewsCount,
		Description:  r.Description,
	}
	for _, t := range r.SkinTypes {
		p.SkinTypes = append(p.SkinTypes, domain.SkinType(t))
	}
	for _, g := range r.Goals {
		p.Goals = append(p.Goals, domain.Goal(g))
	}
	for _, l := range r.Links {
		p.Links = append(p.Links, domain.ProductLink{Store: l.Store, URL: l.URL})
	}
	return p
}

// criteriaFromQuery reads ?q=&skin_type=&goal=&min_rating= into filter criteria.
func criteriaFromQuery(c echo.Context) (catalog.Criteria, error) {
	criteria := catalog.Criteria{SearchText: c.QueryParam("q")}

	if v := c.QueryParam("skin_type"); v != "" {
		t, err := domain.ParseSkinType(v)
		if err != nil {
			return catalog.Criteria{}, err
		}
		criteria.SkinType = t
	}

	if v := c.QueryParam("goal"); v != "" {
		g, err := domain.ParseGoal(v)
		if err != nil {
			return catalog.Criteria{}, err
		}
		criteria.Goal = g
	}

	if v := c.QueryParam("min_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil || rating < 0 || rating > 5 {
			return catalog.Criteria{}, &domain.ValidationError{Fields: []string{"min_rating"}, Reason: "min_rating must be between 0 and 5"}
		}
		criteria.MinRating = rating
	}

	return criteria, nil
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return respondError(c, "Invalid product filter", err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	page, err := h.productService.SearchProducts(ctx, criteria)
	if err != nil {
		return respondError(c, "Failed to find all products", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(page))
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProduct(ctx, c.Param("id"))
	if err != nil {
		return respondError(c, "Failed to get product", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.CreateProduct(ctx, req.toProduct(""))
	if err != nil {
		return respondError(c, "Failed to create product", err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(product))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.UpdateProduct(ctx, req.toProduct(c.Param("id")))
	if err != nil {
		return respondError(c, "Failed to update product", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, c.Param("id")); err != nil {
		return respondError(c, "Failed to delete product", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Product deleted successfully"))
}
