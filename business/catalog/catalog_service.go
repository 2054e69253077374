package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"glowSkincare/domain"
	"glowSkincare/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type catalogService struct {
	productRepo ProductRepository
	validate    *validator.Validate
}

func NewCatalogService(productRepo ProductRepository, validate *validator.Validate) *catalogService {
	return &catalogService{
		productRepo: productRepo,
		validate:    validate,
	}
}

// ListProducts returns the catalog in display order.
func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all products", err)
		return nil, err
	}

	return products, nil
}

// SearchProducts applies the catalog filter to the full catalog.
func (s *catalogService) SearchProducts(ctx context.Context, c Criteria) (Page, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return Page{}, err
	}

	return Paginate(products, c), nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	if strings.TrimSpace(id) == "" {
		return domain.Product{}, &domain.ValidationError{Fields: []string{"id"}, Reason: "product id is required"}
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to find product by id", err)
		}
		return domain.Product{}, err
	}

	return product, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := s.validateProduct(product); err != nil {
		logger.Error("invalid product data", err)
		return nil, err
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created", "product_id", product.ID)

	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == "" {
		return nil, &domain.ValidationError{Fields: []string{"id"}, Reason: "product id is required"}
	}

	if err := s.validateProduct(product); err != nil {
		logger.Error("invalid product data", err)
		return nil, err
	}

	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("product not found", err)
		return nil, err
	}
	product.CreatedAt = existing.CreatedAt

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	logger.Info("product updated", "product_id", product.ID)

	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		logger.Error("product not found", err)
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info("product deleted", "product_id", id)

	return nil
}

func (s *catalogService) validateProduct(p *domain.Product) error {
	var fields []string

	if strings.TrimSpace(p.Name) == "" {
		fields = append(fields, "name")
	}
	if strings.TrimSpace(p.Brand) == "" {
		fields = append(fields, "brand")
	}
	if p.Rating < 0 || p.Rating > 5 {
		fields = append(fields, "rating")
	}
	if p.ReviewsCount < 0 {
		fields = append(fields, "reviews_count")
	}
	if len(p.SkinTypes) == 0 {
		fields = append(fields, "skin_types")
	}
	for _, t := range p.SkinTypes {
		if !t.ValidForProduct() {
			fields = append(fields, "skin_types")
			break
		}
	}
	for _, g := range p.Goals {
		if !g.ValidForProduct() {
			fields = append(fields, "goals")
			break
		}
	}
	for _, l := range p.Links {
		if l.Store == "" || s.validate.Var(l.URL, "required,url") != nil {
			fields = append(fields, "links")
			break
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields, Reason: "invalid product"}
	}
	return nil
}
