package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	"github.com/omarionadde/DHOOL/internal/core/domain"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/core/services"
	"github.com/omarionadde/DHOOL/internal/dto"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	service         portssvc.ProductSvcFacade
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.mockProductRepo = new(MockProductRepository)
	s.service = services.NewProductService(s.mockProductRepo)
}

func (s *ProductServiceTestSuite) TestCreateProduct() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Name:     "Thermometer",
		Price:    decimal.NewFromFloat(12.50),
		Stock:    30,
		Category: "Equipment",
	}

	s.mockProductRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Thermometer" && p.Stock == 30 && p.ProductID != ""
	})).Return(nil).Once()

	product, err := s.service.CreateProduct(ctx, req)

	s.Require().NoError(err)
	assert.True(s.T(), product.Price.Equal(decimal.NewFromFloat(12.50)))
	s.mockProductRepo.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestCreateProduct_NegativePriceRejected() {
	ctx := context.Background()

	_, err := s.service.CreateProduct(ctx, dto.CreateProductRequest{
		Name:     "Broken",
		Price:    decimal.NewFromInt(-1),
		Category: "Misc",
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockProductRepo.AssertNotCalled(s.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestUpdateProduct_PartialUpdate() {
	ctx := context.Background()
	existing := domain.Product{
		ProductID: uuid.NewString(),
		Name:      "Gauze",
		Price:     decimal.NewFromInt(3),
		Stock:     10,
		Category:  "Supplies",
	}
	newStock := 25

	s.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(&existing, nil).Once()
	s.mockProductRepo.On("UpdateProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Stock == 25 && p.Name == "Gauze" && p.Price.Equal(decimal.NewFromInt(3))
	})).Return(nil).Once()

	product, err := s.service.UpdateProduct(ctx, existing.ProductID, dto.UpdateProductRequest{Stock: &newStock})

	s.Require().NoError(err)
	assert.Equal(s.T(), 25, product.Stock)
}

func (s *ProductServiceTestSuite) TestUpdateProduct_NegativeStockRejected() {
	ctx := context.Background()
	existing := domain.Product{ProductID: uuid.NewString(), Name: "Gauze", Stock: 10}
	badStock := -5

	s.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(&existing, nil).Once()

	_, err := s.service.UpdateProduct(ctx, existing.ProductID, dto.UpdateProductRequest{Stock: &badStock})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockProductRepo.AssertNotCalled(s.T(), "UpdateProduct", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestUpdateProduct_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()

	s.mockProductRepo.On("FindProductByID", ctx, id).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.UpdateProduct(ctx, id, dto.UpdateProductRequest{})

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
