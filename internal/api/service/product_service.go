package service

import (
	"database/sql"
	"errors"
	"fmt"
	"genperm"
	"genperm/internal/api/models"
	"genperm/pkg"

	"github.com/rs/zerolog"
)

var ErrProductNotFound = errors.New("product not found")

const productColumns = `product_id, name, description, price, stock_quantity, category_id, image_url, created_at`

// ProductService serves the read-only catalog browse endpoints. Like the
// chat executor it opens one connection per call.
type ProductService struct {
	logger zerolog.Logger
	dsn    string
}

func NewProductService() *ProductService {
	return &ProductService{
		logger: genperm.Logger,
		dsn:    pkg.ProductsDSN(),
	}
}

func (slf *ProductService) FindAll() ([]models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY created_at DESC`, productColumns)
	return slf.queryProducts(query)
}

func (slf *ProductService) FindByID(id int) (*models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE product_id = ?`, productColumns)
	products, err := slf.queryProducts(query, id)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}
	return &products[0], nil
}

func (slf *ProductService) SearchByName(name string) ([]models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE name LIKE ?`, productColumns)
	return slf.queryProducts(query, "%"+name+"%")
}

func (slf *ProductService) FindByCategory(categoryID int) ([]models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE category_id = ? ORDER BY created_at DESC`, productColumns)
	return slf.queryProducts(query, categoryID)
}

func (slf *ProductService) queryProducts(query string, args ...any) ([]models.Product, error) {
	db, err := sql.Open("mysql", slf.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ProductID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.StockQuantity,
			&p.CategoryID,
			&p.ImageURL,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
