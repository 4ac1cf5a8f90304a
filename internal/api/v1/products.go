package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/freshcart/freshcart/internal/model"
	"github.com/freshcart/freshcart/internal/service"
)

type ProductHandler struct {
	catalogService *service.CatalogService
}

func NewProductHandler(catalogService *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
}

// List serves the public catalog, optionally filtered by ?category=.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalogService.GetProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch products", gin.H{
			"catalog_error": err.Error(),
		})
		return
	}
	respond(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	created, err := controller(c).AddProduct(c.Request.Context(), model.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to add product", gin.H{
			"catalog_error": err.Error(),
		})
		return
	}
	respond(c, http.StatusCreated, "Product added successfully", created)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var update model.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		validationError(c, err)
		return
	}

	merged, err := controller(c).UpdateProduct(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "Product not found", gin.H{
				"catalog_error": err.Error(),
			})
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update product", gin.H{
			"catalog_error": err.Error(),
		})
		return
	}
	respond(c, http.StatusOK, "Product updated successfully", merged)
}

// Delete removes a product. Deleting an id that is already gone still
// succeeds.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := controller(c).DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete product", gin.H{
			"catalog_error": err.Error(),
		})
		return
	}
	respond(c, http.StatusOK, "Product deleted successfully", gin.H{"id": id})
}

// Upload bulk-imports products from an Excel sheet named "Products" with the
// columns name, category, price, stock, imageUrl, description. Rows that do
// not parse are reported and skipped.
func (h *ProductHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "File upload failed", gin.H{
			"upload_error": "Failed to process uploaded file",
			"details":      err.Error(),
		})
		return
	}

	f, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to open file", gin.H{
			"file_error": err.Error(),
		})
		return
	}
	defer f.Close()

	xlsx, err := excelize.OpenReader(f)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid Excel file", gin.H{
			"file_error": err.Error(),
		})
		return
	}

	rows, err := xlsx.GetRows("Products")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read sheet", gin.H{
			"sheet_error": "Expected a sheet named Products",
			"details":     err.Error(),
		})
		return
	}

	ctrl := controller(c)
	imported := 0
	var rowErrors []string
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 4 {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: expected at least 4 columns", i+1))
			continue
		}

		price, err := strconv.ParseFloat(row[2], 64)
		if err != nil || price < 0 {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: invalid price %q", i+1, row[2]))
			continue
		}
		stock, err := strconv.Atoi(row[3])
		if err != nil || stock < 0 {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: invalid stock %q", i+1, row[3]))
			continue
		}

		product := model.Product{
			Name:     row[0],
			Category: row[1],
			Price:    price,
			Stock:    stock,
		}
		if len(row) > 4 {
			product.ImageURL = row[4]
		}
		if len(row) > 5 {
			product.Description = row[5]
		}

		if _, err := ctrl.AddProduct(c.Request.Context(), product); err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		imported++
	}

	respond(c, http.StatusOK, "Products imported", gin.H{
		"imported":   imported,
		"row_errors": rowErrors,
	})
}
