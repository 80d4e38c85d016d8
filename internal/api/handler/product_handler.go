package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Suvam-Debnath/EcomTCS/internal/api"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db/model"
	"github.com/Suvam-Debnath/EcomTCS/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{productService: productService}
}

func parseUintParam(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.productService.CreateProduct(r.Context(), &product)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to create product")
		return
	}
	api.SuccessJSON(w, http.StatusCreated, saved)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUintParam(r, "id")
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.productService.UpdateProduct(r.Context(), id, &product)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to update product")
		return
	}
	if updated == nil {
		api.ErrorJSON(w, http.StatusNotFound, "product not found")
		return
	}
	api.SuccessJSON(w, http.StatusOK, updated)
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUintParam(r, "id")
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	if product == nil {
		api.ErrorJSON(w, http.StatusNotFound, "product not found")
		return
	}
	api.SuccessJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetAllProducts(r.Context())
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	api.SuccessJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUintParam(r, "id")
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	deleted, err := h.productService.DeleteProduct(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	if !deleted {
		api.ErrorJSON(w, http.StatusNotFound, "product not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	products, err := h.productService.SearchProducts(r.Context(), keyword)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to search products")
		return
	}
	api.SuccessJSON(w, http.StatusOK, products)
}
