package client

import (
	"context"
	"fmt"

	"github.com/Suvam-Debnath/EcomTCS/internal/api/dto"
	"github.com/Suvam-Debnath/EcomTCS/internal/constants"
	"github.com/Suvam-Debnath/EcomTCS/internal/registry"
)

type IProductClient interface {
	GetProductDetails(ctx context.Context, productID string) (*dto.ProductResponse, LookupState)
}

type ProductClient struct {
	baseClient
}

func NewProductClient(resolver registry.Resolver) IProductClient {
	return &ProductClient{
		baseClient: newBaseClient(constants.ServiceProduct, resolver),
	}
}

func (c *ProductClient) GetProductDetails(ctx context.Context, productID string) (*dto.ProductResponse, LookupState) {
	var product dto.ProductResponse
	state := c.getJSON(ctx, fmt.Sprintf("/api/products/%s", productID), &product)
	if state != LookupFound {
		return nil, state
	}
	return &product, LookupFound
}
