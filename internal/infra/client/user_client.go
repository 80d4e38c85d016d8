package client

import (
	"context"
	"fmt"

	"github.com/Suvam-Debnath/EcomTCS/internal/api/dto"
	"github.com/Suvam-Debnath/EcomTCS/internal/constants"
	"github.com/Suvam-Debnath/EcomTCS/internal/registry"
)

type IUserClient interface {
	GetUserDetails(ctx context.Context, userID string) (*dto.UserResponse, LookupState)
}

type UserClient struct {
	baseClient
}

func NewUserClient(resolver registry.Resolver) IUserClient {
	return &UserClient{
		baseClient: newBaseClient(constants.ServiceUser, resolver),
	}
}

func (c *UserClient) GetUserDetails(ctx context.Context, userID string) (*dto.UserResponse, LookupState) {
	var user dto.UserResponse
	state := c.getJSON(ctx, fmt.Sprintf("/api/users/%s", userID), &user)
	if state != LookupFound {
		return nil, state
	}
	return &user, LookupFound
}
