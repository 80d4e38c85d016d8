package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Suvam-Debnath/EcomTCS/internal/api"
	"github.com/Suvam-Debnath/EcomTCS/internal/infra/repository/db/model"
	"github.com/Suvam-Debnath/EcomTCS/internal/service"
)

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.FetchAllUsers(r.Context())
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	api.SuccessJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUintParam(r, "id")
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userService.FetchUser(r.Context(), id)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to get user")
		return
	}
	if user == nil {
		api.ErrorJSON(w, http.StatusNotFound, "user not found")
		return
	}
	api.SuccessJSON(w, http.StatusOK, user)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.userService.AddUser(r.Context(), &user)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	api.SuccessJSON(w, http.StatusCreated, saved)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUintParam(r, "id")
	if !ok {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.userService.UpdateUser(r.Context(), id, &user)
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, "failed to update user")
		return
	}
	if !updated {
		api.ErrorJSON(w, http.StatusNotFound, "user not found")
		return
	}
	api.SuccessJSON(w, http.StatusOK, "User updated successfully")
}
