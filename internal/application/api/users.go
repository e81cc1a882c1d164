package api

import (
	"context"
	"net/url"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
	"github.com/mydailybill/mdb-admin/internal/infrastructure/gateway"
)

// UsersAPI wraps the platform user endpoints.
type UsersAPI struct {
	gw *gateway.Client
}

// List fetches all users.
func (u *UsersAPI) List(ctx context.Context) ([]entity.CompanyUser, error) {
	resp, err := u.gw.Get(ctx, "/users")
	if err := normalize(resp, err, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return decodeList[entity.CompanyUser](resp.Body, "users"), nil
}

// Get fetches one user.
func (u *UsersAPI) Get(ctx context.Context, id string) (*entity.CompanyUser, error) {
	resp, err := u.gw.Get(ctx, "/users/"+url.PathEscape(id))
	if err := normalize(resp, err, "Failed to fetch user"); err != nil {
		return nil, err
	}
	user, err := decodeItem[entity.CompanyUser](resp.Body)
	if err != nil {
		return nil, &Error{Message: "Failed to fetch user"}
	}
	return user, nil
}

// Create adds a user.
func (u *UsersAPI) Create(ctx context.Context, user entity.CompanyUser) (*entity.CompanyUser, error) {
	resp, err := u.gw.Post(ctx, "/users", user)
	if err := normalize(resp, err, "Failed to create user"); err != nil {
		return nil, err
	}
	created, err := decodeItem[entity.CompanyUser](resp.Body)
	if err != nil {
		return nil, &Error{Message: "Failed to create user"}
	}
	return created, nil
}

// Update replaces a user's details.
func (u *UsersAPI) Update(ctx context.Context, id string, user entity.CompanyUser) (*entity.CompanyUser, error) {
	resp, err := u.gw.Put(ctx, "/users/"+url.PathEscape(id), user)
	if err := normalize(resp, err, "Failed to update user"); err != nil {
		return nil, err
	}
	updated, err := decodeItem[entity.CompanyUser](resp.Body)
	if err != nil {
		return nil, &Error{Message: "Failed to update user"}
	}
	return updated, nil
}

// Delete removes a user.
func (u *UsersAPI) Delete(ctx context.Context, id string) error {
	resp, err := u.gw.Delete(ctx, "/users/"+url.PathEscape(id))
	return normalize(resp, err, "Failed to delete user")
}
