package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	roleDomain "github.com/allisson/identity/internal/role/domain"
)

// roleUseCase implements RoleUseCase.
type roleUseCase struct {
	txManager      database.TxManager
	roleRepo       RoleRepository
	assignmentRepo AssignmentRepository
}

// Create creates a new role. Role names are unique across the deployment.
func (r *roleUseCase) Create(
	ctx context.Context,
	input *roleDomain.CreateRoleInput,
) (*roleDomain.Role, error) {
	if _, err := r.roleRepo.GetByName(ctx, input.Name); err == nil {
		return nil, roleDomain.ErrDuplicateName
	} else if !errors.Is(err, roleDomain.ErrRoleNotFound) {
		return nil, err
	}

	role := &roleDomain.Role{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// Get retrieves a role by ID.
func (r *roleUseCase) Get(ctx context.Context, roleID uuid.UUID) (*roleDomain.Role, error) {
	return r.roleRepo.Get(ctx, roleID)
}

// GetByName retrieves a role by name.
func (r *roleUseCase) GetByName(ctx context.Context, name string) (*roleDomain.Role, error) {
	return r.roleRepo.GetByName(ctx, name)
}

// List retrieves roles with pagination.
func (r *roleUseCase) List(ctx context.Context, offset, limit int) ([]*roleDomain.Role, error) {
	return r.roleRepo.List(ctx, offset, limit)
}

// Update modifies a role. Renaming keeps the global uniqueness invariant.
func (r *roleUseCase) Update(
	ctx context.Context,
	roleID uuid.UUID,
	input *roleDomain.UpdateRoleInput,
) (*roleDomain.Role, error) {
	role, err := r.roleRepo.Get(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if input.Name != role.Name {
		if existing, err := r.roleRepo.GetByName(ctx, input.Name); err == nil && existing.ID != roleID {
			return nil, roleDomain.ErrDuplicateName
		} else if err != nil && !errors.Is(err, roleDomain.ErrRoleNotFound) {
			return nil, err
		}
	}

	role.Name = input.Name
	role.Description = input.Description

	if err := r.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// Delete removes a role along with every assignment of it, in one
// transaction. Tokens already issued keep the role names frozen at issuance,
// so deleting a role never rewrites live tokens.
func (r *roleUseCase) Delete(ctx context.Context, roleID uuid.UUID) error {
	if _, err := r.roleRepo.Get(ctx, roleID); err != nil {
		return err
	}

	return r.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := r.assignmentRepo.DeleteByRole(ctx, roleID); err != nil {
			return err
		}
		return r.roleRepo.Delete(ctx, roleID)
	})
}

// NewRoleUseCase creates a new RoleUseCase with the provided dependencies.
func NewRoleUseCase(
	txManager database.TxManager,
	roleRepo RoleRepository,
	assignmentRepo AssignmentRepository,
) RoleUseCase {
	return &roleUseCase{
		txManager:      txManager,
		roleRepo:       roleRepo,
		assignmentRepo: assignmentRepo,
	}
}
