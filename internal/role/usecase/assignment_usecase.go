package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// assignmentUseCase implements AssignmentUseCase.
type assignmentUseCase struct {
	assignmentRepo AssignmentRepository
	roleRepo       RoleRepository
	domainReader   DomainReader
	projectReader  ProjectReader
	userReader     UserReader
	groupReader    GroupReader
}

// Create creates an assignment after checking that the role, principal and
// scope all exist. Creating an already existing triple is a no-op.
func (a *assignmentUseCase) Create(ctx context.Context, input *roleDomain.CreateAssignmentInput) error {
	if _, err := a.roleRepo.Get(ctx, input.RoleID); err != nil {
		return err
	}

	if err := a.checkPrincipal(ctx, input.Principal); err != nil {
		return err
	}

	if err := a.checkScope(ctx, input.Scope); err != nil {
		return err
	}

	assignment := &roleDomain.Assignment{
		ID:        uuid.Must(uuid.NewV7()),
		Principal: input.Principal,
		Scope:     input.Scope,
		RoleID:    input.RoleID,
		CreatedAt: time.Now().UTC(),
	}

	return a.assignmentRepo.Create(ctx, assignment)
}

// Delete removes the assignment matching the (principal, scope, role) triple.
func (a *assignmentUseCase) Delete(
	ctx context.Context,
	principal principalDomain.PrincipalRef,
	scope scopeDomain.ScopeRef,
	roleID uuid.UUID,
) error {
	return a.assignmentRepo.Delete(ctx, principal, scope, roleID)
}

// List retrieves assignments matching the filter with pagination.
func (a *assignmentUseCase) List(
	ctx context.Context,
	filter *roleDomain.AssignmentFilter,
	offset, limit int,
) ([]*roleDomain.Assignment, error) {
	return a.assignmentRepo.List(ctx, filter, offset, limit)
}

// checkPrincipal verifies the referenced user or group exists.
func (a *assignmentUseCase) checkPrincipal(ctx context.Context, principal principalDomain.PrincipalRef) error {
	switch principal.Kind {
	case principalDomain.PrincipalKindUser:
		_, err := a.userReader.Get(ctx, principal.ID)
		return err
	case principalDomain.PrincipalKindGroup:
		_, err := a.groupReader.Get(ctx, principal.ID)
		return err
	default:
		return principalDomain.ErrPrincipalNotFound
	}
}

// checkScope verifies the referenced domain or project exists.
func (a *assignmentUseCase) checkScope(ctx context.Context, scope scopeDomain.ScopeRef) error {
	switch scope.Kind {
	case scopeDomain.ScopeKindDomain:
		_, err := a.domainReader.Get(ctx, scope.ID)
		return err
	case scopeDomain.ScopeKindProject:
		_, err := a.projectReader.Get(ctx, scope.ID)
		return err
	default:
		return scopeDomain.ErrScopeNotFound
	}
}

// NewAssignmentUseCase creates a new AssignmentUseCase with the provided
// dependencies.
func NewAssignmentUseCase(
	assignmentRepo AssignmentRepository,
	roleRepo RoleRepository,
	domainReader DomainReader,
	projectReader ProjectReader,
	userReader UserReader,
	groupReader GroupReader,
) AssignmentUseCase {
	return &assignmentUseCase{
		assignmentRepo: assignmentRepo,
		roleRepo:       roleRepo,
		domainReader:   domainReader,
		projectReader:  projectReader,
		userReader:     userReader,
		groupReader:    groupReader,
	}
}
