package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// resolver implements Resolver.
type resolver struct {
	assignmentRepo   AssignmentRepository
	roleRepo         RoleRepository
	ancestorResolver AncestorResolver
	domainReader     DomainReader
	projectReader    ProjectReader
	userReader       UserReader
	groupReader      GroupReader
}

// EffectiveRoles computes the roles a principal holds in a scope.
//
// The effective set is the union of direct assignments and assignments on any
// ancestor of the scope, for the principal itself and, when the principal is a
// user, every group it belongs to. Disabled entities fail closed: a disabled
// target scope, a disabled owning domain or a disabled user yields an empty
// set rather than an error, so callers treat the principal as unauthorized
// without learning why.
func (r *resolver) EffectiveRoles(
	ctx context.Context,
	principal principalDomain.PrincipalRef,
	scope scopeDomain.ScopeRef,
) ([]*roleDomain.Role, error) {
	enabled, err := r.scopeEnabled(ctx, scope)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return []*roleDomain.Role{}, nil
	}

	principals, enabled, err := r.expandPrincipal(ctx, principal)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return []*roleDomain.Role{}, nil
	}

	scopes, err := r.ancestorResolver.Ancestors(ctx, scope)
	if err != nil {
		return nil, err
	}

	assignments, err := r.assignmentRepo.ListByPrincipalsAndScopes(ctx, principals, scopes)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return []*roleDomain.Role{}, nil
	}

	roleIDs := distinctRoleIDs(assignments)

	roles, err := r.roleRepo.GetMany(ctx, roleIDs)
	if err != nil {
		return nil, err
	}

	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })

	return roles, nil
}

// scopeEnabled reports whether the target scope and its owning domain are both
// enabled. Returns the scope's NotFound error when the reference does not
// resolve.
func (r *resolver) scopeEnabled(ctx context.Context, scope scopeDomain.ScopeRef) (bool, error) {
	switch scope.Kind {
	case scopeDomain.ScopeKindDomain:
		owningDomain, err := r.domainReader.Get(ctx, scope.ID)
		if err != nil {
			return false, err
		}
		return owningDomain.Enabled, nil
	case scopeDomain.ScopeKindProject:
		project, err := r.projectReader.Get(ctx, scope.ID)
		if err != nil {
			return false, err
		}
		if !project.Enabled {
			return false, nil
		}
		owningDomain, err := r.domainReader.Get(ctx, project.DomainID)
		if err != nil {
			return false, err
		}
		return owningDomain.Enabled, nil
	default:
		return false, scopeDomain.ErrScopeNotFound
	}
}

// expandPrincipal builds the principal set to match assignments against. A
// user expands to itself plus all of its groups; a group stands alone since
// groups don't nest. The boolean reports whether the principal is enabled.
func (r *resolver) expandPrincipal(
	ctx context.Context,
	principal principalDomain.PrincipalRef,
) ([]principalDomain.PrincipalRef, bool, error) {
	switch principal.Kind {
	case principalDomain.PrincipalKindUser:
		user, err := r.userReader.Get(ctx, principal.ID)
		if err != nil {
			return nil, false, err
		}
		if !user.Enabled {
			return nil, false, nil
		}

		groups, err := r.groupReader.ListGroupsForUser(ctx, user.ID)
		if err != nil {
			return nil, false, err
		}

		principals := make([]principalDomain.PrincipalRef, 0, len(groups)+1)
		principals = append(principals, principalDomain.UserRef(user.ID))
		for _, group := range groups {
			principals = append(principals, principalDomain.GroupRef(group.ID))
		}
		return principals, true, nil
	case principalDomain.PrincipalKindGroup:
		group, err := r.groupReader.Get(ctx, principal.ID)
		if err != nil {
			return nil, false, err
		}
		return []principalDomain.PrincipalRef{principalDomain.GroupRef(group.ID)}, true, nil
	default:
		return nil, false, principalDomain.ErrPrincipalNotFound
	}
}

// distinctRoleIDs collects the unique role IDs across the assignments,
// preserving first-seen order.
func distinctRoleIDs(assignments []*roleDomain.Assignment) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(assignments))
	roleIDs := make([]uuid.UUID, 0, len(assignments))
	for _, assignment := range assignments {
		if _, ok := seen[assignment.RoleID]; ok {
			continue
		}
		seen[assignment.RoleID] = struct{}{}
		roleIDs = append(roleIDs, assignment.RoleID)
	}
	return roleIDs
}

// NewResolver creates a new Resolver with the provided dependencies.
func NewResolver(
	assignmentRepo AssignmentRepository,
	roleRepo RoleRepository,
	ancestorResolver AncestorResolver,
	domainReader DomainReader,
	projectReader ProjectReader,
	userReader UserReader,
	groupReader GroupReader,
) Resolver {
	return &resolver{
		assignmentRepo:   assignmentRepo,
		roleRepo:         roleRepo,
		ancestorResolver: ancestorResolver,
		domainReader:     domainReader,
		projectReader:    projectReader,
		userReader:       userReader,
		groupReader:      groupReader,
	}
}
