package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// MySQLAssignmentRepository implements Assignment persistence for MySQL.
// Uses BINARY(16) for UUIDs; duplicate creates collapse via INSERT IGNORE on
// the unique (principal, scope, role) index.
type MySQLAssignmentRepository struct {
	db *sql.DB
}

// Create inserts an assignment. Creating an existing triple is idempotent.
func (a *MySQLAssignmentRepository) Create(ctx context.Context, assignment *roleDomain.Assignment) error {
	querier := database.GetTx(ctx, a.db)

	query := `INSERT IGNORE INTO role_assignments (id, principal_kind, principal_id, scope_kind, scope_id, role_id, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := assignment.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal assignment id")
	}

	principalID, err := assignment.Principal.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal principal id")
	}

	scopeID, err := assignment.Scope.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal scope id")
	}

	roleID, err := assignment.RoleID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		string(assignment.Principal.Kind),
		principalID,
		string(assignment.Scope.Kind),
		scopeID,
		roleID,
		assignment.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create assignment")
	}
	return nil
}

// Delete removes the assignment matching the (principal, scope, role) triple.
// Returns ErrAssignmentNotFound if no row matched.
func (a *MySQLAssignmentRepository) Delete(
	ctx context.Context,
	principal principalDomain.PrincipalRef,
	scope scopeDomain.ScopeRef,
	roleID uuid.UUID,
) error {
	querier := database.GetTx(ctx, a.db)

	query := `DELETE FROM role_assignments
			  WHERE principal_kind = ? AND principal_id = ?
			    AND scope_kind = ? AND scope_id = ?
				AND role_id = ?`

	principalID, err := principal.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal principal id")
	}

	scopeID, err := scope.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal scope id")
	}

	rID, err := roleID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role id")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		string(principal.Kind),
		principalID,
		string(scope.Kind),
		scopeID,
		rID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete assignment")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return roleDomain.ErrAssignmentNotFound
	}

	return nil
}

// DeleteByScope removes all assignments bound to a scope.
func (a *MySQLAssignmentRepository) DeleteByScope(ctx context.Context, scope scopeDomain.ScopeRef) error {
	querier := database.GetTx(ctx, a.db)

	query := `DELETE FROM role_assignments WHERE scope_kind = ? AND scope_id = ?`

	scopeID, err := scope.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal scope id")
	}

	_, err = querier.ExecContext(ctx, query, string(scope.Kind), scopeID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete assignments by scope")
	}
	return nil
}

// DeleteByPrincipal removes all assignments bound to a principal.
func (a *MySQLAssignmentRepository) DeleteByPrincipal(
	ctx context.Context,
	principal principalDomain.PrincipalRef,
) error {
	querier := database.GetTx(ctx, a.db)

	query := `DELETE FROM role_assignments WHERE principal_kind = ? AND principal_id = ?`

	principalID, err := principal.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal principal id")
	}

	_, err = querier.ExecContext(ctx, query, string(principal.Kind), principalID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete assignments by principal")
	}
	return nil
}

// DeleteByRole removes all assignments of a role.
func (a *MySQLAssignmentRepository) DeleteByRole(ctx context.Context, roleID uuid.UUID) error {
	querier := database.GetTx(ctx, a.db)

	query := `DELETE FROM role_assignments WHERE role_id = ?`

	id, err := roleID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role id")
	}

	_, err = querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete assignments by role")
	}
	return nil
}

// List retrieves assignments matching the filter with offset/limit pagination.
// Nil filter fields match everything.
func (a *MySQLAssignmentRepository) List(
	ctx context.Context,
	filter *roleDomain.AssignmentFilter,
	offset, limit int,
) ([]*roleDomain.Assignment, error) {
	querier := database.GetTx(ctx, a.db)

	var conditions []string
	var args []any

	if filter != nil {
		if filter.Principal != nil {
			principalID, err := filter.Principal.ID.MarshalBinary()
			if err != nil {
				return nil, apperrors.Wrap(err, "failed to marshal principal id")
			}
			conditions = append(conditions, "principal_kind = ? AND principal_id = ?")
			args = append(args, string(filter.Principal.Kind), principalID)
		}
		if filter.Scope != nil {
			scopeID, err := filter.Scope.ID.MarshalBinary()
			if err != nil {
				return nil, apperrors.Wrap(err, "failed to marshal scope id")
			}
			conditions = append(conditions, "scope_kind = ? AND scope_id = ?")
			args = append(args, string(filter.Scope.Kind), scopeID)
		}
		if filter.RoleID != nil {
			roleID, err := filter.RoleID.MarshalBinary()
			if err != nil {
				return nil, apperrors.Wrap(err, "failed to marshal role id")
			}
			conditions = append(conditions, "role_id = ?")
			args = append(args, roleID)
		}
	}

	query := `SELECT id, principal_kind, principal_id, scope_kind, scope_id, role_id, created_at
			  FROM role_assignments`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at ASC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list assignments")
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// ListByPrincipalsAndScopes retrieves every assignment whose principal is in
// the given set and whose scope is in the given set.
func (a *MySQLAssignmentRepository) ListByPrincipalsAndScopes(
	ctx context.Context,
	principals []principalDomain.PrincipalRef,
	scopes []scopeDomain.ScopeRef,
) ([]*roleDomain.Assignment, error) {
	if len(principals) == 0 || len(scopes) == 0 {
		return nil, nil
	}

	querier := database.GetTx(ctx, a.db)

	var args []any

	principalTuples := make([]string, 0, len(principals))
	for _, p := range principals {
		principalID, err := p.ID.MarshalBinary()
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to marshal principal id")
		}
		principalTuples = append(principalTuples, "(?, ?)")
		args = append(args, string(p.Kind), principalID)
	}

	scopeTuples := make([]string, 0, len(scopes))
	for _, s := range scopes {
		scopeID, err := s.ID.MarshalBinary()
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to marshal scope id")
		}
		scopeTuples = append(scopeTuples, "(?, ?)")
		args = append(args, string(s.Kind), scopeID)
	}

	query := `SELECT id, principal_kind, principal_id, scope_kind, scope_id, role_id, created_at
			  FROM role_assignments
			  WHERE (principal_kind, principal_id) IN (` + strings.Join(principalTuples, ", ") + `)
			    AND (scope_kind, scope_id) IN (` + strings.Join(scopeTuples, ", ") + `)`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list assignments by principals and scopes")
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// NewMySQLAssignmentRepository creates a new MySQL Assignment repository.
func NewMySQLAssignmentRepository(db *sql.DB) *MySQLAssignmentRepository {
	return &MySQLAssignmentRepository{db: db}
}
