package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/allisson/identity/internal/database"
	apperrors "github.com/allisson/identity/internal/errors"
	principalDomain "github.com/allisson/identity/internal/principal/domain"
	roleDomain "github.com/allisson/identity/internal/role/domain"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// PostgreSQLAssignmentRepository implements Assignment persistence for
// PostgreSQL. The (principal, scope, role) triple carries a unique index so
// duplicate creates collapse to a no-op.
type PostgreSQLAssignmentRepository struct {
	db *sql.DB
}

// Create inserts an assignment. Creating an existing triple is idempotent.
func (a *PostgreSQLAssignmentRepository) Create(ctx context.Context, assignment *roleDomain.Assignment) error {
	querier := database.GetTx(ctx, a.db)

	query := `INSERT INTO role_assignments (id, principal_kind, principal_id, scope_kind, scope_id, role_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (principal_kind, principal_id, scope_kind, scope_id, role_id) DO NOTHING`

	_, err := querier.ExecContext(
		ctx,
		query,
		assignment.ID,
		string(assignment.Principal.Kind),
		assignment.Principal.ID,
		string(assignment.Scope.Kind),
		assignment.Scope.ID,
		assignment.RoleID,
		assignment.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create assignment")
	}
	return nil
}

// Delete removes the assignment matching the (principal, scope, role) triple.
// Returns ErrAssignmentNotFound if no row matched.
func (a *PostgreSQLAssignmentRepository) Delete(
	ctx context.Context,
	principal principalDomain.PrincipalRef,
	scope scopeDomain.ScopeRef,
	roleID uuid.UUID,
) error {
	querier := database.GetTx(ctx, a.db)

	query := `DELETE FROM role_assignments
			  WHERE principal_kind = $1 AND principal_id = $2
			    AND scope_kind = $3 AND scope_id = $4
				AND role_id = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		string(principal.Kind),
		principal.ID,
		string(scope.Kind),
		scope.ID,
		roleID,
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

// DeleteByScope removes all assignments bound to a scope. Used by the scope
// deletion cascades.
func (a *PostgreSQLAssignmentRepository) DeleteByScope(ctx context.Context, scope scopeDomain.ScopeRef) error {
	querier := database.GetTx(ctx, a.db)

	query := `DELETE FROM role_assignments WHERE scope_kind = $1 AND scope_id = $2`

	_, err := querier.ExecContext(ctx, query, string(scope.Kind), scope.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete assignments by scope")
	}
	return nil
}

// DeleteByPrincipal removes all assignments bound to a principal. Used by the
// user and group deletion cascades.
func (a *PostgreSQLAssignmentRepository) DeleteByPrincipal(
	ctx context.Context,
	principal principalDomain.PrincipalRef,
) error {
	querier := database.GetTx(ctx, a.db)

	query := `DELETE FROM role_assignments WHERE principal_kind = $1 AND principal_id = $2`

	_, err := querier.ExecContext(ctx, query, string(principal.Kind), principal.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete assignments by principal")
	}
	return nil
}

// DeleteByRole removes all assignments of a role. Used by the role deletion
// cascade.
func (a *PostgreSQLAssignmentRepository) DeleteByRole(ctx context.Context, roleID uuid.UUID) error {
	querier := database.GetTx(ctx, a.db)

	query := `DELETE FROM role_assignments WHERE role_id = $1`

	_, err := querier.ExecContext(ctx, query, roleID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete assignments by role")
	}
	return nil
}

// List retrieves assignments matching the filter with offset/limit pagination.
// Nil filter fields match everything.
func (a *PostgreSQLAssignmentRepository) List(
	ctx context.Context,
	filter *roleDomain.AssignmentFilter,
	offset, limit int,
) ([]*roleDomain.Assignment, error) {
	querier := database.GetTx(ctx, a.db)

	var conditions []string
	var args []any

	if filter != nil {
		if filter.Principal != nil {
			conditions = append(conditions,
				fmt.Sprintf("principal_kind = $%d AND principal_id = $%d", len(args)+1, len(args)+2))
			args = append(args, string(filter.Principal.Kind), filter.Principal.ID)
		}
		if filter.Scope != nil {
			conditions = append(conditions,
				fmt.Sprintf("scope_kind = $%d AND scope_id = $%d", len(args)+1, len(args)+2))
			args = append(args, string(filter.Scope.Kind), filter.Scope.ID)
		}
		if filter.RoleID != nil {
			conditions = append(conditions, fmt.Sprintf("role_id = $%d", len(args)+1))
			args = append(args, *filter.RoleID)
		}
	}

	query := `SELECT id, principal_kind, principal_id, scope_kind, scope_id, role_id, created_at
			  FROM role_assignments`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY created_at ASC OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list assignments")
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// ListByPrincipalsAndScopes retrieves every assignment whose principal is in
// the given set and whose scope is in the given set. This is the resolver's
// single round trip: the principal set is the user plus their groups, the
// scope set is the target's ancestor chain.
func (a *PostgreSQLAssignmentRepository) ListByPrincipalsAndScopes(
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
		principalTuples = append(principalTuples, fmt.Sprintf("($%d, $%d)", len(args)+1, len(args)+2))
		args = append(args, string(p.Kind), p.ID)
	}

	scopeTuples := make([]string, 0, len(scopes))
	for _, s := range scopes {
		scopeTuples = append(scopeTuples, fmt.Sprintf("($%d, $%d)", len(args)+1, len(args)+2))
		args = append(args, string(s.Kind), s.ID)
	}

	query := fmt.Sprintf(
		`SELECT id, principal_kind, principal_id, scope_kind, scope_id, role_id, created_at
		 FROM role_assignments
		 WHERE (principal_kind, principal_id) IN (%s)
		   AND (scope_kind, scope_id) IN (%s)`,
		strings.Join(principalTuples, ", "),
		strings.Join(scopeTuples, ", "),
	)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list assignments by principals and scopes")
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// scanAssignments reads all assignment rows from the result set.
func scanAssignments(rows *sql.Rows) ([]*roleDomain.Assignment, error) {
	var assignments []*roleDomain.Assignment
	for rows.Next() {
		var assignment roleDomain.Assignment
		var principalKind, scopeKind string
		if err := rows.Scan(
			&assignment.ID,
			&principalKind,
			&assignment.Principal.ID,
			&scopeKind,
			&assignment.Scope.ID,
			&assignment.RoleID,
			&assignment.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan assignment")
		}
		assignment.Principal.Kind = principalDomain.PrincipalKind(principalKind)
		assignment.Scope.Kind = scopeDomain.ScopeKind(scopeKind)
		assignments = append(assignments, &assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate assignments")
	}
	return assignments, nil
}

// uuidArray adapts a UUID slice for use with PostgreSQL array parameters.
func uuidArray(ids []uuid.UUID) any {
	return pq.Array(ids)
}

// NewPostgreSQLAssignmentRepository creates a new PostgreSQL Assignment repository.
func NewPostgreSQLAssignmentRepository(db *sql.DB) *PostgreSQLAssignmentRepository {
	return &PostgreSQLAssignmentRepository{db: db}
}
