package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	principalDomain "github.com/allisson/identity/internal/principal/domain"
)

// groupUseCase implements GroupUseCase.
type groupUseCase struct {
	txManager      database.TxManager
	groupRepo      GroupRepository
	userRepo       UserRepository
	domainReader   DomainReader
	assignmentRepo AssignmentRemover
}

// Create creates a new group enforcing per-domain name uniqueness.
func (g *groupUseCase) Create(
	ctx context.Context,
	input *principalDomain.CreateGroupInput,
) (*principalDomain.Group, error) {
	if _, err := g.domainReader.Get(ctx, input.DomainID); err != nil {
		return nil, err
	}

	if _, err := g.groupRepo.GetByName(ctx, input.DomainID, input.Name); err == nil {
		return nil, principalDomain.ErrDuplicateName
	} else if !errors.Is(err, principalDomain.ErrGroupNotFound) {
		return nil, err
	}

	group := &principalDomain.Group{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        input.Name,
		Description: input.Description,
		DomainID:    input.DomainID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := g.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

// Get retrieves a group by ID.
func (g *groupUseCase) Get(ctx context.Context, groupID uuid.UUID) (*principalDomain.Group, error) {
	return g.groupRepo.Get(ctx, groupID)
}

// List retrieves groups with pagination.
func (g *groupUseCase) List(ctx context.Context, offset, limit int) ([]*principalDomain.Group, error) {
	return g.groupRepo.List(ctx, offset, limit)
}

// Update modifies a group's name and description. Renaming enforces name
// uniqueness within the owning domain.
func (g *groupUseCase) Update(
	ctx context.Context,
	groupID uuid.UUID,
	input *principalDomain.UpdateGroupInput,
) (*principalDomain.Group, error) {
	group, err := g.groupRepo.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if input.Name != group.Name {
		if existing, err := g.groupRepo.GetByName(ctx, group.DomainID, input.Name); err == nil && existing.ID != groupID {
			return nil, principalDomain.ErrDuplicateName
		} else if err != nil && !errors.Is(err, principalDomain.ErrGroupNotFound) {
			return nil, err
		}
	}

	group.Name = input.Name
	group.Description = input.Description

	if err := g.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

// Delete removes a group, cascading removal of role assignments and
// membership edges in one transaction. Members themselves are untouched.
func (g *groupUseCase) Delete(ctx context.Context, groupID uuid.UUID) error {
	if _, err := g.groupRepo.Get(ctx, groupID); err != nil {
		return err
	}

	return g.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := g.assignmentRepo.DeleteByPrincipal(ctx, principalDomain.GroupRef(groupID)); err != nil {
			return err
		}
		if err := g.groupRepo.DeleteMembersByGroup(ctx, groupID); err != nil {
			return err
		}
		return g.groupRepo.Delete(ctx, groupID)
	})
}

// AddMember adds a user to a group. Both must live in the same domain;
// re-adding an existing member is a no-op.
func (g *groupUseCase) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	group, err := g.groupRepo.Get(ctx, groupID)
	if err != nil {
		return err
	}

	user, err := g.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	if user.DomainID != group.DomainID {
		return principalDomain.ErrCrossDomainMembership
	}

	return g.groupRepo.AddMember(ctx, groupID, userID)
}

// RemoveMember removes a user from a group. Removing a non-member is a no-op.
func (g *groupUseCase) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	if _, err := g.groupRepo.Get(ctx, groupID); err != nil {
		return err
	}

	return g.groupRepo.RemoveMember(ctx, groupID, userID)
}

// ListMembers retrieves the users belonging to a group.
func (g *groupUseCase) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*principalDomain.User, error) {
	if _, err := g.groupRepo.Get(ctx, groupID); err != nil {
		return nil, err
	}

	return g.groupRepo.ListMembers(ctx, groupID)
}

// ListGroupsForUser retrieves the groups a user belongs to.
func (g *groupUseCase) ListGroupsForUser(ctx context.Context, userID uuid.UUID) ([]*principalDomain.Group, error) {
	if _, err := g.userRepo.Get(ctx, userID); err != nil {
		return nil, err
	}

	return g.groupRepo.ListGroupsForUser(ctx, userID)
}

// NewGroupUseCase creates a new GroupUseCase with the provided dependencies.
func NewGroupUseCase(
	txManager database.TxManager,
	groupRepo GroupRepository,
	userRepo UserRepository,
	domainReader DomainReader,
	assignmentRepo AssignmentRemover,
) GroupUseCase {
	return &groupUseCase{
		txManager:      txManager,
		groupRepo:      groupRepo,
		userRepo:       userRepo,
		domainReader:   domainReader,
		assignmentRepo: assignmentRepo,
	}
}
