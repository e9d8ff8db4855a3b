// Package usecase implements business logic orchestration for the scope hierarchy.
package usecase

import (
	"errors"
	"time"

	"context"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// domainUseCase implements DomainUseCase.
type domainUseCase struct {
	txManager        database.TxManager
	domainRepo       DomainRepository
	projectRepo      ProjectRepository
	assignmentRepo   AssignmentRemover
	principalCounter PrincipalCounter
}

// Create creates a new domain enforcing global name uniqueness.
func (d *domainUseCase) Create(
	ctx context.Context,
	input *scopeDomain.CreateDomainInput,
) (*scopeDomain.Domain, error) {
	if _, err := d.domainRepo.GetByName(ctx, input.Name); err == nil {
		return nil, scopeDomain.ErrDuplicateName
	} else if !errors.Is(err, scopeDomain.ErrDomainNotFound) {
		return nil, err
	}

	domain := &scopeDomain.Domain{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        input.Name,
		Description: input.Description,
		Enabled:     input.Enabled,
		CreatedAt:   time.Now().UTC(),
	}

	if err := d.domainRepo.Create(ctx, domain); err != nil {
		return nil, err
	}

	return domain, nil
}

// Get retrieves a domain by ID. Disabled domains are returned like any other.
func (d *domainUseCase) Get(ctx context.Context, domainID uuid.UUID) (*scopeDomain.Domain, error) {
	return d.domainRepo.Get(ctx, domainID)
}

// GetByName retrieves a domain by name.
func (d *domainUseCase) GetByName(ctx context.Context, name string) (*scopeDomain.Domain, error) {
	return d.domainRepo.GetByName(ctx, name)
}

// List retrieves domains with pagination.
func (d *domainUseCase) List(ctx context.Context, offset, limit int) ([]*scopeDomain.Domain, error) {
	return d.domainRepo.List(ctx, offset, limit)
}

// Update modifies a domain's name, description and enabled flag. Renaming
// enforces name uniqueness against other domains.
func (d *domainUseCase) Update(
	ctx context.Context,
	domainID uuid.UUID,
	input *scopeDomain.UpdateDomainInput,
) (*scopeDomain.Domain, error) {
	domain, err := d.domainRepo.Get(ctx, domainID)
	if err != nil {
		return nil, err
	}

	if input.Name != domain.Name {
		if existing, err := d.domainRepo.GetByName(ctx, input.Name); err == nil && existing.ID != domainID {
			return nil, scopeDomain.ErrDuplicateName
		} else if err != nil && !errors.Is(err, scopeDomain.ErrDomainNotFound) {
			return nil, err
		}
	}

	domain.Name = input.Name
	domain.Description = input.Description
	domain.Enabled = input.Enabled

	if err := d.domainRepo.Update(ctx, domain); err != nil {
		return nil, err
	}

	return domain, nil
}

// Delete removes a domain once nothing references it. Projects, users and
// groups must be removed first; role assignments bound to the domain scope
// are cascaded away in the same transaction as the domain row.
func (d *domainUseCase) Delete(ctx context.Context, domainID uuid.UUID) error {
	if _, err := d.domainRepo.Get(ctx, domainID); err != nil {
		return err
	}

	projectCount, err := d.projectRepo.CountByDomain(ctx, domainID)
	if err != nil {
		return err
	}
	if projectCount > 0 {
		return scopeDomain.ErrScopeInUse
	}

	userCount, err := d.principalCounter.CountUsersByDomain(ctx, domainID)
	if err != nil {
		return err
	}
	if userCount > 0 {
		return scopeDomain.ErrScopeInUse
	}

	groupCount, err := d.principalCounter.CountGroupsByDomain(ctx, domainID)
	if err != nil {
		return err
	}
	if groupCount > 0 {
		return scopeDomain.ErrScopeInUse
	}

	return d.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := d.assignmentRepo.DeleteByScope(ctx, scopeDomain.DomainRef(domainID)); err != nil {
			return err
		}
		return d.domainRepo.Delete(ctx, domainID)
	})
}

// NewDomainUseCase creates a new DomainUseCase with the provided dependencies.
func NewDomainUseCase(
	txManager database.TxManager,
	domainRepo DomainRepository,
	projectRepo ProjectRepository,
	assignmentRepo AssignmentRemover,
	principalCounter PrincipalCounter,
) DomainUseCase {
	return &domainUseCase{
		txManager:        txManager,
		domainRepo:       domainRepo,
		projectRepo:      projectRepo,
		assignmentRepo:   assignmentRepo,
		principalCounter: principalCounter,
	}
}
