package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/identity/internal/database"
	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

// maxProjectDepth bounds the ancestor walk. The parent chain is acyclic by
// construction (parents are fixed at create time and must already exist), so
// hitting this limit means the stored data is corrupt.
const maxProjectDepth = 64

// projectUseCase implements ProjectUseCase.
type projectUseCase struct {
	txManager             database.TxManager
	domainRepo            DomainRepository
	projectRepo           ProjectRepository
	assignmentRepo        AssignmentRemover
	defaultProjectChecker DefaultProjectChecker
}

// Create creates a new project under a domain, optionally nested under a
// parent project. The parent must exist and live in the same domain; project
// names are unique within the owning domain.
func (p *projectUseCase) Create(
	ctx context.Context,
	input *scopeDomain.CreateProjectInput,
) (*scopeDomain.Project, error) {
	if _, err := p.domainRepo.Get(ctx, input.DomainID); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := p.projectRepo.Get(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.DomainID != input.DomainID {
			return nil, scopeDomain.ErrCrossDomainParent
		}
	}

	if _, err := p.projectRepo.GetByName(ctx, input.DomainID, input.Name); err == nil {
		return nil, scopeDomain.ErrDuplicateName
	} else if !errors.Is(err, scopeDomain.ErrProjectNotFound) {
		return nil, err
	}

	project := &scopeDomain.Project{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        input.Name,
		Description: input.Description,
		Enabled:     input.Enabled,
		DomainID:    input.DomainID,
		ParentID:    input.ParentID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := p.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Get retrieves a project by ID.
func (p *projectUseCase) Get(ctx context.Context, projectID uuid.UUID) (*scopeDomain.Project, error) {
	return p.projectRepo.Get(ctx, projectID)
}

// List retrieves projects with pagination.
func (p *projectUseCase) List(ctx context.Context, offset, limit int) ([]*scopeDomain.Project, error) {
	return p.projectRepo.List(ctx, offset, limit)
}

// Update modifies a project's name, description and enabled flag. Renaming
// enforces name uniqueness within the owning domain.
func (p *projectUseCase) Update(
	ctx context.Context,
	projectID uuid.UUID,
	input *scopeDomain.UpdateProjectInput,
) (*scopeDomain.Project, error) {
	project, err := p.projectRepo.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if input.Name != project.Name {
		if existing, err := p.projectRepo.GetByName(ctx, project.DomainID, input.Name); err == nil && existing.ID != projectID {
			return nil, scopeDomain.ErrDuplicateName
		} else if err != nil && !errors.Is(err, scopeDomain.ErrProjectNotFound) {
			return nil, err
		}
	}

	project.Name = input.Name
	project.Description = input.Description
	project.Enabled = input.Enabled

	if err := p.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project. Fails with ErrScopeInUse if child projects exist
// or users still name the project as their default; role assignments bound to
// the project scope are cascaded away in the same transaction as the project
// row.
func (p *projectUseCase) Delete(ctx context.Context, projectID uuid.UUID) error {
	if _, err := p.projectRepo.Get(ctx, projectID); err != nil {
		return err
	}

	children, err := p.projectRepo.CountChildren(ctx, projectID)
	if err != nil {
		return err
	}
	if children > 0 {
		return scopeDomain.ErrScopeInUse
	}

	defaultUsers, err := p.defaultProjectChecker.CountUsersByDefaultProject(ctx, projectID)
	if err != nil {
		return err
	}
	if defaultUsers > 0 {
		return scopeDomain.ErrScopeInUse
	}

	return p.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := p.assignmentRepo.DeleteByScope(ctx, scopeDomain.ProjectRef(projectID)); err != nil {
			return err
		}
		return p.projectRepo.Delete(ctx, projectID)
	})
}

// Ancestors resolves the ordered ancestor chain of a scope: the scope itself
// first, then each parent project, terminating with the owning domain. Role
// assignments on any scope in the chain apply to the target scope.
func (p *projectUseCase) Ancestors(
	ctx context.Context,
	scope scopeDomain.ScopeRef,
) ([]scopeDomain.ScopeRef, error) {
	switch scope.Kind {
	case scopeDomain.ScopeKindDomain:
		if _, err := p.domainRepo.Get(ctx, scope.ID); err != nil {
			return nil, err
		}
		return []scopeDomain.ScopeRef{scope}, nil

	case scopeDomain.ScopeKindProject:
		chain := make([]scopeDomain.ScopeRef, 0, 4)

		project, err := p.projectRepo.Get(ctx, scope.ID)
		if err != nil {
			return nil, err
		}
		chain = append(chain, scope)

		current := project
		for depth := 0; current.ParentID != nil; depth++ {
			if depth >= maxProjectDepth {
				return nil, scopeDomain.ErrParentChainBroken
			}
			parent, err := p.projectRepo.Get(ctx, *current.ParentID)
			if err != nil {
				if errors.Is(err, scopeDomain.ErrProjectNotFound) {
					return nil, scopeDomain.ErrParentChainBroken
				}
				return nil, err
			}
			chain = append(chain, scopeDomain.ProjectRef(parent.ID))
			current = parent
		}

		chain = append(chain, scopeDomain.DomainRef(project.DomainID))
		return chain, nil

	default:
		return nil, scopeDomain.ErrScopeNotFound
	}
}

// NewProjectUseCase creates a new ProjectUseCase with the provided dependencies.
func NewProjectUseCase(
	txManager database.TxManager,
	domainRepo DomainRepository,
	projectRepo ProjectRepository,
	assignmentRepo AssignmentRemover,
	defaultProjectChecker DefaultProjectChecker,
) ProjectUseCase {
	return &projectUseCase{
		txManager:             txManager,
		domainRepo:            domainRepo,
		projectRepo:           projectRepo,
		assignmentRepo:        assignmentRepo,
		defaultProjectChecker: defaultProjectChecker,
	}
}
