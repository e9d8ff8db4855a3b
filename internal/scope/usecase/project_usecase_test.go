package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	scopeDomain "github.com/allisson/identity/internal/scope/domain"
)

func TestProjectUseCase_Create(t *testing.T) {
	ctx := context.Background()
	domainID := uuid.Must(uuid.NewV7())
	acme := &scopeDomain.Domain{ID: domainID, Name: "acme", Enabled: true}

	t.Run("Success_TopLevelProject", func(t *testing.T) {
		domainRepo := &mockDomainRepository{}
		domainRepo.On("Get", ctx, domainID).Return(acme, nil).Once()

		projectRepo := &mockProjectRepository{}
		projectRepo.On("GetByName", ctx, domainID, "dev").
			Return(nil, scopeDomain.ErrProjectNotFound).
			Once()
		projectRepo.On("Create", ctx, mock.MatchedBy(func(p *scopeDomain.Project) bool {
			return p.Name == "dev" && p.DomainID == domainID && p.ParentID == nil
		})).
			Return(nil).
			Once()

		uc := NewProjectUseCase(&fakeTxManager{}, domainRepo, projectRepo, &mockAssignmentRemover{}, &noDefaultProjectChecker{})
		project, err := uc.Create(ctx, &scopeDomain.CreateProjectInput{
			Name:     "dev",
			Enabled:  true,
			DomainID: domainID,
		})

		assert.NoError(t, err)
		assert.Equal(t, domainID, project.DomainID)
		projectRepo.AssertExpectations(t)
	})

	t.Run("Success_NestedProject", func(t *testing.T) {
		parentID := uuid.Must(uuid.NewV7())
		parent := &scopeDomain.Project{ID: parentID, Name: "dev", DomainID: domainID, Enabled: true}

		domainRepo := &mockDomainRepository{}
		domainRepo.On("Get", ctx, domainID).Return(acme, nil).Once()

		projectRepo := &mockProjectRepository{}
		projectRepo.On("Get", ctx, parentID).Return(parent, nil).Once()
		projectRepo.On("GetByName", ctx, domainID, "dev-ci").
			Return(nil, scopeDomain.ErrProjectNotFound).
			Once()
		projectRepo.On("Create", ctx, mock.MatchedBy(func(p *scopeDomain.Project) bool {
			return p.ParentID != nil && *p.ParentID == parentID && p.DomainID == domainID
		})).
			Return(nil).
			Once()

		uc := NewProjectUseCase(&fakeTxManager{}, domainRepo, projectRepo, &mockAssignmentRemover{}, &noDefaultProjectChecker{})
		project, err := uc.Create(ctx, &scopeDomain.CreateProjectInput{
			Name:     "dev-ci",
			Enabled:  true,
			DomainID: domainID,
			ParentID: &parentID,
		})

		assert.NoError(t, err)
		require.NotNil(t, project.ParentID)
		assert.Equal(t, parentID, *project.ParentID)
	})

	t.Run("Error_CrossDomainParent", func(t *testing.T) {
		otherDomainID := uuid.Must(uuid.NewV7())
		parentID := uuid.Must(uuid.NewV7())
		parent := &scopeDomain.Project{ID: parentID, Name: "dev", DomainID: otherDomainID, Enabled: true}

		domainRepo := &mockDomainRepository{}
		domainRepo.On("Get", ctx, domainID).Return(acme, nil).Once()

		projectRepo := &mockProjectRepository{}
		projectRepo.On("Get", ctx, parentID).Return(parent, nil).Once()

		uc := NewProjectUseCase(&fakeTxManager{}, domainRepo, projectRepo, &mockAssignmentRemover{}, &noDefaultProjectChecker{})
		_, err := uc.Create(ctx, &scopeDomain.CreateProjectInput{
			Name:     "dev-ci",
			DomainID: domainID,
			ParentID: &parentID,
		})

		assert.ErrorIs(t, err, scopeDomain.ErrCrossDomainParent)
		projectRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_DuplicateNameWithinDomain", func(t *testing.T) {
		existing := &scopeDomain.Project{ID: uuid.Must(uuid.NewV7()), Name: "dev", DomainID: domainID}

		domainRepo := &mockDomainRepository{}
		domainRepo.On("Get", ctx, domainID).Return(acme, nil).Once()

		projectRepo := &mockProjectRepository{}
		projectRepo.On("GetByName", ctx, domainID, "dev").Return(existing, nil).Once()

		uc := NewProjectUseCase(&fakeTxManager{}, domainRepo, projectRepo, &mockAssignmentRemover{}, &noDefaultProjectChecker{})
		_, err := uc.Create(ctx, &scopeDomain.CreateProjectInput{Name: "dev", DomainID: domainID})

		assert.ErrorIs(t, err, scopeDomain.ErrDuplicateName)
	})
}

func TestProjectUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	domainID := uuid.Must(uuid.NewV7())
	projectID := uuid.Must(uuid.NewV7())
	project := &scopeDomain.Project{ID: projectID, Name: "dev", DomainID: domainID, Enabled: true}

	t.Run("Success_CascadesAssignments", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		projectRepo.On("Get", ctx, projectID).Return(project, nil).Once()
		projectRepo.On("CountChildren", ctx, projectID).Return(0, nil).Once()
		projectRepo.On("Delete", ctx, projectID).Return(nil).Once()

		remover := &mockAssignmentRemover{}
		remover.On("DeleteByScope", ctx, scopeDomain.ProjectRef(projectID)).Return(nil).Once()

		checker := &mockDefaultProjectChecker{}
		checker.On("CountUsersByDefaultProject", ctx, projectID).Return(0, nil).Once()

		uc := NewProjectUseCase(&fakeTxManager{}, &mockDomainRepository{}, projectRepo, remover, checker)
		err := uc.Delete(ctx, projectID)

		assert.NoError(t, err)
		projectRepo.AssertExpectations(t)
		remover.AssertExpectations(t)
		checker.AssertExpectations(t)
	})

	t.Run("Error_ScopeInUse_DefaultProjectUsers", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		projectRepo.On("Get", ctx, projectID).Return(project, nil).Once()
		projectRepo.On("CountChildren", ctx, projectID).Return(0, nil).Once()

		checker := &mockDefaultProjectChecker{}
		checker.On("CountUsersByDefaultProject", ctx, projectID).Return(1, nil).Once()

		uc := NewProjectUseCase(&fakeTxManager{}, &mockDomainRepository{}, projectRepo, &mockAssignmentRemover{}, checker)
		err := uc.Delete(ctx, projectID)

		assert.ErrorIs(t, err, scopeDomain.ErrScopeInUse)
		projectRepo.AssertNotCalled(t, "Delete", ctx, projectID)
	})

	t.Run("Error_ScopeInUse_Children", func(t *testing.T) {
		projectRepo := &mockProjectRepository{}
		projectRepo.On("Get", ctx, projectID).Return(project, nil).Once()
		projectRepo.On("CountChildren", ctx, projectID).Return(1, nil).Once()

		uc := NewProjectUseCase(&fakeTxManager{}, &mockDomainRepository{}, projectRepo, &mockAssignmentRemover{}, &noDefaultProjectChecker{})
		err := uc.Delete(ctx, projectID)

		assert.ErrorIs(t, err, scopeDomain.ErrScopeInUse)
		projectRepo.AssertNotCalled(t, "Delete", ctx, projectID)
	})
}

func TestProjectUseCase_Ancestors(t *testing.T) {
	ctx := context.Background()
	domainID := uuid.Must(uuid.NewV7())

	t.Run("DomainScope_ReturnsItself", func(t *testing.T) {
		domainRepo := &mockDomainRepository{}
		domainRepo.On("Get", ctx, domainID).
			Return(&scopeDomain.Domain{ID: domainID, Name: "acme", Enabled: true}, nil).
			Once()

		uc := NewProjectUseCase(&fakeTxManager{}, domainRepo, &mockProjectRepository{}, &mockAssignmentRemover{}, &noDefaultProjectChecker{})
		chain, err := uc.Ancestors(ctx, scopeDomain.DomainRef(domainID))

		assert.NoError(t, err)
		assert.Equal(t, []scopeDomain.ScopeRef{scopeDomain.DomainRef(domainID)}, chain)
	})

	t.Run("NestedProject_WalksFullChain", func(t *testing.T) {
		rootID := uuid.Must(uuid.NewV7())
		midID := uuid.Must(uuid.NewV7())
		leafID := uuid.Must(uuid.NewV7())

		root := &scopeDomain.Project{ID: rootID, Name: "dev", DomainID: domainID}
		mid := &scopeDomain.Project{ID: midID, Name: "dev-ci", DomainID: domainID, ParentID: &rootID}
		leaf := &scopeDomain.Project{ID: leafID, Name: "dev-ci-nightly", DomainID: domainID, ParentID: &midID}

		projectRepo := &mockProjectRepository{}
		projectRepo.On("Get", ctx, leafID).Return(leaf, nil).Once()
		projectRepo.On("Get", ctx, midID).Return(mid, nil).Once()
		projectRepo.On("Get", ctx, rootID).Return(root, nil).Once()

		uc := NewProjectUseCase(&fakeTxManager{}, &mockDomainRepository{}, projectRepo, &mockAssignmentRemover{}, &noDefaultProjectChecker{})
		chain, err := uc.Ancestors(ctx, scopeDomain.ProjectRef(leafID))

		assert.NoError(t, err)
		assert.Equal(t, []scopeDomain.ScopeRef{
			scopeDomain.ProjectRef(leafID),
			scopeDomain.ProjectRef(midID),
			scopeDomain.ProjectRef(rootID),
			scopeDomain.DomainRef(domainID),
		}, chain)
	})

	t.Run("BrokenChain_MissingParent", func(t *testing.T) {
		missingID := uuid.Must(uuid.NewV7())
		leafID := uuid.Must(uuid.NewV7())
		leaf := &scopeDomain.Project{ID: leafID, Name: "orphan", DomainID: domainID, ParentID: &missingID}

		projectRepo := &mockProjectRepository{}
		projectRepo.On("Get", ctx, leafID).Return(leaf, nil).Once()
		projectRepo.On("Get", ctx, missingID).Return(nil, scopeDomain.ErrProjectNotFound).Once()

		uc := NewProjectUseCase(&fakeTxManager{}, &mockDomainRepository{}, projectRepo, &mockAssignmentRemover{}, &noDefaultProjectChecker{})
		_, err := uc.Ancestors(ctx, scopeDomain.ProjectRef(leafID))

		assert.ErrorIs(t, err, scopeDomain.ErrParentChainBroken)
	})
}
