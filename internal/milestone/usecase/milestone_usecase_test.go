package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/skywalker/milestones/internal/errors"
	"github.com/skywalker/milestones/internal/milestone/domain"
)

// MockTxManager is a mock implementation of database.TxManager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	// Execute the function to test the logic inside
	return fn(ctx)
}

// MockMilestoneRepository is a mock implementation of MilestoneRepository
type MockMilestoneRepository struct {
	mock.Mock
}

func (m *MockMilestoneRepository) Create(ctx context.Context, milestone *domain.Milestone) error {
	args := m.Called(ctx, milestone)
	return args.Error(0)
}

func (m *MockMilestoneRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Milestone, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Milestone, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) Update(ctx context.Context, milestone *domain.Milestone) error {
	args := m.Called(ctx, milestone)
	return args.Error(0)
}

func (m *MockMilestoneRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func TestMilestoneUseCase_Create_Success(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockMilestoneRepository{}
	useCase := NewMilestoneUseCase(txManager, repo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	achieveDate := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Milestone")).Return(nil)

	milestone, err := useCase.Create(ctx, userID, CreateMilestoneInput{
		Title:       "Run a marathon",
		Description: "Complete a full 42km race",
		AchieveDate: &achieveDate,
	})

	require.NoError(t, err)
	require.NotNil(t, milestone)
	assert.Equal(t, userID, milestone.UserID)
	assert.Equal(t, "Run a marathon", milestone.Title)
	assert.False(t, milestone.Completed)
	assert.Nil(t, milestone.CompletedDate)
	assert.Equal(t, &achieveDate, milestone.AchieveDate)
	assert.NotEqual(t, uuid.Nil, milestone.ID)

	txManager.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestMilestoneUseCase_Create_ValidationError(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockMilestoneRepository{}
	useCase := NewMilestoneUseCase(txManager, repo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	milestone, err := useCase.Create(ctx, userID, CreateMilestoneInput{Title: "   "})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Nil(t, milestone)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMilestoneUseCase_Get_OwnerScoped(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockMilestoneRepository{}
	useCase := NewMilestoneUseCase(txManager, repo)

	ctx := context.Background()
	ownerID := uuid.Must(uuid.NewV7())
	otherUserID := uuid.Must(uuid.NewV7())
	milestoneID := uuid.Must(uuid.NewV7())

	stored := &domain.Milestone{
		ID:     milestoneID,
		UserID: ownerID,
		Title:  "Run a marathon",
	}

	repo.On("GetByID", ctx, ownerID, milestoneID).Return(stored, nil)
	// Another user's lookup behaves exactly like a missing record.
	repo.On("GetByID", ctx, otherUserID, milestoneID).Return(nil, domain.ErrMilestoneNotFound)

	milestone, err := useCase.Get(ctx, ownerID, milestoneID)
	require.NoError(t, err)
	assert.Equal(t, stored, milestone)

	milestone, err = useCase.Get(ctx, otherUserID, milestoneID)
	assert.ErrorIs(t, err, domain.ErrMilestoneNotFound)
	assert.Nil(t, milestone)

	repo.AssertExpectations(t)
}

func TestMilestoneUseCase_List(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockMilestoneRepository{}
	useCase := NewMilestoneUseCase(txManager, repo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	stored := []*domain.Milestone{
		{ID: uuid.Must(uuid.NewV7()), UserID: userID, Title: "First"},
		{ID: uuid.Must(uuid.NewV7()), UserID: userID, Title: "Second"},
	}

	repo.On("ListByUser", ctx, userID).Return(stored, nil)

	milestones, err := useCase.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, milestones)

	repo.AssertExpectations(t)
}

func TestMilestoneUseCase_Update_SetsCompletedDate(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockMilestoneRepository{}
	useCase := NewMilestoneUseCase(txManager, repo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	milestoneID := uuid.Must(uuid.NewV7())

	stored := &domain.Milestone{
		ID:     milestoneID,
		UserID: userID,
		Title:  "Run a marathon",
	}

	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	repo.On("GetByID", ctx, userID, milestoneID).Return(stored, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Milestone")).Return(nil)

	milestone, err := useCase.Update(ctx, userID, milestoneID, UpdateMilestoneInput{
		Title:     "Run a marathon",
		Completed: true,
	})

	require.NoError(t, err)
	assert.True(t, milestone.Completed)
	require.NotNil(t, milestone.CompletedDate)

	today := time.Now().UTC()
	assert.Equal(t, today.Year(), milestone.CompletedDate.Year())
	assert.Equal(t, today.YearDay(), milestone.CompletedDate.YearDay())

	txManager.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestMilestoneUseCase_Update_KeepsExplicitCompletedDate(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockMilestoneRepository{}
	useCase := NewMilestoneUseCase(txManager, repo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	milestoneID := uuid.Must(uuid.NewV7())
	completedDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	stored := &domain.Milestone{
		ID:     milestoneID,
		UserID: userID,
		Title:  "Run a marathon",
	}

	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	repo.On("GetByID", ctx, userID, milestoneID).Return(stored, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Milestone")).Return(nil)

	milestone, err := useCase.Update(ctx, userID, milestoneID, UpdateMilestoneInput{
		Title:         "Run a marathon",
		Completed:     true,
		CompletedDate: &completedDate,
	})

	require.NoError(t, err)
	assert.Equal(t, &completedDate, milestone.CompletedDate)

	repo.AssertExpectations(t)
}

func TestMilestoneUseCase_Update_ClearsCompletedDateWhenReopened(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockMilestoneRepository{}
	useCase := NewMilestoneUseCase(txManager, repo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	milestoneID := uuid.Must(uuid.NewV7())
	completedDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	stored := &domain.Milestone{
		ID:            milestoneID,
		UserID:        userID,
		Title:         "Run a marathon",
		Completed:     true,
		CompletedDate: &completedDate,
	}

	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	repo.On("GetByID", ctx, userID, milestoneID).Return(stored, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Milestone")).Return(nil)

	milestone, err := useCase.Update(ctx, userID, milestoneID, UpdateMilestoneInput{
		Title:     "Run a marathon",
		Completed: false,
	})

	require.NoError(t, err)
	assert.False(t, milestone.Completed)
	assert.Nil(t, milestone.CompletedDate)

	repo.AssertExpectations(t)
}

func TestMilestoneUseCase_Update_NotFound(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockMilestoneRepository{}
	useCase := NewMilestoneUseCase(txManager, repo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	milestoneID := uuid.Must(uuid.NewV7())

	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	repo.On("GetByID", ctx, userID, milestoneID).Return(nil, domain.ErrMilestoneNotFound)

	milestone, err := useCase.Update(ctx, userID, milestoneID, UpdateMilestoneInput{Title: "Whatever"})

	assert.ErrorIs(t, err, domain.ErrMilestoneNotFound)
	assert.Nil(t, milestone)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMilestoneUseCase_Delete(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockMilestoneRepository{}
	useCase := NewMilestoneUseCase(txManager, repo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	milestoneID := uuid.Must(uuid.NewV7())

	repo.On("Delete", ctx, userID, milestoneID).Return(nil).Once()

	err := useCase.Delete(ctx, userID, milestoneID)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestMilestoneUseCase_Delete_NotFound(t *testing.T) {
	txManager := &MockTxManager{}
	repo := &MockMilestoneRepository{}
	useCase := NewMilestoneUseCase(txManager, repo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	milestoneID := uuid.Must(uuid.NewV7())

	repo.On("Delete", ctx, userID, milestoneID).Return(domain.ErrMilestoneNotFound).Once()

	err := useCase.Delete(ctx, userID, milestoneID)
	assert.ErrorIs(t, err, domain.ErrMilestoneNotFound)

	repo.AssertExpectations(t)
}
