package app

import (
	"fmt"

	milestoneHTTP "github.com/skywalker/milestones/internal/milestone/http"
	milestoneRepository "github.com/skywalker/milestones/internal/milestone/repository"
	milestoneUseCase "github.com/skywalker/milestones/internal/milestone/usecase"
)

// MilestoneRepository returns the milestone repository based on database driver.
func (c *Container) MilestoneRepository() (milestoneUseCase.MilestoneRepository, error) {
	var err error
	c.milestoneRepoInit.Do(func() {
		c.milestoneRepo, err = c.initMilestoneRepository()
		if err != nil {
			c.initErrors["milestoneRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["milestoneRepo"]; exists {
		return nil, storedErr
	}
	return c.milestoneRepo, nil
}

// MilestoneUseCase returns the milestone use case.
func (c *Container) MilestoneUseCase() (milestoneUseCase.UseCase, error) {
	var err error
	c.milestoneUCInit.Do(func() {
		c.milestoneUC, err = c.initMilestoneUseCase()
		if err != nil {
			c.initErrors["milestoneUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["milestoneUseCase"]; exists {
		return nil, storedErr
	}
	return c.milestoneUC, nil
}

// MilestoneHandler returns the HTTP handler for milestone operations.
func (c *Container) MilestoneHandler() (*milestoneHTTP.MilestoneHandler, error) {
	var err error
	c.milestoneHandlerInit.Do(func() {
		c.milestoneHandler, err = c.initMilestoneHandler()
		if err != nil {
			c.initErrors["milestoneHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["milestoneHandler"]; exists {
		return nil, storedErr
	}
	return c.milestoneHandler, nil
}

// initMilestoneRepository creates the milestone repository based on the database driver.
func (c *Container) initMilestoneRepository() (milestoneUseCase.MilestoneRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for milestone repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return milestoneRepository.NewPostgreSQLMilestoneRepository(db), nil
	case "mysql":
		return milestoneRepository.NewMySQLMilestoneRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initMilestoneUseCase creates the milestone use case with all its dependencies.
func (c *Container) initMilestoneUseCase() (milestoneUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for milestone use case: %w", err)
	}

	milestoneRepo, err := c.MilestoneRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get milestone repository for milestone use case: %w", err)
	}

	baseUseCase := milestoneUseCase.NewMilestoneUseCase(txManager, milestoneRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for milestone use case: %w", err)
		}
		return milestoneUseCase.NewMilestoneUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initMilestoneHandler creates the milestone HTTP handler with all its dependencies.
func (c *Container) initMilestoneHandler() (*milestoneHTTP.MilestoneHandler, error) {
	milestoneUC, err := c.MilestoneUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get milestone use case for milestone handler: %w", err)
	}

	return milestoneHTTP.NewMilestoneHandler(milestoneUC, c.Logger()), nil
}
