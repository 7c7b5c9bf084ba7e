package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"replenish/internal/adapters/out/postgres/assignmentrepo"
	"replenish/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AssignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *assignmentrepo.GormAssignmentRepository
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&assignmentrepo.AssignmentDTO{}))
	suite.repository = assignmentrepo.NewGormAssignmentRepository(db)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE manager_assignments").Error)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AssignmentRepositoryIntegrationTestSuite) seed(managerID, branchID kernel.UUID, active bool) {
	err := suite.db.Create(&assignmentrepo.AssignmentDTO{
		ManagerID: managerID.Bytes(),
		BranchID:  branchID.Bytes(),
		Active:    active,
	}).Error
	suite.Require().NoError(err)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestEligibleManagers_ReturnsOnlyActiveForBranch() {
	ctx := context.Background()
	branchID := kernel.NewUUID()
	otherBranchID := kernel.NewUUID()

	active := kernel.NewUUID()
	inactive := kernel.NewUUID()
	elsewhere := kernel.NewUUID()

	suite.seed(active, branchID, true)
	suite.seed(inactive, branchID, false)
	suite.seed(elsewhere, otherBranchID, true)

	managers, err := suite.repository.EligibleManagers(ctx, branchID)
	suite.Require().NoError(err)
	suite.Require().Len(managers, 1)
	suite.True(managers[0].IsEqual(active))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestEligibleManagers_ManagerMayServeSeveralBranches() {
	ctx := context.Background()
	managerID := kernel.NewUUID()
	branchA := kernel.NewUUID()
	branchB := kernel.NewUUID()

	suite.seed(managerID, branchA, true)
	suite.seed(managerID, branchB, true)

	managersA, err := suite.repository.EligibleManagers(ctx, branchA)
	suite.Require().NoError(err)
	managersB, err := suite.repository.EligibleManagers(ctx, branchB)
	suite.Require().NoError(err)

	suite.Require().Len(managersA, 1)
	suite.Require().Len(managersB, 1)
	suite.True(managersA[0].IsEqual(managerID))
	suite.True(managersB[0].IsEqual(managerID))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestIsEligible() {
	ctx := context.Background()
	managerID := kernel.NewUUID()
	branchID := kernel.NewUUID()
	suite.seed(managerID, branchID, true)

	inactiveManager := kernel.NewUUID()
	suite.seed(inactiveManager, branchID, false)

	eligible, err := suite.repository.IsEligible(ctx, managerID, branchID)
	suite.Require().NoError(err)
	suite.True(eligible)

	eligible, err = suite.repository.IsEligible(ctx, inactiveManager, branchID)
	suite.Require().NoError(err)
	suite.False(eligible, "an inactive assignment must not grant eligibility")

	eligible, err = suite.repository.IsEligible(ctx, kernel.NewUUID(), branchID)
	suite.Require().NoError(err)
	suite.False(eligible)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestIsEligible_InvalidIDs() {
	ctx := context.Background()

	_, err := suite.repository.IsEligible(ctx, kernel.UUID{}, kernel.NewUUID())
	suite.Require().Error(err)

	_, err = suite.repository.IsEligible(ctx, kernel.NewUUID(), kernel.UUID{})
	suite.Require().Error(err)
}

func TestAssignmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryIntegrationTestSuite))
}
