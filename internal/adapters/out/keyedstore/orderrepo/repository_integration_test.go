package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/keyedstore/orderrepo"
	"storefront/internal/adapters/out/redisstore"
	"storefront/internal/core/domain/model/menu"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// OrderRepositoryIntegrationTestSuite runs the repository against a real
// Redis container to verify the key layout and the MULTI/EXEC batches.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcredis.RedisContainer
	client     *goredis.Client
	repository *orderrepo.Repository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx)
	suite.Require().NoError(err)

	opts, err := goredis.ParseURL(connStr)
	suite.Require().NoError(err)
	suite.client = goredis.NewClient(opts)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
	suite.repository = orderrepo.New(redisstore.New(suite.client))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_WritesRecordAndIndices() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("priya@mail.com")

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Record lives in the orders hash.
	raw, err := suite.client.HGet(ctx, "orders", testOrder.ID).Result()
	suite.Require().NoError(err)
	suite.Contains(raw, testOrder.ID)

	// Both index sets know the id.
	all, err := suite.client.SMembers(ctx, "orders:all").Result()
	suite.Require().NoError(err)
	suite.Equal([]string{testOrder.ID}, all)

	mine, err := suite.client.SMembers(ctx, "user:priya@mail.com:orders").Result()
	suite.Require().NoError(err)
	suite.Equal([]string{testOrder.ID}, mine)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_GuestOrderSkipsOwnerIndex() {
	ctx := context.Background()
	guestOrder := suite.createTestOrder("")

	suite.Require().NoError(suite.repository.Add(ctx, guestOrder))

	keys, err := suite.client.Keys(ctx, "user:*:orders").Result()
	suite.Require().NoError(err)
	suite.Empty(keys)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundtripsThroughRedis() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("priya@mail.com")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID)
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID, retrieved.ID)
	suite.Equal(testOrder.Items, retrieved.Items)
	suite.Equal(testOrder.Customer, retrieved.Customer)
	suite.Equal(order.Received, retrieved.Status)
	suite.True(testOrder.CreatedAt.Equal(retrieved.CreatedAt))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), "no-such-order")
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_PersistsForwardTransition() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("priya@mail.com")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	time.Sleep(5 * time.Millisecond)

	updated, err := suite.repository.UpdateStatus(ctx, testOrder.ID, order.Preparing)
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, updated.Status)
	suite.True(updated.UpdatedAt.After(testOrder.UpdatedAt))

	stored, err := suite.repository.Get(ctx, testOrder.ID)
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, stored.Status)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_RejectsRegression() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("priya@mail.com")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	_, err := suite.repository.UpdateStatus(ctx, testOrder.ID, order.OutForDelivery)
	suite.Require().NoError(err)

	_, err = suite.repository.UpdateStatus(ctx, testOrder.ID, order.Preparing)
	suite.Require().ErrorIs(err, errs.ErrIllegalTransition)

	stored, err := suite.repository.Get(ctx, testOrder.ID)
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, stored.Status)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesEveryTrace() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("priya@mail.com")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	deleted, err := suite.repository.Delete(ctx, testOrder.ID)
	suite.Require().NoError(err)
	suite.True(deleted)

	exists, err := suite.client.HExists(ctx, "orders", testOrder.ID).Result()
	suite.Require().NoError(err)
	suite.False(exists)

	inAll, err := suite.client.SIsMember(ctx, "orders:all", testOrder.ID).Result()
	suite.Require().NoError(err)
	suite.False(inAll)

	inMine, err := suite.client.SIsMember(ctx, "user:priya@mail.com:orders", testOrder.ID).Result()
	suite.Require().NoError(err)
	suite.False(inMine)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_MissingOrder_ReportsFalse() {
	deleted, err := suite.repository.Delete(context.Background(), "no-such-order")
	suite.Require().NoError(err)
	suite.False(deleted)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClear_DropsRecordsAndAllIndexSets() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("a@mail.com")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("b@mail.com")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("")))

	suite.Require().NoError(suite.repository.Clear(ctx))

	keys, err := suite.client.Keys(ctx, "*").Result()
	suite.Require().NoError(err)
	suite.Empty(keys)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByOwner_ScopesToOneCustomer() {
	ctx := context.Background()
	mine := suite.createTestOrder("a@mail.com")
	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("b@mail.com")))

	orders, err := suite.repository.GetByOwner(ctx, "a@mail.com")
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(mine.ID, orders[0].ID)
}

// createTestOrder builds a small valid order owned by the given customer.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(userEmail string) *order.Order {
	item, err := order.NewLineItem(menu.Item{ID: "1", Name: "Margherita Pizza", Price: 12.99, Category: "Pizza"}, 1)
	suite.Require().NoError(err)

	customer, err := order.NewCustomer("Priya Sharma", "12 MG Road, Bengaluru", "+91 98765 43210")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder([]order.LineItem{item}, customer, userEmail)
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
