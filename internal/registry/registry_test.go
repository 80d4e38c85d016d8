package registry

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestStaticResolverRoundRobin(t *testing.T) {
	resolver := NewStaticResolver(map[string][]string{
		"product": {"localhost:8081", "localhost:9081"},
	})

	first, err := resolver.Resolve(context.Background(), "product")
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), "product")
	require.NoError(t, err)
	third, err := resolver.Resolve(context.Background(), "product")
	require.NoError(t, err)

	assert.NotEqual(t, first.Addr, second.Addr)
	assert.Equal(t, first.Addr, third.Addr)
}

func TestStaticResolverUnknownService(t *testing.T) {
	resolver := NewStaticResolver(map[string][]string{})

	_, err := resolver.Resolve(context.Background(), "payment")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

const (
	testRedisAddr     = "localhost:6379"
	testRedisPassword = ""
)

type RedisRegistryTestSuite struct {
	suite.Suite
	client   *redis.Client
	registry *RedisRegistry
}

func (suite *RedisRegistryTestSuite) SetupTest() {
	suite.client = redis.NewClient(&redis.Options{
		Addr:     testRedisAddr,
		Password: testRedisPassword,
		DB:       1, // 用測試DB
	})
	if err := suite.client.Ping(context.Background()).Err(); err != nil {
		suite.T().Skipf("redis not available: %v", err)
	}
	suite.client.FlushDB(context.Background())
	suite.registry = NewRedisRegistry(suite.client)
}

func TestRedisRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRegistryTestSuite))
}

func (suite *RedisRegistryTestSuite) TestRegisterAndResolve() {
	ctx := context.Background()
	inst := Instance{ServiceName: "product", Addr: "localhost:8081"}

	err := suite.registry.Register(ctx, inst, 30*time.Second)
	assert.NoError(suite.T(), err)

	got, err := suite.registry.Resolve(ctx, "product")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), inst.Addr, got.Addr)
}

func (suite *RedisRegistryTestSuite) TestResolveRoundRobin() {
	ctx := context.Background()
	suite.registry.Register(ctx, Instance{ServiceName: "order", Addr: "localhost:8083"}, 30*time.Second)
	suite.registry.Register(ctx, Instance{ServiceName: "order", Addr: "localhost:9083"}, 30*time.Second)

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		got, err := suite.registry.Resolve(ctx, "order")
		assert.NoError(suite.T(), err)
		seen[got.Addr] = true
	}
	assert.Len(suite.T(), seen, 2)
}

func (suite *RedisRegistryTestSuite) TestDeregister() {
	ctx := context.Background()
	inst := Instance{ServiceName: "user", Addr: "localhost:8082"}
	suite.registry.Register(ctx, inst, 30*time.Second)

	err := suite.registry.Deregister(ctx, inst)
	assert.NoError(suite.T(), err)

	_, err = suite.registry.Resolve(ctx, "user")
	assert.ErrorIs(suite.T(), err, ErrServiceNotFound)
}

func (suite *RedisRegistryTestSuite) TestExpiredInstanceGone() {
	ctx := context.Background()
	inst := Instance{ServiceName: "product", Addr: "localhost:8081"}
	suite.registry.Register(ctx, inst, 100*time.Millisecond)

	time.Sleep(200 * time.Millisecond)

	_, err := suite.registry.Resolve(ctx, "product")
	assert.ErrorIs(suite.T(), err, ErrServiceNotFound)
}
