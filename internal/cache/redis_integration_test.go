//go:build integration

package cache_test

import (
	"context"
	"time"

	"moonpump/internal/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

var _ = Describe("RedisClient against redis", Label("integration"), Ordered, func() {
	var (
		ctx    context.Context
		first  *cache.RedisClient
		second *cache.RedisClient
	)

	BeforeAll(func() {
		ctx = context.Background()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			},
			Started: true,
		})
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			Expect(testcontainers.TerminateContainer(container)).To(Succeed())
		})

		endpoint, err := container.Endpoint(ctx, "")
		Expect(err).NotTo(HaveOccurred())

		logger := zap.NewNop().Sugar()
		first, err = cache.NewRedisClient(logger, "redis://"+endpoint+"/0")
		Expect(err).NotTo(HaveOccurred())
		second, err = cache.NewRedisClient(logger, "redis://"+endpoint+"/0")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should grant a lock to one owner at a time", func() {
		ok, err := first.AcquireLock(ctx, "sync", time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())

		ok, err = second.AcquireLock(ctx, "sync", time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())

		Expect(second.ReleaseLock(ctx, "sync")).To(Succeed())
		ok, err = second.AcquireLock(ctx, "sync", time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())

		Expect(first.ReleaseLock(ctx, "sync")).To(Succeed())
		ok, err = second.AcquireLock(ctx, "sync", time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
	})

	It("should round-trip prices and report misses", func() {
		_, err := first.GetPrice(ctx, "eth")
		Expect(err).To(MatchError(cache.ErrCacheMiss))

		Expect(first.SetPrice(ctx, "eth", decimal.RequireFromString("3999.5"), time.Minute)).To(Succeed())
		price, err := second.GetPrice(ctx, "eth")
		Expect(err).NotTo(HaveOccurred())
		Expect(price.Equal(decimal.RequireFromString("3999.5"))).To(BeTrue())
	})
})
