package httpclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"moonpump/internal/httpclient"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Client", func() {
	var (
		client *httpclient.Client
		server *httptest.Server
		calls  atomic.Int32
		ctx    context.Context
	)

	BeforeEach(func() {
		calls.Store(0)
		ctx = context.Background()
		client = httpclient.New(zap.NewNop().Sugar(), time.Second, httpclient.RetryPolicy{
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			MaxElapsedTime:  time.Second,
		})
	})

	AfterEach(func() {
		server.Close()
	})

	When("the server rate limits the first attempts", func() {
		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) < 3 {
					w.WriteHeader(http.StatusTooManyRequests)
					return
				}
				w.Write([]byte(`{"value":"ok"}`))
			}))
		})

		It("should retry until it succeeds", func() {
			var out struct {
				Value string `json:"value"`
			}
			Expect(client.GetJSON(ctx, server.URL, &out)).To(Succeed())
			Expect(out.Value).To(Equal("ok"))
			Expect(calls.Load()).To(Equal(int32(3)))
		})
	})

	When("the server fails with a 5xx before recovering", func() {
		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if calls.Add(1) < 3 {
					http.Error(w, "upstream down", http.StatusBadGateway)
					return
				}
				w.Write([]byte(`{"value":"ok"}`))
			}))
		})

		It("should retry until it succeeds", func() {
			var out struct {
				Value string `json:"value"`
			}
			Expect(client.GetJSON(ctx, server.URL, &out)).To(Succeed())
			Expect(out.Value).To(Equal("ok"))
			Expect(calls.Load()).To(Equal(int32(3)))
		})
	})

	When("the server keeps failing with a 5xx", func() {
		BeforeEach(func() {
			client = httpclient.New(zap.NewNop().Sugar(), time.Second, httpclient.RetryPolicy{
				InitialInterval: time.Millisecond,
				MaxInterval:     2 * time.Millisecond,
				MaxElapsedTime:  50 * time.Millisecond,
			})
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				http.Error(w, "boom", http.StatusInternalServerError)
			}))
		})

		It("should give up with ErrServerError", func() {
			var out map[string]any
			err := client.GetJSON(ctx, server.URL, &out)
			Expect(err).To(MatchError(httpclient.ErrServerError))
			Expect(err).To(MatchError(ContainSubstring("status code 500")))
			Expect(calls.Load()).To(BeNumerically(">", 1))
		})
	})

	When("the server answers with a client error", func() {
		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				http.Error(w, "bad token", http.StatusUnauthorized)
			}))
		})

		It("should fail without retrying", func() {
			var out map[string]any
			err := client.GetJSON(ctx, server.URL, &out)
			Expect(err).To(MatchError(ContainSubstring("unexpected status code 401")))
			Expect(calls.Load()).To(Equal(int32(1)))
		})
	})

	When("the body is not JSON", func() {
		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>"))
			}))
		})

		It("should report a decode error", func() {
			var out map[string]any
			Expect(client.GetJSON(ctx, server.URL, &out)).To(MatchError(ContainSubstring("decode response")))
		})
	})
})
