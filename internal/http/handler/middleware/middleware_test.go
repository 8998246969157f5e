package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"moonpump/internal/http/handler/middleware"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("RequestID", func() {
	var (
		seen string
		next http.Handler
		w    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		seen = ""
		w = httptest.NewRecorder()
		next = http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestIDFrom(r.Context())
		})
	})

	It("should generate an id when none is sent", func() {
		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		_, err := uuid.Parse(seen)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Header().Get("X-Request-ID")).To(Equal(seen))
	})

	It("should keep the caller's id", func() {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "abc")
		middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

		Expect(seen).To(Equal("abc"))
		Expect(w.Header().Get("X-Request-ID")).To(Equal("abc"))
	})
})

var _ = Describe("Logging", func() {
	var (
		logs *observer.ObservedLogs
		mw   *middleware.LoggingMiddleware
		w    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		observed, recorded := observer.New(zap.InfoLevel)
		logs = recorded
		mw = middleware.NewLoggingMiddleware(zap.New(observed).Sugar())
		w = httptest.NewRecorder()
	})

	It("should log the response status", func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
		mw.Logging(next).ServeHTTP(w, httptest.NewRequest("GET", "/api/stats", nil))

		entries := logs.FilterMessage("API request").All()
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].ContextMap()).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
		Expect(entries[0].ContextMap()).To(HaveKeyWithValue("path", "/api/stats"))
	})

	It("should recover from panics with a 500", func() {
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		})
		mw.Logging(next).ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(logs.FilterMessage("panic recovered").Len()).To(Equal(1))
	})
})
