package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitMetrics_Idempotent 重复初始化不应panic（promauto重复注册会panic）
func TestInitMetrics_Idempotent(t *testing.T) {
	require.NotPanics(t, func() {
		InitMetrics()
		InitMetrics()
	})
}

// TestBusinessCounters 业务计数器递增
func TestBusinessCounters(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(OrdersCreatedTotal)
	OrdersCreatedTotal.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(OrdersCreatedTotal))

	beforeOK := testutil.ToFloat64(PaymentsProcessedTotal.WithLabelValues("success"))
	PaymentsProcessedTotal.WithLabelValues("success").Inc()
	assert.Equal(t, beforeOK+1, testutil.ToFloat64(PaymentsProcessedTotal.WithLabelValues("success")))
}

// TestGinMiddleware 中间件记录请求总数
func TestGinMiddleware(t *testing.T) {
	InitMetrics()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/ping", "200"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/ping", "200")))
}
