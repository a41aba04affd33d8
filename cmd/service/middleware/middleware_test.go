package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/seriousplay/MegaSpace/app/core"
	"github.com/seriousplay/MegaSpace/cmd/service/middleware"
)

func counterValue(t *testing.T, family string, labels map[string]string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	assert.NoError(t, err)

	for _, f := range families {
		if f.GetName() != family {
			continue
		}
	next:
		for _, m := range f.GetMetric() {
			got := make(map[string]string)
			for _, p := range m.GetLabel() {
				got[p.GetName()] = p.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := core.NewMetrics("megaspace", "mwtest")

	engine := gin.New()
	engine.Use(middleware.Metrics(m))
	engine.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	engine.GET("/bad", func(c *gin.Context) {
		c.Status(http.StatusBadRequest)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	errLabels := map[string]string{"method": "GET", "api": "/bad", "status": "400"}
	assert.Equal(t, float64(0), counterValue(t, "megaspace_mwtest_api_error", errLabels))

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, float64(1), counterValue(t, "megaspace_mwtest_api_error", errLabels))
}
