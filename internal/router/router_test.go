package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{}

func ok(c *ginext.Context) { c.String(http.StatusOK, c.FullPath()) }

func (stubHandler) OpenDesk(c *ginext.Context)        { ok(c) }
func (stubHandler) GetDesk(c *ginext.Context)         { ok(c) }
func (stubHandler) CloseDesk(c *ginext.Context)       { ok(c) }
func (stubHandler) RefreshDesk(c *ginext.Context)     { ok(c) }
func (stubHandler) Scan(c *ginext.Context)            { ok(c) }
func (stubHandler) Enqueue(c *ginext.Context)         { ok(c) }
func (stubHandler) ProcessQueue(c *ginext.Context)    { ok(c) }
func (stubHandler) Select(c *ginext.Context)          { ok(c) }
func (stubHandler) Deselect(c *ginext.Context)        { ok(c) }
func (stubHandler) SubmitSelection(c *ginext.Context) { ok(c) }
func (stubHandler) MarkAttendance(c *ginext.Context)  { ok(c) }
func (stubHandler) ExportReport(c *ginext.Context)    { ok(c) }
func (stubHandler) CheckInLog(c *ginext.Context)      { ok(c) }
func (stubHandler) BadgeQRCode(c *ginext.Context)     { ok(c) }

func denyAll(c *ginext.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func allowAll(c *ginext.Context) {
	c.Next()
}

func TestRouter_HealthIsPublic(t *testing.T) {
	r := InitRouter("test", stubHandler{}, denyAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_APIRequiresAuth(t *testing.T) {
	r := InitRouter("test", stubHandler{}, denyAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/events/e1/desk/scan", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_Routes(t *testing.T) {
	r := InitRouter("test", stubHandler{}, allowAll)

	cases := []struct {
		method, path, route string
	}{
		{http.MethodGet, "/api/badges/qrcode", "/api/badges/qrcode"},
		{http.MethodGet, "/api/events/e1/checkin-log", "/api/events/:id/checkin-log"},
		{http.MethodGet, "/api/events/e1/report", "/api/events/:id/report"},
		{http.MethodPost, "/api/events/e1/desk", "/api/events/:id/desk"},
		{http.MethodGet, "/api/events/e1/desk", "/api/events/:id/desk"},
		{http.MethodDelete, "/api/events/e1/desk", "/api/events/:id/desk"},
		{http.MethodPost, "/api/events/e1/desk/refresh", "/api/events/:id/desk/refresh"},
		{http.MethodPost, "/api/events/e1/desk/scan", "/api/events/:id/desk/scan"},
		{http.MethodPost, "/api/events/e1/desk/queue", "/api/events/:id/desk/queue"},
		{http.MethodPost, "/api/events/e1/desk/queue/process", "/api/events/:id/desk/queue/process"},
		{http.MethodPost, "/api/events/e1/desk/selection", "/api/events/:id/desk/selection"},
		{http.MethodDelete, "/api/events/e1/desk/selection/r1", "/api/events/:id/desk/selection/:regId"},
		{http.MethodPost, "/api/events/e1/desk/selection/submit", "/api/events/:id/desk/selection/submit"},
		{http.MethodPost, "/api/events/e1/desk/registrations/r1/attendance", "/api/events/:id/desk/registrations/:regId/attendance"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.route, w.Body.String())
		})
	}
}
