package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

func setupHealthRouter(p Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(p, time.Now(), "test").RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	w := doGet(setupHealthRouter(fakePinger{}), "/health", true)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	resp := decode[HealthResponse](t, w)
	if resp.Status != "ok" || resp.Version != "test" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestReady_DatabaseUp(t *testing.T) {
	w := doGet(setupHealthRouter(fakePinger{}), "/ready", true)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	resp := decode[HealthResponse](t, w)
	if resp.DB == nil || resp.DB.Status != "up" {
		t.Errorf("expected db up, got %+v", resp.DB)
	}
}

func TestReady_DatabaseDown(t *testing.T) {
	w := doGet(setupHealthRouter(fakePinger{err: errors.New("connection refused")}), "/ready", true)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
	resp := decode[HealthResponse](t, w)
	if resp.DB == nil || resp.DB.Error != "connection refused" {
		t.Errorf("expected db error, got %+v", resp.DB)
	}
}
