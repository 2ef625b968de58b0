package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	assert.Equal(t, commandServe, parseCommand(nil))
	assert.Equal(t, commandServe, parseCommand([]string{"serve"}))
	assert.Equal(t, commandServe, parseCommand([]string{"whatever"}))
	assert.Equal(t, commandHealthcheck, parseCommand([]string{"healthcheck"}))
}

func TestRunHealthcheck(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	assert.NoError(t, runHealthcheck(context.Background(), srv.URL+"/health"))

	status = http.StatusServiceUnavailable
	assert.Error(t, runHealthcheck(context.Background(), srv.URL+"/health"))

	assert.Error(t, runHealthcheck(context.Background(), "http://127.0.0.1:1/health"))
}
