package server

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"moodbot/app/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	mu    sync.Mutex
	err   error
	panics bool

	senders []string
	texts   []string
}

func (f *fakeProcessor) ProcessMessage(_ context.Context, senderID, text string) error {
	f.mu.Lock()
	f.senders = append(f.senders, senderID)
	f.texts = append(f.texts, text)
	f.mu.Unlock()

	if f.panics {
		panic("pipeline exploded")
	}

	return f.err
}

func postWebhook(t *testing.T, s *Server, form string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, "/twilio/receiveMessage", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Addr: ":0"},
	}
}

func TestStatusEndpoint(t *testing.T) {
	s := newServer(testConfig(), &fakeProcessor{})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "twilio/receiveMessage")
}

func TestInboundMessageAcked(t *testing.T) {
	processor := &fakeProcessor{}
	s := newServer(testConfig(), processor)

	status, body := postWebhook(t, s, "Body=hello&From=%2B1555")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body)

	require.Len(t, processor.senders, 1)
	assert.Equal(t, "+1555", processor.senders[0])
	assert.Equal(t, "hello", processor.texts[0])
}

func TestInboundMissingFields(t *testing.T) {
	processor := &fakeProcessor{}
	s := newServer(testConfig(), processor)

	status, _ := postWebhook(t, s, "From=%2B1555")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postWebhook(t, s, "Body=hello")
	assert.Equal(t, fiber.StatusBadRequest, status)

	assert.Empty(t, processor.senders, "malformed requests must not reach the pipeline")
}

func TestInboundPipelineErrorStillAcks(t *testing.T) {
	s := newServer(testConfig(), &fakeProcessor{err: errors.New("collaborator down")})

	status, body := postWebhook(t, s, "Body=hello&From=%2B1555")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body)
}

func TestInboundPipelinePanicStillAcks(t *testing.T) {
	s := newServer(testConfig(), &fakeProcessor{panics: true})

	status, body := postWebhook(t, s, "Body=hello&From=%2B1555")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", body)
}
