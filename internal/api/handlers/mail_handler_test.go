package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/pollwise/newsvote-be/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMailService struct {
	err  error
	last services.ContactMessage
	sent bool
}

func (s *stubMailService) Send(ctx context.Context, msg services.ContactMessage) error {
	s.last = msg
	s.sent = true
	return s.err
}

func TestSendEmailRelaysMessage(t *testing.T) {
	stub := &stubMailService{}
	handler := NewMailHandler(stub)

	w := postJSON(t, handler.Send, "/send-email", EmailPayload{
		Name:    "Ann",
		Email:   "ann@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, stub.sent)
	assert.Equal(t, "Hello", stub.last.Subject)
}

func TestSendEmailRelayFailureReturns500(t *testing.T) {
	stub := &stubMailService{err: errors.New("relay down")}
	handler := NewMailHandler(stub)

	w := postJSON(t, handler.Send, "/send-email", EmailPayload{
		Name:    "Ann",
		Email:   "ann@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSendEmailInvalidAddressReturns400(t *testing.T) {
	stub := &stubMailService{}
	handler := NewMailHandler(stub)

	w := postJSON(t, handler.Send, "/send-email", EmailPayload{
		Name:    "Ann",
		Email:   "not-an-email",
		Subject: "Hello",
		Message: "Hi there",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, stub.sent)
}
