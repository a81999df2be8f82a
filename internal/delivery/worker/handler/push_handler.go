// Package handler holds the worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"venmito/config"
	deliverycontext "venmito/internal/delivery/context"
	"venmito/internal/domain/constants"
	"venmito/internal/domain/service"
	"venmito/internal/infra/metrics"
	"venmito/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// eventRecorder is the part of the metrics registry the worker feeds.
type eventRecorder interface {
	ObserveEvent(family string, lag time.Duration)
}

// tokenVerifier validates the bearer token of a push request.
type tokenVerifier func(req *http.Request) error

// PushHandler consumes committed-batch events pushed by Pub/Sub
type PushHandler struct {
	verify  tokenVerifier
	logger  *slog.Logger
	metrics eventRecorder
	now     func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Registry
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger: params.Logger,
		now:    time.Now,
	}
	if params.Metrics != nil {
		h.metrics = params.Metrics
	}

	// Google signs push requests; the local publisher does not.
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// HandlePush acknowledges one ingestion event.
// Undecodable messages answer 400 and events for unknown families are acknowledged and dropped,
// so Pub/Sub never redelivers a message that can not succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.IngestionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse ingestion event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	_, reqLogger := deliverycontext.WithRequestScope(ctx, h.extractRequestID(ctx, &pushMsg, &event), h.logger)

	if !slices.Contains(constants.Families, event.Family) {
		reqLogger.Warn("[Worker] Dropping event for unknown family",
			slog.String("event_id", event.EventID),
			slog.String("family", event.Family),
		)

		return c.NoContent(http.StatusOK)
	}

	var lag time.Duration
	if !event.CompletedAt.IsZero() {
		lag = h.now().Sub(event.CompletedAt)
	}
	if h.metrics != nil {
		h.metrics.ObserveEvent(event.Family, lag)
	}

	reqLogger.Info("[Worker] Ingestion batch committed",
		slog.String("event_id", event.EventID),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("family", event.Family),
		slog.Int("received", event.Received),
		slog.Int("succeeded", event.Succeeded),
		slog.Int("skipped", event.Skipped),
		slog.Duration("lag", lag),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.IngestionEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
