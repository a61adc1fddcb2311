package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/metrics"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/middleware"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/progress"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/service"
)

const progressWriteTimeout = 10 * time.Second

// ProgressHandler streams job progress over a websocket.
type ProgressHandler struct {
	importService service.ImportServiceInterface
	subscriber    progress.Subscriber
	upgrader      websocket.Upgrader
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(importService service.ImportServiceInterface, subscriber progress.Subscriber) *ProgressHandler {
	return &ProgressHandler{
		importService: importService,
		subscriber:    subscriber,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Watch handles GET /api/v1/imports/:id/ws
//
// The first message is a snapshot of the job. Every batch after that produces
// one event. The stream closes after the terminal event or when the client
// goes away.
func (h *ProgressHandler) Watch(c *gin.Context) {
	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	tenantID := middleware.GetTenantID(c)

	// Subscribe before taking the snapshot so no batch falls between the two.
	events, unsubscribe, err := h.subscriber.Subscribe(ctx, jobID)
	if err != nil {
		respondError(c, err, "subscribe to progress")
		return
	}
	defer unsubscribe()

	view, err := h.importService.GetJobStatus(ctx, tenantID, jobID)
	if err != nil {
		respondError(c, err, "get import status")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		slog.WarnContext(ctx, "Websocket upgrade failed",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	metrics.ProgressSubscribers.Inc()
	defer metrics.ProgressSubscribers.Dec()

	snapshot := domain.ProgressEvent{
		JobID:      view.ID,
		TenantID:   tenantID,
		Status:     view.Status,
		Processed:  view.Processed,
		Total:      view.TotalRecords,
		Successful: view.Successful,
		Failed:     view.Failed,
		Percentage: view.Percentage,
		At:         time.Now().UTC(),
	}
	if err := writeEvent(conn, snapshot); err != nil || snapshot.Status.IsTerminal() {
		closeStream(conn)
		return
	}

	// Client messages are ignored; reading only detects the disconnect.
	// The server read timeout must not end a long stream.
	_ = conn.SetReadDeadline(time.Time{})
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return
		case event, ok := <-events:
			if !ok {
				closeStream(conn)
				return
			}
			if err := writeEvent(conn, event); err != nil {
				slog.DebugContext(ctx, "Progress write failed",
					slog.String("job_id", jobID),
					slog.String("error", err.Error()))
				return
			}
			if event.Status.IsTerminal() {
				closeStream(conn)
				return
			}
		}
	}
}

func writeEvent(conn *websocket.Conn, event domain.ProgressEvent) error {
	_ = conn.SetWriteDeadline(time.Now().Add(progressWriteTimeout))
	return conn.WriteJSON(event)
}

func closeStream(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}
