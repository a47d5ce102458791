package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hrmspro/hrms-backend-go/internal/domain/announcement"
	"github.com/hrmspro/hrms-backend-go/internal/domain/chat"
	"github.com/hrmspro/hrms-backend-go/internal/handler/http/response"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrmspro/hrms-backend-go/internal/pkg/sse"
	"github.com/go-chi/chi/v5"
)

type CommunicationHandler interface {
	SendMessage(w http.ResponseWriter, r *http.Request)
	ChatHistory(w http.ResponseWriter, r *http.Request)
	Contacts(w http.ResponseWriter, r *http.Request)
	StreamToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
	PostAnnouncement(w http.ResponseWriter, r *http.Request)
	LatestAnnouncement(w http.ResponseWriter, r *http.Request)
}

type communicationHandlerImpl struct {
	chatService         chat.ChatService
	announcementService announcement.AnnouncementService
	jwtService          jwt.Service
	hub                 *sse.Hub
}

func NewCommunicationHandler(chatService chat.ChatService, announcementService announcement.AnnouncementService, jwtService jwt.Service, hub *sse.Hub) CommunicationHandler {
	return &communicationHandlerImpl{
		chatService:         chatService,
		announcementService: announcementService,
		jwtService:          jwtService,
		hub:                 hub,
	}
}

// SendMessage implements CommunicationHandler.
func (h *communicationHandlerImpl) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req chat.SendMessageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Send message decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.chatService.Send(r.Context(), req)
	if err != nil {
		slog.Error("Send message service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Message sent", result)
}

// ChatHistory implements CommunicationHandler.
func (h *communicationHandlerImpl) ChatHistory(w http.ResponseWriter, r *http.Request) {
	result, err := h.chatService.History(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		slog.Error("Chat history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Contacts implements CommunicationHandler.
func (h *communicationHandlerImpl) Contacts(w http.ResponseWriter, r *http.Request) {
	result, err := h.chatService.Contacts(r.Context())
	if err != nil {
		slog.Error("Contacts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// StreamToken implements CommunicationHandler. EventSource cannot send
// an Authorization header, so the client trades its access token for a
// short-lived stream token passed as a query parameter.
func (h *communicationHandlerImpl) StreamToken(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateStreamToken(identity.EmployeeID)
	if err != nil {
		slog.Error("Stream token error", "error", err)
		response.InternalServerError(w, "Failed to generate stream token")
		return
	}

	response.Success(w, map[string]interface{}{
		"stream_token": token,
		"expires_in":   expiresIn,
	})
}

// Stream implements CommunicationHandler. Pushes chat messages and
// announcements to the connected client over SSE.
func (h *communicationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	employeeID, err := h.jwtService.ValidateStreamToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(employeeID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"employee_id\":%q}\n\n", employeeID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

// PostAnnouncement implements CommunicationHandler.
func (h *communicationHandlerImpl) PostAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req announcement.PostRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Post announcement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.announcementService.Post(r.Context(), req)
	if err != nil {
		slog.Error("Post announcement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement posted", result)
}

// LatestAnnouncement implements CommunicationHandler. Data is null when
// nothing has been announced yet.
func (h *communicationHandlerImpl) LatestAnnouncement(w http.ResponseWriter, r *http.Request) {
	result, err := h.announcementService.Latest(r.Context())
	if err != nil {
		slog.Error("Latest announcement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
