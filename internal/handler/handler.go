package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rollcall/internal/auth"
	"rollcall/internal/ledger"
	"rollcall/internal/roster"
	"rollcall/internal/snapshot"
)

// Counter serves cached per-event attendance counts. ok=false means no cached
// value yet, and the handler counts from the snapshot instead. nil is allowed.
type Counter interface {
	AttendeeCount(ctx context.Context, eventID string) (int, bool)
}

// SessionConfig carries what the session endpoint needs to mint tokens.
type SessionConfig struct {
	Issuer     string
	SigningKey string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Handler owns the HTTP surface. Writes go through the ledger service; reads
// come from the snapshot cache, refreshed by change notifications.
type Handler struct {
	svc      *ledger.Service
	cache    *snapshot.Cache
	counts   Counter
	sessions SessionConfig
	now      func() time.Time
}

// New creates a handler.
func New(svc *ledger.Service, cache *snapshot.Cache, counts Counter, sessions SessionConfig) *Handler {
	return &Handler{svc: svc, cache: cache, counts: counts, sessions: sessions, now: time.Now}
}

// WithClock overrides the clock, for tests.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// Register wires the routes onto a router group.
func (h *Handler) Register(r *gin.Engine, authed *gin.RouterGroup) {
	r.POST("/v1/session", h.CreateSession)

	authed.POST("/events", h.CreateEvent)
	authed.GET("/events", h.ListEvents)
	authed.GET("/events/:id/attendance", h.EventAttendance)
	authed.GET("/dashboard", h.Dashboard)
	authed.POST("/students", h.RegisterStudent)
	authed.GET("/students", h.ListStudents)
	authed.GET("/students/suggest", h.SuggestStudents)
	authed.POST("/attendance/login", h.Login)
	authed.POST("/attendance/:id/logout", h.Logout)
	authed.GET("/history", h.History)
}

// CreateSession issues an anonymous token pair. No credentials are required;
// the subject is a fresh opaque session id.
func (h *Handler) CreateSession(c *gin.Context) {
	tokens, err := auth.Issue(uuid.NewString(), h.sessions.Issuer, h.sessions.SigningKey,
		h.sessions.AccessTTL, h.sessions.RefreshTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_at":    tokens.AccessExp.Unix(),
	})
}

// CreateEvent handles the create-event form.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Date        string `json:"date"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	evt, err := h.svc.CreateEvent(c.Request.Context(), req.Title, req.Date, req.Description)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, roster.EventView{
		Event:  evt,
		Status: roster.ResolveStatus(evt.Date, h.now()),
	})
}

// ListEvents returns all events newest first, with derived status and
// attendee counts.
func (h *Handler) ListEvents(c *gin.Context) {
	snap := h.cache.Current()
	now := h.now()
	events := roster.SortByDateDesc(snap.Events)
	out := make([]roster.EventView, 0, len(events))
	for _, evt := range events {
		out = append(out, roster.EventView{
			Event:     evt,
			Status:    roster.ResolveStatus(evt.Date, now),
			Attendees: h.attendees(c, snap, evt.ID),
		})
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

// Dashboard returns today's events and up to five recent non-upcoming events.
func (h *Handler) Dashboard(c *gin.Context) {
	snap := h.cache.Current()
	now := h.now()
	c.JSON(http.StatusOK, gin.H{
		"today":  h.views(c, snap, roster.TodaysEvents(snap.Events, now), now),
		"recent": h.views(c, snap, roster.RecentEvents(snap.Events, now, 5), now),
	})
}

// EventAttendance returns one event's records for a session slot, windowed.
func (h *Handler) EventAttendance(c *gin.Context) {
	eventID := c.Param("id")
	session := roster.Session(c.DefaultQuery("session", string(roster.SessionMorning)))
	if !session.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": roster.ErrInvalidSession.Error()})
		return
	}

	snap := h.cache.Current()
	var eventRecords []roster.AttendanceRecord
	for _, rec := range snap.Records {
		if rec.EventID == eventID {
			eventRecords = append(eventRecords, rec)
		}
	}
	filtered := roster.FilterBySession(eventRecords, session)
	window := roster.ApplyWindow(filtered, c.Query("expanded") == "true")
	c.JSON(http.StatusOK, gin.H{
		"event_id": eventID,
		"session":  session,
		"window":   window,
	})
}

// RegisterStudent handles the add-student form.
func (h *Handler) RegisterStudent(c *gin.Context) {
	var req struct {
		FullName string `json:"full_name"`
		Strand   string `json:"strand"`
		Grade    string `json:"grade"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, err := h.svc.RegisterStudent(c.Request.Context(), req.FullName, req.Strand, req.Grade)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// ListStudents returns every registered student in registration order.
func (h *Handler) ListStudents(c *gin.Context) {
	snap := h.cache.Current()
	c.JSON(http.StatusOK, gin.H{"students": snap.Students})
}

// SuggestStudents returns name suggestions for the login search box.
func (h *Handler) SuggestStudents(c *gin.Context) {
	snap := h.cache.Current()
	matches := roster.Suggest(snap.Students, c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"students": matches})
}

// Login opens an attendance record for a student.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		StudentName string `json:"student_name"`
		EventID     string `json:"event_id"`
		Session     string `json:"session"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.svc.Login(c.Request.Context(), req.StudentName, req.EventID, roster.Session(req.Session))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Logout stamps the logout time on a record.
func (h *Handler) Logout(c *gin.Context) {
	rec, err := h.svc.Logout(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// History returns all records grouped by event, each group windowed
// independently. expanded is a comma-separated list of event ids whose
// groups the caller has toggled open.
func (h *Handler) History(c *gin.Context) {
	expanded := make(map[string]bool)
	for _, id := range strings.Split(c.Query("expanded"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			expanded[id] = true
		}
	}
	snap := h.cache.Current()
	c.JSON(http.StatusOK, gin.H{"groups": roster.BuildHistory(snap.Records, expanded)})
}

func (h *Handler) views(c *gin.Context, snap *snapshot.Snapshot, events []roster.Event, now time.Time) []roster.EventView {
	out := make([]roster.EventView, 0, len(events))
	for _, evt := range events {
		out = append(out, roster.EventView{
			Event:     evt,
			Status:    roster.ResolveStatus(evt.Date, now),
			Attendees: h.attendees(c, snap, evt.ID),
		})
	}
	return out
}

// attendees prefers the worker-maintained cached count and falls back to
// counting the snapshot.
func (h *Handler) attendees(c *gin.Context, snap *snapshot.Snapshot, eventID string) int {
	if h.counts != nil {
		if n, ok := h.counts.AttendeeCount(c.Request.Context(), eventID); ok {
			return n
		}
	}
	n := 0
	for _, rec := range snap.Records {
		if rec.EventID == eventID {
			n++
		}
	}
	return n
}

// fail maps domain errors onto HTTP statuses. Store failures surface their
// message verbatim.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, roster.ErrMissingFields), errors.Is(err, roster.ErrInvalidSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, roster.ErrStudentNotFound),
		errors.Is(err, roster.ErrEventNotFound),
		errors.Is(err, roster.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, roster.ErrAlreadyLoggedIn):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
