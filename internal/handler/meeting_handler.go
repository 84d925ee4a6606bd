package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-scheduler-api/internal/middleware"
	"meeting-scheduler-api/internal/model"
)

func userID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// serverError logs err and answers 500. The error detail is exposed to the
// caller outside production only.
func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.log.Error(msg, "error", err)
	body := gin.H{"message": msg}
	if !h.production {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Meeting Scheduler API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) ListMeetings(c *gin.Context) {
	meetings, err := h.store.ListMeetings(c.Request.Context())
	if err != nil {
		h.serverError(c, "Server error fetching meetings", err)
		return
	}
	if meetings == nil {
		meetings = []model.Meeting{}
	}
	c.JSON(http.StatusOK, meetings)
}

func (h *Handler) MeetingStats(c *gin.Context) {
	stats, err := h.store.MeetingStats(c.Request.Context())
	if err != nil {
		h.serverError(c, "Server error fetching statistics", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetMeeting(c *gin.Context) {
	m, err := h.store.GetMeeting(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meeting not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) CreateMeeting(c *gin.Context) {
	var m model.Meeting
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if m.Title == "" || m.Venue == "" || m.CompanyA.Name == "" || m.CompanyB.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title, venue, Company A and Company B are required"})
		return
	}
	if !model.ValidLocation(m.Location) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Location must be SG, MUM or empty"})
		return
	}

	m.ID = uuid.New().String()
	m.CreatedBy = userID(c)
	m.Status = model.StatusScheduled
	m.InvitationsSent = false
	if m.Date.IsZero() {
		m.Date = time.Now()
	}

	if err := h.store.CreateMeeting(c.Request.Context(), &m); err != nil {
		h.serverError(c, "Server error creating meeting", err)
		return
	}

	// best-effort notify: the meeting exists whether or not the emails land
	if err := h.mailer.SendMeetingInvitation(c.Request.Context(), &m); err != nil {
		h.log.Error("invitation dispatch failed", "meeting", m.ID, "error", err)
	} else {
		m.InvitationsSent = true
		if err := h.store.SetInvitationsSent(c.Request.Context(), m.ID, true); err != nil {
			h.log.Error("invitations_sent update failed", "meeting", m.ID, "error", err)
		}
	}

	c.JSON(http.StatusCreated, m)
}

func (h *Handler) UpdateMeeting(c *gin.Context) {
	m, err := h.store.GetMeeting(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meeting not found"})
		return
	}

	// overlay: only fields present in the body change
	id, createdBy, createdAt := m.ID, m.CreatedBy, m.CreatedAt
	if err := c.ShouldBindJSON(m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	m.ID, m.CreatedBy, m.CreatedAt = id, createdBy, createdAt

	if !model.ValidLocation(m.Location) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Location must be SG, MUM or empty"})
		return
	}

	if err := h.store.UpdateMeeting(c.Request.Context(), m); err != nil {
		h.serverError(c, "Server error updating meeting", err)
		return
	}

	// re-send updated invitations, best-effort
	if err := h.mailer.SendMeetingInvitation(c.Request.Context(), m); err != nil {
		h.log.Error("updated invitation dispatch failed", "meeting", m.ID, "error", err)
	}

	c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMeeting(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.store.GetMeeting(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meeting not found"})
		return
	}
	if err := h.store.DeleteMeeting(c.Request.Context(), id); err != nil {
		h.serverError(c, "Server error deleting meeting", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted successfully"})
}

type partyJoinedRequest struct {
	JoinedParticipant model.Participant `json:"joinedParticipant"`
}

func (h *Handler) PartyJoined(c *gin.Context) {
	m, err := h.store.GetMeeting(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meeting not found"})
		return
	}

	var req partyJoinedRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.JoinedParticipant.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Joined participant information is required"})
		return
	}

	if err := h.mailer.SendPartyJoinedNotification(c.Request.Context(), m, req.JoinedParticipant); err != nil {
		h.serverError(c, "Server error sending notification", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification sent successfully"})
}
