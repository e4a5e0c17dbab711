package entity

import (
	"fmt"
	"time"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// JoinRequest is one user's request to join a channel. It leaves the pending
// state exactly once and is kept afterwards for export.
type JoinRequest struct {
	ID          int64
	ChannelID   int64
	UserID      int64
	Username    string
	FullName    string
	Status      RequestStatus
	CreatedAt   time.Time
	ProcessedBy *int64
	ProcessedAt *time.Time
}

func (r *JoinRequest) IsPending() bool {
	return r.Status == StatusPending
}

// DisplayName renders "Full Name (@username)", falling back to whichever part is set.
func (r *JoinRequest) DisplayName() string {
	switch {
	case r.FullName != "" && r.Username != "":
		return fmt.Sprintf("%s (@%s)", r.FullName, r.Username)
	case r.FullName != "":
		return r.FullName
	case r.Username != "":
		return "@" + r.Username
	default:
		return fmt.Sprintf("user %d", r.UserID)
	}
}

// JoinRequestEvent is an inbound join request as delivered by the chat platform.
type JoinRequestEvent struct {
	ChannelID    int64
	ChannelTitle string
	UserID       int64
	Username     string
	FullName     string
	At           time.Time
}

// Admission is the policy decision for an inbound join request.
type Admission int

const (
	AdmissionReject Admission = iota
	AdmissionEnqueue
	AdmissionApprove
)

func (a Admission) String() string {
	switch a {
	case AdmissionApprove:
		return "approve"
	case AdmissionEnqueue:
		return "enqueue"
	default:
		return "reject"
	}
}

// EnqueueResult tells whether enqueue created a new request or found the pending one.
type EnqueueResult struct {
	Request   *JoinRequest
	Duplicate bool
}
