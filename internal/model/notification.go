// internal/model/notification.go
package model

import "time"

type NotificationKind string

const (
	NotifyMeetingScheduled     NotificationKind = "meeting_scheduled"
	NotifyMeetingUpdated       NotificationKind = "meeting_updated"
	NotifyMeetingCanceled      NotificationKind = "meeting_canceled"
	NotifyMeetingEvicted       NotificationKind = "meeting_evicted"
	NotifyRoomMeetingsRemoved  NotificationKind = "room_meetings_removed"
	NotifyStrikeIssued         NotificationKind = "strike_issued"
	NotifyOrganizationApproved NotificationKind = "organization_approved"
	NotifyOrganizationRejected NotificationKind = "organization_rejected"
	NotifyMemberApproved       NotificationKind = "member_approved"
)

// RemovedMeeting is one entry of an aggregated eviction notice.
type RemovedMeeting struct {
	Title     string
	StartTime time.Time
}

// NotificationEvent describes something an organization should hear about.
// Exactly which fields are meaningful depends on Kind.
type NotificationEvent struct {
	Kind    NotificationKind
	Meeting *Meeting
	// RoomName is the display name for Meeting's room, "Virtual" when unset.
	RoomName string
	// Removed carries the per-organization batch for RoomMeetingsRemoved.
	Removed []RemovedMeeting
	// Reason carries free text for strikes and rejections.
	Reason string
}
