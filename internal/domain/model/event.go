package model

import (
	"errors"
	"strings"
	"time"
)

const (
	// EventDateLayout is the backend's wire format for event dates.
	EventDateLayout = "2006-01-02"
	// EventTimeLayout is the backend's wire format for event start times.
	EventTimeLayout = "15:04:05"
)

// Event is a scheduled game night.
type Event struct {
	ID                   int64  `json:"id"`
	EventName            string `json:"eventName"`
	EventDate            string `json:"eventDate"`
	EventTime            string `json:"eventTime"`
	Location             string `json:"location"`
	Description          string `json:"description"`
	MaxParticipants      int    `json:"maxParticipants"`
	CurrentRegistrations int    `json:"currentRegistrations"`
	GameTitle            string `json:"gameTitle"`
	CreatorID            int64  `json:"creatorId"`
	CreatorName          string `json:"creatorName,omitempty"`
}

// StartsAt combines EventDate and EventTime in loc. A missing time means midnight.
func (e Event) StartsAt(loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(EventDateLayout, strings.TrimSpace(e.EventDate), loc)
	if err != nil {
		return time.Time{}, false
	}
	tm := strings.TrimSpace(e.EventTime)
	if tm == "" {
		return d, true
	}
	// Accept both HH:MM:SS and HH:MM.
	for _, layout := range []string{EventTimeLayout, "15:04"} {
		if t, err := time.ParseInLocation(layout, tm, loc); err == nil {
			return d.Add(time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second), true
		}
	}
	return d, true
}

// Full reports whether no seats remain.
func (e Event) Full() bool {
	return e.MaxParticipants > 0 && e.CurrentRegistrations >= e.MaxParticipants
}

// EventCreateRequest schedules a new event.
type EventCreateRequest struct {
	EventName       string `json:"eventName"`
	EventDate       string `json:"eventDate"`
	EventTime       string `json:"eventTime"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	MaxParticipants int    `json:"maxParticipants"`
	GameTitle       string `json:"gameTitle"`
}

// Validate validates EventCreateRequest and normalizes the time to HH:MM:SS.
func (r *EventCreateRequest) Validate() error {
	r.EventName = strings.TrimSpace(r.EventName)
	if r.EventName == "" {
		return errors.New("event name is required")
	}
	if _, err := time.Parse(EventDateLayout, strings.TrimSpace(r.EventDate)); err != nil {
		return errors.New("event date must be YYYY-MM-DD")
	}
	r.EventDate = strings.TrimSpace(r.EventDate)
	tm := strings.TrimSpace(r.EventTime)
	if t, err := time.Parse("15:04", tm); err == nil {
		tm = t.Format(EventTimeLayout)
	} else if _, err := time.Parse(EventTimeLayout, tm); err != nil {
		return errors.New("event time must be HH:MM")
	}
	r.EventTime = tm
	if strings.TrimSpace(r.Location) == "" {
		return errors.New("location is required")
	}
	if r.MaxParticipants <= 0 {
		return errors.New("max participants must be > 0")
	}
	if strings.TrimSpace(r.GameTitle) == "" {
		return errors.New("game title is required")
	}
	return nil
}

// ParticipationStatus is the state of a registration.
type ParticipationStatus string

const (
	ParticipationPending ParticipationStatus = "PENDING"
	ParticipationAttend  ParticipationStatus = "ATTEND"
	ParticipationAbsent  ParticipationStatus = "ABSENT"
)

// EventRegistration links a participant to an event.
type EventRegistration struct {
	ParticipantID   int64               `json:"participantId"`
	EventID         int64               `json:"eventId"`
	Status          ParticipationStatus `json:"status"`
	MaxParticipants int                 `json:"maxParticipants,omitempty"`
}

// EventRegistrationRequest registers a participant for an event.
type EventRegistrationRequest struct {
	ParticipantID int64 `json:"participantId"`
	EventID       int64 `json:"eventId"`
}
