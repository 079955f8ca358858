package domain

import "time"

// AppointmentStatus represents the status of a persisted appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a committed appointment record. This service only
// reads appointments (they are written by the booking workflow) and uses
// the active ones as busy time when computing availability.
type Appointment struct {
	ID         int64
	ClientName string
	StartTime  time.Time
	EndTime    time.Time
	Status     AppointmentStatus
	Location   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still blocks its time slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// BusyInterval returns the appointment's time as a busy interval
func (a *Appointment) BusyInterval() Interval {
	iv := Interval{Start: a.StartTime, End: a.EndTime}
	if a.Location != nil {
		iv.Location = *a.Location
	}
	return iv
}

// ActiveStatuses список статусов, при которых запись занимает своё время
// Используется при выборке busy-интервалов
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
