package event

import "reflect"

type Event interface {
	Type() string
}

const (
	SessionClosedEventType     = "SessionClosedEvent"
	EnrollmentUpdatedEventType = "EnrollmentUpdatedEvent"
)

var Registry = map[string]reflect.Type{
	SessionClosedEventType:     reflect.TypeOf(SessionClosedEvent{}),
	EnrollmentUpdatedEventType: reflect.TypeOf(EnrollmentUpdatedEvent{}),
}
