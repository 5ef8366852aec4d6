package event

type EnrollmentUpdatedEvent struct {
	UserID string `json:"user_id"`
}

func (e EnrollmentUpdatedEvent) Type() string {
	return EnrollmentUpdatedEventType
}
