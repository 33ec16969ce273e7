package interview

type CreatedEvent struct {
	Data   CreateDTO
	Result WithDetails
}

type UpdatedEvent struct {
	Data   UpdateDTO
	Result WithDetails
}

type StatusChangedEvent struct {
	ID     string
	Status Status
	Result WithDetails
}
