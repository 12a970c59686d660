package mode

// NoTargetProvided is returned when change mode has neither an explicit nor a random target
type NoTargetProvided struct {
}

func NewNoTargetProvided() NoTargetProvided {
	return NoTargetProvided{}
}

func (n NoTargetProvided) Error() string {
	return "either --mac or --random is required"
}

// ConflictingTargets is returned when both an explicit and a random target are given
type ConflictingTargets struct {
}

func NewConflictingTargets() ConflictingTargets {
	return ConflictingTargets{}
}

func (c ConflictingTargets) Error() string {
	return "--mac and --random are mutually exclusive"
}
