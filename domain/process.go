package domain

type PID int32
type PIDStatus string

const (
	RUNNING PIDStatus = "RUNNING"
	SLEEP   PIDStatus = "SLEEP"
	STOP    PIDStatus = "STOP"
	IDLE    PIDStatus = "IDLE"
	ZOMBIE  PIDStatus = "ZOMBIE"
	WAIT    PIDStatus = "WAIT"
	LOCK    PIDStatus = "LOCK"
	UNKNOWN PIDStatus = "UNKNOWN"
)

// ToStatus maps gopsutil single-letter process states.
func ToStatus(status string) PIDStatus {
	switch status {
	case "R":
		return RUNNING
	case "S":
		return SLEEP
	case "T":
		return STOP
	case "I":
		return IDLE
	case "Z":
		return ZOMBIE
	case "W":
		return WAIT
	case "L":
		return LOCK
	default:
		return UNKNOWN
	}
}
