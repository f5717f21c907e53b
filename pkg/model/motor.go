package model

// Motor types.
const (
	MotorPID = "PID"
	MotorDC  = "DC"
)

// validMotorTypes is the set of recognized motor type values.
var validMotorTypes = map[string]bool{
	MotorPID: true,
	MotorDC:  true,
}

// ValidMotorType reports whether mt is a recognized motor type.
func ValidMotorType(mt string) bool {
	return validMotorTypes[mt]
}

// MotorRecord holds the motor metadata persisted on a link. P, I and D are
// meaningful for PID motors only.
type MotorRecord struct {
	Type      string  `json:"type"`
	P         float64 `json:"p,omitempty"`
	I         float64 `json:"i,omitempty"`
	D         float64 `json:"d,omitempty"`
	MaxSpeed  float64 `json:"max_speed"`  // rad/s
	MaxEffort float64 `json:"max_effort"` // N·m
}

// MotorParams carries the operator inputs for attaching a motor to a link.
// VmaxRPM is converted to rad/s when the record is written.
type MotorParams struct {
	Type     string
	P        float64
	I        float64
	D        float64
	VmaxRPM  float64
	TaumaxNm float64
}
