package prediction

// ValidationKind names the input constraint a reading violated.
type ValidationKind int

const (
	InvalidInput ValidationKind = iota + 1
	TemperatureOutOfRange
	HumidityOutOfRange
	WindSpeedOutOfRange
)

func (k ValidationKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case TemperatureOutOfRange:
		return "temperature_out_of_range"
	case HumidityOutOfRange:
		return "humidity_out_of_range"
	case WindSpeedOutOfRange:
		return "wind_speed_out_of_range"
	default:
		return "unknown"
	}
}

// ValidationError is a client input fault. Its message is user facing.
type ValidationError struct {
	Kind ValidationKind
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case InvalidInput:
		return "Invalid input values"
	case TemperatureOutOfRange:
		return "Temperature must be between -50 and 50°C"
	case HumidityOutOfRange:
		return "Humidity must be between 0 and 100%"
	case WindSpeedOutOfRange:
		return "Wind Speed must be between 0 and 100 km/h"
	default:
		return "Invalid input values"
	}
}
