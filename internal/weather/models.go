package weather

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// UnknownPlace is used for the name and country when reverse geocoding
// returns no usable address parts.
const UnknownPlace = "Unknown"

// Coordinates is a point on the globe in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both components are inside their geographic range.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// PlaceCandidate is one forward-geocoding match. Several candidates may share a name.
type PlaceCandidate struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Region  string `json:"admin1"`
	Coordinates
}

// ResolvedLocation is the single place a query resolved to.
type ResolvedLocation struct {
	Name        string
	Country     string
	Coordinates Coordinates
}

// Address is the raw place description returned by a reverse geocoder.
type Address struct {
	City    string
	Town    string
	Village string
	Country string
}

// Conditions is a current-conditions payload as reported by the upstream,
// already in Celsius, percent and km/h.
type Conditions struct {
	Temperature float64
	Humidity    float64
	WindSpeed   float64
	Condition   Condition
}

// Reading is the normalized current weather for one location.
// Temperature is in °C, Humidity in percent and WindSpeed in km/h.
type Reading struct {
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	Condition   Condition `json:"condition,omitempty"`
}
