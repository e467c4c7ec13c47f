package domain

// Weather is the current weather for a city as reported by OpenWeather.
// Temperatures are in degrees Celsius.
type Weather struct {
	Name       string             `json:"name"`
	Main       WeatherMain        `json:"main"`
	Conditions []WeatherCondition `json:"weather"`
	Wind       Wind               `json:"wind"`
	Sys        WeatherSys         `json:"sys"`
	Timestamp  int64              `json:"dt"`
}

// WeatherMain holds temperature, pressure and humidity readings.
type WeatherMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// WeatherCondition is a single condition such as "light rain".
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Wind holds wind speed (m/s) and direction (degrees).
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// WeatherSys holds location metadata.
type WeatherSys struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// Description returns the first condition description or an empty string.
func (w *Weather) Description() string {
	if len(w.Conditions) == 0 {
		return ""
	}
	return w.Conditions[0].Description
}
