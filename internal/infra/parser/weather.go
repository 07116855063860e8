package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"newsdash/internal/domain/entity"
)

const (
	weatherBaseURL = "https://api.openweathermap.org/data/3.0/onecall"

	// Default coordinates used when none are configured.
	DefaultWeatherLat = 40.489632
	DefaultWeatherLon = -111.940018

	weatherSource   = "OpenWeather"
	weatherCategory = "Weather"

	maxForecastDays  = 5
	maxForecastHours = 24
)

// WeatherParser converts an OpenWeather One Call response into exactly two
// entries: current conditions and a five-day forecast. Both carry
// pre-rendered HTML fragments as content; the single-document renderer's
// truncation can cut into that markup, which is preserved behavior.
type WeatherParser struct {
	apiKey  string
	lat     float64
	lon     float64
	baseURL string
	client  *http.Client
	now     func() time.Time
}

// Raw One Call payload shapes.
type oneCallResponse struct {
	Lat      float64         `json:"lat"`
	Lon      float64         `json:"lon"`
	Timezone string          `json:"timezone"`
	Current  oneCallCurrent  `json:"current"`
	Daily    []oneCallDaily  `json:"daily"`
	Hourly   []oneCallHourly `json:"hourly"`
}

type oneCallCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type oneCallCurrent struct {
	Dt        int64              `json:"dt"`
	Sunrise   int64              `json:"sunrise"`
	Sunset    int64              `json:"sunset"`
	Temp      float64            `json:"temp"`
	FeelsLike float64            `json:"feels_like"`
	Pressure  int                `json:"pressure"`
	Humidity  int                `json:"humidity"`
	WindSpeed float64            `json:"wind_speed"`
	WindDeg   int                `json:"wind_deg"`
	Weather   []oneCallCondition `json:"weather"`
}

type oneCallDaily struct {
	Dt      int64  `json:"dt"`
	Summary string `json:"summary"`
	Temp    struct {
		Day float64 `json:"day"`
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"temp"`
	Humidity int                `json:"humidity"`
	Weather  []oneCallCondition `json:"weather"`
	Rain     float64            `json:"rain"`
	Snow     float64            `json:"snow"`
	Pop      float64            `json:"pop"`
}

type oneCallHourly struct {
	Dt        int64              `json:"dt"`
	Temp      float64            `json:"temp"`
	FeelsLike float64            `json:"feels_like"`
	Humidity  int                `json:"humidity"`
	Weather   []oneCallCondition `json:"weather"`
	Pop       float64            `json:"pop"`
}

// Extracted report with UNIX timestamps already converted to local strings.
type weatherReport struct {
	current currentConditions
	daily   []dailyForecast
	hourly  []hourlyForecast
}

type currentConditions struct {
	timestamp   string
	sunrise     string
	sunset      string
	temp        float64
	feelsLike   float64
	pressure    int
	humidity    int
	windSpeed   float64
	windDeg     int
	description string
	main        string
}

type dailyForecast struct {
	date        string
	summary     string
	tempDay     float64
	tempMin     float64
	tempMax     float64
	humidity    int
	description string
	main        string
	rain        float64
	snow        float64
	pop         float64
}

type hourlyForecast struct {
	timestamp   string
	temp        float64
	feelsLike   float64
	humidity    int
	description string
	pop         float64
}

// NewWeatherParser creates an adapter for the One Call endpoint at the given
// coordinates. Pass the default coordinates when no override is configured.
func NewWeatherParser(apiKey string, lat, lon float64, client *http.Client) *WeatherParser {
	return &WeatherParser{
		apiKey:  apiKey,
		lat:     lat,
		lon:     lon,
		baseURL: weatherBaseURL,
		client:  client,
		now:     time.Now,
	}
}

// Name returns the display name of the weather source.
func (p *WeatherParser) Name() string {
	return "Weather Forecast"
}

// Parse fetches current conditions plus forecast in one call and converts
// them into exactly two entries. On any failure it logs and returns whatever
// was accumulated so far.
func (p *WeatherParser) Parse(ctx context.Context) ([]entity.Entry, error) {
	entries := make([]entity.Entry, 0, 2)

	if p.apiKey == "" {
		slog.Warn("weather api key required, skipping source",
			slog.String("source", p.Name()))
		return entries, nil
	}

	payload, err := p.fetch(ctx)
	if err != nil {
		slog.Warn("failed to fetch weather data",
			slog.String("source", p.Name()),
			slog.Any("error", err))
		return entries, nil
	}

	report := extractWeatherReport(payload)

	entries = append(entries, entity.Entry{
		Title:     "Current Weather Conditions",
		Content:   formatCurrentWeather(report.current),
		Published: report.current.timestamp,
		Source:    weatherSource,
		Category:  weatherCategory,
	})

	// The forecast entry is stamped with the adapter's own invocation time,
	// not an upstream timestamp.
	entries = append(entries, entity.Entry{
		Title:     "5-Day Weather Forecast",
		Content:   formatDailyForecast(report.daily),
		Published: p.now().Format("2006-01-02 15:04:05"),
		Source:    weatherSource,
		Category:  weatherCategory,
	})

	return entries, nil
}

func (p *WeatherParser) fetch(ctx context.Context) (*oneCallResponse, error) {
	parsed, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse weather url: %w", err)
	}
	q := parsed.Query()
	q.Set("lat", strconv.FormatFloat(p.lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(p.lon, 'f', -1, 64))
	q.Set("appid", p.apiKey)
	q.Set("units", "imperial")
	parsed.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api returned %s", resp.Status)
	}

	var payload oneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}
	return &payload, nil
}

// extractWeatherReport converts the raw payload into local-time strings and
// caps the hourly forecast at 24 entries.
func extractWeatherReport(payload *oneCallResponse) weatherReport {
	report := weatherReport{
		current: currentConditions{
			timestamp:   time.Unix(payload.Current.Dt, 0).Format("2006-01-02 15:04:05"),
			sunrise:     time.Unix(payload.Current.Sunrise, 0).Format("15:04"),
			sunset:      time.Unix(payload.Current.Sunset, 0).Format("15:04"),
			temp:        payload.Current.Temp,
			feelsLike:   payload.Current.FeelsLike,
			pressure:    payload.Current.Pressure,
			humidity:    payload.Current.Humidity,
			windSpeed:   payload.Current.WindSpeed,
			windDeg:     payload.Current.WindDeg,
			description: firstCondition(payload.Current.Weather).Description,
			main:        firstCondition(payload.Current.Weather).Main,
		},
	}

	for _, day := range payload.Daily {
		report.daily = append(report.daily, dailyForecast{
			date:        time.Unix(day.Dt, 0).Format("2006-01-02"),
			summary:     day.Summary,
			tempDay:     day.Temp.Day,
			tempMin:     day.Temp.Min,
			tempMax:     day.Temp.Max,
			humidity:    day.Humidity,
			description: firstCondition(day.Weather).Description,
			main:        firstCondition(day.Weather).Main,
			rain:        day.Rain,
			snow:        day.Snow,
			pop:         day.Pop,
		})
	}

	hours := payload.Hourly
	if len(hours) > maxForecastHours {
		hours = hours[:maxForecastHours]
	}
	for _, hour := range hours {
		report.hourly = append(report.hourly, hourlyForecast{
			timestamp:   time.Unix(hour.Dt, 0).Format("2006-01-02 15:04"),
			temp:        hour.Temp,
			feelsLike:   hour.FeelsLike,
			humidity:    hour.Humidity,
			description: firstCondition(hour.Weather).Description,
			pop:         hour.Pop,
		})
	}

	return report
}

func firstCondition(conditions []oneCallCondition) oneCallCondition {
	if len(conditions) == 0 {
		return oneCallCondition{}
	}
	return conditions[0]
}

// formatCurrentWeather renders current conditions as an HTML fragment.
func formatCurrentWeather(c currentConditions) string {
	var b strings.Builder
	b.WriteString(`<div class="weather-current">` + "\n")
	fmt.Fprintf(&b, "<p><strong>Current Conditions:</strong> %s - %s</p>\n", c.main, c.description)
	fmt.Fprintf(&b, "<p>Temperature: %s°F (Feels like: %s°F)</p>\n", formatTemp(c.temp), formatTemp(c.feelsLike))
	fmt.Fprintf(&b, "<p>Wind: %s mph</p>\n", formatTemp(c.windSpeed))
	fmt.Fprintf(&b, "<p>Humidity: %d%%</p>\n", c.humidity)
	fmt.Fprintf(&b, "<p>Sunrise: %s, Sunset: %s</p>\n", c.sunrise, c.sunset)
	b.WriteString("</div>")
	return b.String()
}

// formatDailyForecast renders the first five days as HTML. Precipitation
// figures are joined by commas and the paragraph is omitted entirely when
// chance, rain and snow are all zero.
func formatDailyForecast(days []dailyForecast) string {
	if len(days) > maxForecastDays {
		days = days[:maxForecastDays]
	}

	sections := make([]string, 0, len(days))
	for _, day := range days {
		dayName := day.date
		if t, err := time.Parse("2006-01-02", day.date); err == nil {
			dayName = t.Format("Monday")
		}

		var precip []string
		if day.pop > 0 {
			precip = append(precip, fmt.Sprintf("Chance of precipitation: %d%%", int(day.pop*100)))
		}
		if day.rain > 0 {
			precip = append(precip, fmt.Sprintf("Rain: %smm", formatTemp(day.rain)))
		}
		if day.snow > 0 {
			precip = append(precip, fmt.Sprintf("Snow: %smm", formatTemp(day.snow)))
		}

		var b strings.Builder
		b.WriteString(`<div class="weather-day">` + "\n")
		fmt.Fprintf(&b, "<h3>%s</h3>\n", dayName)
		fmt.Fprintf(&b, "<p>%s: %s</p>\n", day.main, day.description)
		fmt.Fprintf(&b, "<p>High: %s°F, Low: %s°F</p>\n", formatTemp(day.tempMax), formatTemp(day.tempMin))
		if len(precip) > 0 {
			fmt.Fprintf(&b, "<p>%s</p>\n", strings.Join(precip, ", "))
		}
		b.WriteString("</div>")
		sections = append(sections, b.String())
	}

	return strings.Join(sections, "\n")
}

// formatTemp renders a float without trailing zeros (72.5 -> "72.5", 70 -> "70").
func formatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
