package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/study-air/internal/models"
)

// simConfig controls a simulation run.
type simConfig struct {
	APIURL   string
	Flights  int
	SpeedKmh float64
	Tick     time.Duration
}

func loadConfig() simConfig {
	cfg := simConfig{
		APIURL:   os.Getenv("API_BASE_URL"),
		Flights:  3,
		SpeedKmh: 900,
		Tick:     250 * time.Millisecond,
	}
	if cfg.APIURL == "" {
		cfg.APIURL = "http://localhost:8080"
	}
	if v := os.Getenv("SIM_FLIGHTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Flights = n
		}
	}
	if v := os.Getenv("SIM_SPEED_KMH"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.SpeedKmh = f
		}
	}
	if v := os.Getenv("SIM_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.Tick = time.Duration(n) * time.Millisecond
		}
	}
	return cfg
}

// apiClient talks to the Study Air API.
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *apiClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s failed with status: %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *apiClient) countries(ctx context.Context) ([]string, error) {
	var resp struct {
		Countries []string `json:"countries"`
	}
	if err := c.do(ctx, http.MethodGet, "/countries", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Countries, nil
}

func (c *apiClient) flight(ctx context.Context, country string, speedKmh float64) (models.FlightResult, error) {
	var res models.FlightResult
	err := c.do(ctx, http.MethodPost, "/flight", models.FlightRequest{Country: country, SpeedKmh: &speedKmh}, &res)
	return res, err
}

func (c *apiClient) recordSession(ctx context.Context, s models.SessionCreate) (models.Document, error) {
	var doc models.Document
	err := c.do(ctx, http.MethodPost, "/sessions", s, &doc)
	return doc, err
}

func (c *apiClient) unlock(ctx context.Context, a models.AchievementCreate) (models.Document, error) {
	var doc models.Document
	err := c.do(ctx, http.MethodPost, "/achievements", a, &doc)
	return doc, err
}

// achievementFor returns the achievement unlocked by landing in country.
func achievementFor(country string) models.AchievementCreate {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(country)), " ", "_")
	return models.AchievementCreate{Key: "visited_" + slug, Title: "Visited " + country}
}

// fly walks the flight path, one point per tick, logging progress every
// quarter of the way. It returns early when ctx is cancelled.
func fly(ctx context.Context, res models.FlightResult, tick time.Duration) error {
	if len(res.Path) == 0 {
		return nil
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := len(res.Path) - 1
	quarter := last / 4
	if quarter == 0 {
		quarter = 1
	}
	for i, p := range res.Path {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
		if i%quarter == 0 || i == last {
			log.WithFields(log.Fields{
				"country":  res.Country,
				"lat":      p.Lat,
				"lon":      p.Lon,
				"progress": fmt.Sprintf("%d%%", i*100/max(last, 1)),
			}).Info("In flight")
		}
	}
	return nil
}

// runFlight simulates one study session to country.
func runFlight(ctx context.Context, c *apiClient, cfg simConfig, country string, startedAt time.Time) error {
	res, err := c.flight(ctx, country, cfg.SpeedKmh)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"country":          res.Country,
		"distance_km":      res.DistanceKm,
		"duration_minutes": res.DurationMinutes,
	}).Info("Departing")

	if err := fly(ctx, res, cfg.Tick); err != nil {
		return err
	}

	landed := models.FormatTimestamp(startedAt.Add(time.Duration(res.DurationMinutes) * time.Minute))
	session, err := c.recordSession(ctx, models.SessionCreate{
		Country:         res.Country,
		DurationMinutes: res.DurationMinutes,
		StartedAt:       models.FormatTimestamp(startedAt),
		LandedAt:        &landed,
	})
	if err != nil {
		return err
	}

	achievement, err := c.unlock(ctx, achievementFor(res.Country))
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"session_id":     session[models.FieldID],
		"achievement_id": achievement[models.FieldID],
		"degraded":       achievement[models.FieldWarning] != nil,
	}).Info("Landed")
	return nil
}

// run picks cfg.Flights destinations at random and flies to each in turn.
func run(ctx context.Context, cfg simConfig, rng *rand.Rand) (int, error) {
	c := newAPIClient(cfg.APIURL)
	countries, err := c.countries(ctx)
	if err != nil {
		return 0, err
	}
	if len(countries) == 0 {
		return 0, fmt.Errorf("no destinations available")
	}

	completed := 0
	for i := 0; i < cfg.Flights; i++ {
		country := countries[rng.Intn(len(countries))]
		if err := runFlight(ctx, c, cfg, country, time.Now()); err != nil {
			return completed, fmt.Errorf("flight to %s: %w", country, err)
		}
		completed++
	}
	return completed, nil
}

func main() {
	cfg := loadConfig()
	log.WithFields(log.Fields{
		"api_url":   cfg.APIURL,
		"flights":   cfg.Flights,
		"speed_kmh": cfg.SpeedKmh,
		"tick":      cfg.Tick,
	}).Info("Starting study flight simulation")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	completed, err := run(ctx, cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.WithError(err).WithField("completed", completed).Error("Simulation stopped")
		os.Exit(1)
	}
	log.WithField("completed", completed).Info("Simulation finished")
}
