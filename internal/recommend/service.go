// Sendero - Tourism Recommendations and Route Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sendero

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/sendero/internal/cache"
	"github.com/tomtom215/sendero/internal/geo"
	"github.com/tomtom215/sendero/internal/metrics"
	"github.com/tomtom215/sendero/internal/models"
)

// cacheType labels the recommendation cache in metrics.
const cacheType = "recommendations"

// cacheEntry is a cached ranking with the profile fields that invalidate it.
type cacheEntry struct {
	places    []ScoredPlace
	interests []models.Interest
	budget    models.PriceLevel
}

// Service orchestrates recommendation requests: it fetches candidates from
// the places provider, filters, scores and reranks them, and owns the
// recommendation cache and the shown-history set.
//
// Service is safe for concurrent use.
type Service struct {
	config   *Config
	logger   zerolog.Logger
	scorer   *Scorer
	filter   *Filter
	provider PlacesProvider
	fallback FallbackSource
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
	// zone is the default zone for time-of-day rules; nil keeps the clock's.
	zone *time.Location

	cache *cache.LRUCache[cacheEntry]

	mu        sync.RWMutex
	rerankers []Reranker
	history   map[string]struct{}

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	fallbacks    atomic.Int64
	errorCount   atomic.Int64
}

// Option configures a Service.
type Option func(*Service)

// WithFallbackSource sets the static source used when the provider fails.
func WithFallbackSource(src FallbackSource) Option {
	return func(s *Service) { s.fallback = src }
}

// WithClock replaces the wall clock. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSleeper replaces the retry delay implementation. Intended for tests.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Service) { s.sleep = sleep }
}

// NewService creates a recommendation service. A nil cfg uses DefaultConfig.
func NewService(cfg *Config, provider PlacesProvider, logger zerolog.Logger, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if provider == nil {
		return nil, ErrNoProvider
	}

	s := &Service{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		scorer:   NewScorer(cfg),
		filter:   NewFilter(cfg),
		provider: provider,
		now:      time.Now,
		sleep:    sleepContext,
		cache:    cache.NewLRUCache[cacheEntry](cfg.Cache.MaxEntries, cfg.Cache.TTL),
		history:  make(map[string]struct{}),
	}
	if cfg.Timezone != "" {
		zone, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid config: timezone %q: %w", cfg.Timezone, err)
		}
		s.zone = zone
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache.SetClock(s.now)

	return s, nil
}

// RegisterReranker appends a reranker. Rerankers run in registration order
// after scoring.
func (s *Service) RegisterReranker(r Reranker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rerankers = append(s.rerankers, r)
	s.logger.Info().Str("reranker", r.Name()).Msg("Registered reranker")
}

// Config returns a copy of the service configuration.
func (s *Service) Config() *Config {
	return s.config.Clone()
}

// Scorer returns the scorer used by the service.
func (s *Service) Scorer() *Scorer {
	return s.scorer
}

// GetRecommendations returns the ranked places for a request.
// It returns ErrLocationRequired or ErrInvalidLocation for a bad location.
// Provider failures never surface: the static fallback set is returned instead.
func (s *Service) GetRecommendations(ctx context.Context, req Request) ([]models.Place, error) {
	res, err := s.GetScoredRecommendations(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.PlaceList(), nil
}

// GetScoredRecommendations is GetRecommendations with scores, explanations
// and request metadata.
func (s *Service) GetScoredRecommendations(ctx context.Context, req Request) (res *Result, err error) {
	if req.Location == nil {
		return nil, ErrLocationRequired
	}
	if !geo.ValidCoordinate(req.Location.Latitude, req.Location.Longitude) {
		return nil, fmt.Errorf("%w: (%f, %f)", ErrInvalidLocation, req.Location.Latitude, req.Location.Longitude)
	}

	start, err := s.Localize(s.now(), req.Timezone)
	if err != nil {
		return nil, err
	}
	s.requestCount.Add(1)

	profile := models.DefaultProfile()
	if req.Profile != nil {
		profile = req.Profile.Clone()
	}
	location := *req.Location

	logger := s.logger.With().Str("request_id", req.RequestID).Logger()
	ctx = WithRequestTime(ctx, start)

	defer func() {
		if r := recover(); r != nil {
			s.errorCount.Add(1)
			logger.Error().Interface("panic", r).Msg("Recommendation pipeline panicked, serving fallback")
			res = s.fallbackResult(location, &profile, start)
			err = nil
		}
	}()

	key := s.cacheKey(location, req.Filters, start.Location())
	if cached, ok := s.lookupCache(key, &profile); ok {
		s.cacheHits.Add(1)
		metrics.RecordCacheLookup(cacheType, true)
		metrics.RecordRecommendation(metrics.SourceCache, s.now().Sub(start), len(cached))
		logger.Debug().Str("key", key).Int("count", len(cached)).Msg("Recommendation cache hit")
		return &Result{
			Places:    cached,
			Cached:    true,
			LatencyMS: s.now().Sub(start).Milliseconds(),
		}, nil
	}
	s.cacheMisses.Add(1)
	metrics.RecordCacheLookup(cacheType, false)

	places, radius, fetchErr := s.fetchWithExpansion(ctx, location, req.Filters)
	if fetchErr != nil {
		s.errorCount.Add(1)
		logger.Warn().Err(fetchErr).Msg("Places provider unavailable, serving fallback")
		return s.fallbackResult(location, &profile, start), nil
	}
	if len(places) == 0 {
		logger.Warn().Float64("radius_m", radius).Msg("No places found, serving fallback")
		return s.fallbackResult(location, &profile, start), nil
	}

	now := start
	filtered := s.filter.Apply(places, req.Filters, &profile, now)
	relaxed := false
	if len(filtered) < s.config.Search.MinResults && s.config.Fallback.RelaxFilters && req.Filters != nil {
		logger.Debug().
			Int("filtered", len(filtered)).
			Int("min_results", s.config.Search.MinResults).
			Msg("Too few results, relaxing filters")
		filtered = s.filter.Apply(places, nil, &profile, now)
		relaxed = true
		metrics.RecommendationFilterRelaxations.Inc()
	}

	scored := s.scoreAll(filtered, &profile, location, now)
	sortByScore(scored)
	scored = s.rerank(ctx, scored)
	sortByScore(scored)
	scored = s.dropRecentlyShown(scored)

	if len(scored) > s.config.Search.MaxResults {
		scored = scored[:s.config.Search.MaxResults]
	}

	s.storeCache(key, &profile, scored)
	s.recordHistory(scored)

	elapsed := s.now().Sub(start)
	metrics.RecordRecommendation(metrics.SourceLive, elapsed, len(scored))
	logger.Info().
		Int("candidates", len(places)).
		Int("filtered", len(filtered)).
		Int("returned", len(scored)).
		Float64("radius_m", radius).
		Bool("relaxed", relaxed).
		Dur("latency", elapsed).
		Msg("Generated recommendations")

	return &Result{
		Places:       scored,
		Relaxed:      relaxed,
		RadiusMeters: radius,
		Candidates:   len(places),
		LatencyMS:    elapsed.Milliseconds(),
	}, nil
}

// fetchWithExpansion queries the provider, widening the radius while fewer
// than MinResults places come back. Failed calls are retried after a fixed
// delay; a retry consumes one attempt. The error is returned once retries are
// exhausted.
func (s *Service) fetchWithExpansion(ctx context.Context, location models.Location, filters *models.Filters) ([]models.Place, float64, error) {
	search := s.config.Search
	fb := s.config.Fallback

	radius := search.DefaultRadius
	if filters != nil && filters.MaxDistance != nil && *filters.MaxDistance > 0 {
		radius = *filters.MaxDistance
	}
	radius = math.Max(search.MinRadius, math.Min(radius, search.MaxRadius))

	maxAttempts := fb.MaxExpansions + 1
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		places, err := s.fetchOnce(ctx, location, radius)
		if err != nil {
			lastErr = err
			if attempt >= s.config.Errors.MaxRetries {
				return nil, radius, err
			}
			metrics.ProviderRetries.Inc()
			s.logger.Debug().Err(err).Int("attempt", attempt+1).Msg("Places fetch failed, retrying")
			if serr := s.sleep(ctx, s.config.Errors.RetryDelay); serr != nil {
				return nil, radius, serr
			}
			continue
		}

		if len(places) >= search.MinResults {
			return places, radius, nil
		}
		if !fb.ExpandRadius || attempt == maxAttempts-1 || radius >= search.MaxRadius {
			return places, radius, nil
		}

		radius = math.Min(radius+fb.RadiusExpansionStep, search.MaxRadius)
		metrics.RadiusExpansions.Inc()
		s.logger.Debug().Int("found", len(places)).Float64("radius_m", radius).Msg("Expanding search radius")
	}

	return nil, radius, lastErr
}

func (s *Service) fetchOnce(ctx context.Context, location models.Location, radius float64) ([]models.Place, error) {
	if s.config.Errors.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Errors.Timeout)
		defer cancel()
	}
	return s.provider.FetchNearby(ctx, location, radius, s.config.Search.FetchLimit)
}

func (s *Service) scoreAll(places []models.Place, profile *models.UserProfile, location models.Location, now time.Time) []ScoredPlace {
	explain := s.config.Features.ExplainRecommendations
	scored := make([]ScoredPlace, len(places))
	for i := range places {
		p := &places[i]
		dist := geo.PlaceDistance(location, p)
		score := s.scorer.Score(p, profile, location, now)
		scored[i] = ScoredPlace{Place: *p, Score: score, DistanceMeters: dist}
		if explain {
			scored[i].Explanation = Explain(p, profile, dist, score)
		}
	}
	return scored
}

func (s *Service) rerank(ctx context.Context, scored []ScoredPlace) []ScoredPlace {
	s.mu.RLock()
	rerankers := append([]Reranker(nil), s.rerankers...)
	s.mu.RUnlock()

	for _, r := range rerankers {
		scored = r.Rerank(ctx, scored, s.config.Search.MaxResults)
	}
	return scored
}

// dropRecentlyShown removes places already in the shown-history set, unless
// that would leave fewer than half of the list.
func (s *Service) dropRecentlyShown(scored []ScoredPlace) []ScoredPlace {
	if !s.config.Features.AvoidRecentlyShown {
		return scored
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.history) == 0 {
		return scored
	}

	fresh := make([]ScoredPlace, 0, len(scored))
	for _, sp := range scored {
		if _, shown := s.history[sp.Place.ID]; !shown {
			fresh = append(fresh, sp)
		}
	}

	minToKeep := (len(scored) + 1) / 2
	if len(fresh) >= minToKeep {
		return fresh
	}
	return scored
}

func (s *Service) recordHistory(scored []ScoredPlace) {
	if !s.config.Features.TrackHistory {
		return
	}

	s.mu.Lock()
	for _, sp := range scored {
		s.history[sp.Place.ID] = struct{}{}
	}
	size := len(s.history)
	s.mu.Unlock()

	metrics.ShownHistorySize.Set(float64(size))
}

// cacheKey combines the rounded location, the sorted category filter and the
// zone time-of-day rules ran in.
func (s *Service) cacheKey(location models.Location, filters *models.Filters, zone *time.Location) string {
	prec := s.config.Cache.KeyPrecision
	categories := "all"
	if filters != nil && len(filters.Categories) > 0 {
		names := make([]string, len(filters.Categories))
		for i, c := range filters.Categories {
			names[i] = string(c)
		}
		sort.Strings(names)
		categories = strings.Join(names, ",")
	}
	return fmt.Sprintf("%.*f_%.*f_%s_%s", prec, location.Latitude, prec, location.Longitude, categories, zone)
}

// lookupCache returns a cached ranking. An entry stored for a profile with
// different interests or budget is deleted.
func (s *Service) lookupCache(key string, profile *models.UserProfile) ([]ScoredPlace, bool) {
	if !s.config.Cache.Enabled {
		return nil, false
	}

	entry, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}

	stored := models.UserProfile{Interests: entry.interests, PreferredBudget: entry.budget}
	if !stored.SameInterests(profile) || entry.budget != profile.PreferredBudget {
		s.cache.Remove(key)
		s.logger.Debug().Str("key", key).Msg("Profile changed, invalidating cached recommendations")
		return nil, false
	}

	return append([]ScoredPlace(nil), entry.places...), true
}

func (s *Service) storeCache(key string, profile *models.UserProfile, scored []ScoredPlace) {
	if !s.config.Cache.Enabled {
		return
	}
	s.cache.Add(key, cacheEntry{
		places:    append([]ScoredPlace(nil), scored...),
		interests: append([]models.Interest(nil), profile.Interests...),
		budget:    profile.PreferredBudget,
	})
	metrics.CacheSize.WithLabelValues(cacheType).Set(float64(s.cache.Len()))
}

// fallbackResult ranks the static places within StaticRadiusFactor times the
// default radius. When none are that close, the first StaticMinimum static
// places are returned unscored.
func (s *Service) fallbackResult(location models.Location, profile *models.UserProfile, start time.Time) *Result {
	s.fallbacks.Add(1)
	res := &Result{Fallback: true}

	if s.fallback != nil && s.config.Fallback.UseStaticData {
		all := s.fallback.All()
		radius := s.config.Search.DefaultRadius * s.config.Fallback.StaticRadiusFactor

		nearby := make([]models.Place, 0, len(all))
		for i := range all {
			if geo.IsWithinRadius(all[i].Location(), location, radius) {
				nearby = append(nearby, all[i])
			}
		}

		if len(nearby) > 0 {
			scored := s.scoreAll(nearby, profile, location, start)
			sortByScore(scored)
			if len(scored) > s.config.Search.MaxResults {
				scored = scored[:s.config.Search.MaxResults]
			}
			res.Places = scored
			res.RadiusMeters = radius
		} else {
			n := min(s.config.Fallback.StaticMinimum, len(all))
			res.Places = make([]ScoredPlace, n)
			for i := 0; i < n; i++ {
				res.Places[i] = ScoredPlace{
					Place:          all[i],
					DistanceMeters: geo.PlaceDistance(location, &all[i]),
				}
			}
		}
	}

	elapsed := s.now().Sub(start)
	res.LatencyMS = elapsed.Milliseconds()
	metrics.RecordRecommendation(metrics.SourceFallback, elapsed, len(res.Places))
	return res
}

// Localize returns t in the zone time-of-day rules are evaluated in: the
// named IANA zone when timezone is set, otherwise Config.Timezone. With
// neither, t is returned unchanged.
func (s *Service) Localize(t time.Time, timezone string) (time.Time, error) {
	if timezone != "" {
		zone, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
		}
		return t.In(zone), nil
	}
	if s.zone != nil {
		return t.In(s.zone), nil
	}
	return t, nil
}

// ClearCache wipes the recommendation cache and the shown-history set.
func (s *Service) ClearCache() {
	s.cache.Clear()

	s.mu.Lock()
	s.history = make(map[string]struct{})
	s.mu.Unlock()

	metrics.CacheSize.WithLabelValues(cacheType).Set(0)
	metrics.ShownHistorySize.Set(0)
	s.logger.Info().Msg("Recommendation cache cleared")
}

// CleanupExpired evicts expired cache entries and returns how many were removed.
func (s *Service) CleanupExpired() int {
	n := s.cache.CleanupExpired()
	if n > 0 {
		metrics.RecordCacheEvictions(cacheType, n)
	}
	metrics.CacheSize.WithLabelValues(cacheType).Set(float64(s.cache.Len()))
	return n
}

// Stats returns service counters.
func (s *Service) Stats() Stats {
	s.mu.RLock()
	historySize := len(s.history)
	s.mu.RUnlock()

	return Stats{
		CacheEntries: s.cache.Len(),
		HistorySize:  historySize,
		RequestCount: s.requestCount.Load(),
		CacheHits:    s.cacheHits.Load(),
		CacheMisses:  s.cacheMisses.Load(),
		Fallbacks:    s.fallbacks.Load(),
		ErrorCount:   s.errorCount.Load(),
	}
}

// sortByScore orders places by descending score. Ties keep their order.
func sortByScore(scored []ScoredPlace) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
