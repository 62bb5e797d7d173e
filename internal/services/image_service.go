package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tripforge/internal/infra"
	"tripforge/internal/models/response_models"
	"tripforge/internal/resilience"
)

const (
	imageBatchSize          = 3
	imageBatchPacing        = 200 * time.Millisecond
	imageCollectionDeadline = 20 * time.Second
	imageSearchTopN         = 5
	imageMinWidth           = 800
	imageMinHeight          = 600
)

type ImageServiceInterface interface {
	// CollectLocationImages resolves an image per distinct location name.
	// Missing keys mean "no image", never an error. The returned flag reports
	// whether the curated fallback had to stand in for the whole collection.
	CollectLocationImages(ctx context.Context, city string, locations []string) (map[string]response_models.ImageResult, bool)
}

type ImageService struct {
	client   infra.ImageSearchClient
	registry *resilience.Registry

	batchSize      int
	pacing         time.Duration
	collectTimeout time.Duration
	searchOp       resilience.Operation
}

func NewImageService(client infra.ImageSearchClient, registry *resilience.Registry) ImageServiceInterface {
	return &ImageService{
		client:         client,
		registry:       registry,
		batchSize:      imageBatchSize,
		pacing:         imageBatchPacing,
		collectTimeout: imageCollectionDeadline,
		searchOp: resilience.Operation{
			Name:        "image-search",
			Deadline:    resilience.ImageCallTimeout,
			MaxAttempts: resilience.ImageMaxAttempts,
			BaseDelay:   resilience.ImageBaseDelay,
		},
	}
}

func (s *ImageService) CollectLocationImages(ctx context.Context, city string, locations []string) (map[string]response_models.ImageResult, bool) {
	if !s.client.Configured() {
		log.Printf("image search unconfigured, using curated fallback for %s", city)
		return map[string]response_models.ImageResult{city: CuratedImage(city)}, true
	}

	targets := dedupeLocations(city, locations)

	ctx, cancel := context.WithTimeout(ctx, s.collectTimeout)
	defer cancel()

	var mu sync.Mutex
	results := make(map[string]response_models.ImageResult)

	// Batches run in submission order; items within a batch settle in any
	// order but all settle before the next batch starts.
	for start := 0; start < len(targets); start += s.batchSize {
		if ctx.Err() != nil {
			break
		}

		end := start + s.batchSize
		if end > len(targets) {
			end = len(targets)
		}

		g := new(errgroup.Group)
		for _, loc := range targets[start:end] {
			loc := loc
			g.Go(func() error {
				// one location failing must not abort the batch
				if img := s.searchOne(ctx, loc); img != nil {
					mu.Lock()
					results[loc] = *img
					mu.Unlock()
				}
				return nil
			})
		}

		settled := make(chan struct{})
		go func() {
			_ = g.Wait()
			close(settled)
		}()

		select {
		case <-settled:
		case <-ctx.Done():
			// collection deadline: keep whatever resolved so far; in-flight
			// calls are not forcibly aborted, their results are just ignored
			return snapshot(&mu, results, city)
		}

		if end < len(targets) {
			// fixed pause measured from batch completion, not batch start
			select {
			case <-time.After(s.pacing):
			case <-ctx.Done():
			}
		}
	}

	return snapshot(&mu, results, city)
}

func snapshot(mu *sync.Mutex, results map[string]response_models.ImageResult, city string) (map[string]response_models.ImageResult, bool) {
	mu.Lock()
	defer mu.Unlock()

	if len(results) == 0 {
		return map[string]response_models.ImageResult{city: CuratedImage(city)}, true
	}

	out := make(map[string]response_models.ImageResult, len(results))
	for k, v := range results {
		out[k] = v
	}
	return out, false
}

// searchOne walks the query chain for a single location: category-adjusted
// query first, then the category's fallback queries. Returns nil when nothing
// anywhere yields an image.
func (s *ImageService) searchOne(ctx context.Context, location string) *response_models.ImageResult {
	category := InferCategory(location)
	queries := append([]string{categoryQuery(location, category)}, fallbackQueries(category)...)

	for _, query := range queries {
		var photos []response_models.ImageResult
		err := s.registry.Execute(ctx, s.searchOp, func(ctx context.Context) error {
			var searchErr error
			photos, searchErr = s.client.Search(ctx, query, imageSearchTopN)
			return searchErr
		})
		if err != nil {
			log.Printf("image search for %q failed: %v", query, err)
			continue
		}
		if len(photos) == 0 {
			continue
		}
		return pickBest(photos)
	}
	return nil
}

// pickBest prefers the first result meeting the minimum-resolution bar; when
// nothing qualifies it accepts the first raw result rather than returning
// nothing.
func pickBest(photos []response_models.ImageResult) *response_models.ImageResult {
	limit := len(photos)
	if limit > imageSearchTopN {
		limit = imageSearchTopN
	}
	for i := 0; i < limit; i++ {
		if photos[i].Width >= imageMinWidth && photos[i].Height >= imageMinHeight {
			return &photos[i]
		}
	}
	return &photos[0]
}

func dedupeLocations(city string, locations []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(locations)+1)

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if !seen[key] {
			seen[key] = true
			out = append(out, name)
		}
	}

	add(city)
	for _, loc := range locations {
		add(loc)
	}
	return out
}
