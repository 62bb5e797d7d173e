package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/models/response_models"
	"tripforge/internal/resilience"
)

// fakeImageClient records in-flight concurrency and delegates each search to a
// configurable function.
type fakeImageClient struct {
	unconfigured bool
	search       func(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error)

	mu       sync.Mutex
	inFlight int
	maxSeen  int
}

func (f *fakeImageClient) Configured() bool { return !f.unconfigured }

func (f *fakeImageClient) Search(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxSeen {
		f.maxSeen = f.inFlight
	}
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()
	return f.search(ctx, query, perPage)
}

func (f *fakeImageClient) maxConcurrent() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxSeen
}

func photo(id string, w, h int) response_models.ImageResult {
	return response_models.ImageResult{ID: id, Width: w, Height: h}
}

// newTestImageService wires a service with instant pacing and short budgets so
// tests don't sit in real backoff sleeps.
func newTestImageService(client *fakeImageClient) *ImageService {
	return &ImageService{
		client:         client,
		registry:       resilience.NewRegistry(),
		batchSize:      imageBatchSize,
		pacing:         time.Millisecond,
		collectTimeout: 2 * time.Second,
		searchOp: resilience.Operation{
			Name:        "image-search",
			Deadline:    time.Second,
			MaxAttempts: 1,
			BaseDelay:   time.Millisecond,
		},
	}
}

func TestCollectLocationImagesUnconfiguredUsesCurated(t *testing.T) {
	svc := newTestImageService(&fakeImageClient{unconfigured: true})

	images, degraded := svc.CollectLocationImages(context.Background(), "Mumbai", []string{"Gateway of India"})

	assert.True(t, degraded)
	require.Len(t, images, 1)
	assert.Equal(t, "curated-mumbai", images["Mumbai"].ID)
}

func TestCollectLocationImagesRunsBatchesOfThree(t *testing.T) {
	client := &fakeImageClient{
		search: func(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error) {
			time.Sleep(20 * time.Millisecond)
			return []response_models.ImageResult{photo("p-"+query, 1200, 900)}, nil
		},
	}
	svc := newTestImageService(client)

	locations := []string{"Gateway of India", "Marine Drive", "Juhu Beach", "Colaba", "Bandra Fort", "Elephanta Caves"}
	images, degraded := svc.CollectLocationImages(context.Background(), "Mumbai", locations)

	assert.False(t, degraded)
	assert.Len(t, images, 7, "city plus six locations")
	assert.LessOrEqual(t, client.maxConcurrent(), 3, "never more than one batch in flight")
	for _, loc := range append([]string{"Mumbai"}, locations...) {
		assert.Contains(t, images, loc)
	}
}

func TestCollectLocationImagesDeduplicatesLocations(t *testing.T) {
	client := &fakeImageClient{
		search: func(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error) {
			return []response_models.ImageResult{photo("p", 1200, 900)}, nil
		},
	}
	svc := newTestImageService(client)

	images, _ := svc.CollectLocationImages(context.Background(), "Paris", []string{"Louvre", "louvre", " Paris "})

	assert.Len(t, images, 2)
}

func TestCollectLocationImagesPrefersMinimumResolution(t *testing.T) {
	client := &fakeImageClient{
		search: func(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error) {
			return []response_models.ImageResult{
				photo("too-small", 400, 300),
				photo("big-enough", 1200, 800),
			}, nil
		},
	}
	svc := newTestImageService(client)

	images, _ := svc.CollectLocationImages(context.Background(), "Tokyo", nil)

	assert.Equal(t, "big-enough", images["Tokyo"].ID)
}

func TestCollectLocationImagesAcceptsFirstRawWhenAllSmall(t *testing.T) {
	client := &fakeImageClient{
		search: func(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error) {
			return []response_models.ImageResult{
				photo("first-small", 400, 300),
				photo("second-small", 500, 400),
			}, nil
		},
	}
	svc := newTestImageService(client)

	images, _ := svc.CollectLocationImages(context.Background(), "Tokyo", nil)

	assert.Equal(t, "first-small", images["Tokyo"].ID)
}

func TestCollectLocationImagesWalksFallbackQueries(t *testing.T) {
	var queries []string
	var mu sync.Mutex
	client := &fakeImageClient{
		search: func(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error) {
			mu.Lock()
			queries = append(queries, query)
			mu.Unlock()
			if query == "city skyline travel" {
				return []response_models.ImageResult{photo("fallback-hit", 1200, 900)}, nil
			}
			return nil, nil
		},
	}
	svc := newTestImageService(client)

	images, degraded := svc.CollectLocationImages(context.Background(), "Reykjavik", nil)

	assert.False(t, degraded)
	assert.Equal(t, "fallback-hit", images["Reykjavik"].ID)
	require.GreaterOrEqual(t, len(queries), 2)
	assert.True(t, strings.HasPrefix(queries[0], "Reykjavik"), "location query tried first")
}

func TestCollectLocationImagesEmptyEverywhereUsesCurated(t *testing.T) {
	client := &fakeImageClient{
		search: func(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error) {
			return nil, nil
		},
	}
	svc := newTestImageService(client)

	images, degraded := svc.CollectLocationImages(context.Background(), "Delhi", []string{"Red Fort"})

	assert.True(t, degraded)
	require.Len(t, images, 1)
	assert.Equal(t, "curated-delhi", images["Delhi"].ID)
}

func TestCollectLocationImagesPausesBetweenBatches(t *testing.T) {
	var mu sync.Mutex
	var stamps []time.Time
	client := &fakeImageClient{
		search: func(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error) {
			mu.Lock()
			stamps = append(stamps, time.Now())
			mu.Unlock()
			return []response_models.ImageResult{photo("p-"+query, 1200, 900)}, nil
		},
	}
	svc := newTestImageService(client)
	svc.batchSize = 1
	svc.pacing = 50 * time.Millisecond

	_, _ = svc.CollectLocationImages(context.Background(), "Lisbon", []string{"Spot A", "Spot B"})

	require.Len(t, stamps, 3)
	assert.GreaterOrEqual(t, stamps[1].Sub(stamps[0]), 50*time.Millisecond)
	assert.GreaterOrEqual(t, stamps[2].Sub(stamps[1]), 50*time.Millisecond)
}

func TestCollectLocationImagesReturnsPartialOnDeadline(t *testing.T) {
	client := &fakeImageClient{
		search: func(ctx context.Context, query string, perPage int) ([]response_models.ImageResult, error) {
			time.Sleep(50 * time.Millisecond)
			return []response_models.ImageResult{photo("p-"+query, 1200, 900)}, nil
		},
	}
	svc := newTestImageService(client)
	svc.batchSize = 1
	svc.collectTimeout = 80 * time.Millisecond

	locations := []string{"Spot A", "Spot B", "Spot C", "Spot D"}
	images, degraded := svc.CollectLocationImages(context.Background(), "Lisbon", locations)

	assert.False(t, degraded, "partial results are not the curated fallback")
	assert.NotEmpty(t, images)
	assert.Less(t, len(images), 5, "deadline must cut the collection short")
	assert.Contains(t, images, "Lisbon", "first batch completed before the deadline")
}
