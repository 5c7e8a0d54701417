package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"movie_ratings_api/db/redis"
	errorHandler "movie_ratings_api/pkg/error"
)

const (
	ImageBaseUrl       = "https://image.tmdb.org/t/p/w500"
	DefaultMoviePoster = "/default-movie-poster.jpg"
	ExternalIdPrefix   = "tmdb-"

	maxReviews = 5
	cacheTtl   = 10 * time.Minute
)

type IClient interface {
	GetMovieDetails(ctx context.Context, tmdbId int64) (*MovieResult, error)
	GetMovieExtra(ctx context.Context, tmdbId int64) (*MovieExtraRes, error)
	SearchMovies(ctx context.Context, query string, page int) (*SearchRes, error)
	GetRecommendations(ctx context.Context, tmdbId int64, page int) ([]MappedMovie, error)
	GetPopularMovies(ctx context.Context, page int) ([]MappedMovie, error)
	ValidateMovieId(ctx context.Context, tmdbId int64) bool
}

type Client struct {
	baseUrl    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseUrl string, apiKey string) *Client {
	return &Client{
		baseUrl: baseUrl,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

//------------------------------------------
//------------------------------------------

// get fetches an endpoint, serving from the redis cache when possible. Cache
// failures degrade to a plain upstream call.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	cacheKey := "tmdb:" + endpoint + "?" + params.Encode()

	if cached, err := redis.GetRedis(ctx, cacheKey); err == nil && cached != "" {
		return []byte(cached), nil
	}

	params.Set("api_key", c.apiKey)
	fullUrl := fmt.Sprintf("%s%s?%s", c.baseUrl, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tmdb read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb api error: status %d", resp.StatusCode)
	}

	if err := redis.SetRedis(ctx, cacheKey, string(body), cacheTtl); err != nil {
		errorHandler.SaveError(fmt.Sprintf("Error on caching tmdb response: %s", err), err)
	}

	return body, nil
}

func (c *Client) GetMovieDetails(ctx context.Context, tmdbId int64) (*MovieResult, error) {
	body, err := c.get(ctx, fmt.Sprintf("/movie/%d", tmdbId), nil)
	if err != nil {
		return nil, err
	}

	var details MovieResult
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("tmdb unmarshal: %w", err)
	}
	return &details, nil
}

// GetMovieExtra combines movie details with the first page of reviews, both
// fetched concurrently the way the old node resolver did.
func (c *Client) GetMovieExtra(ctx context.Context, tmdbId int64) (*MovieExtraRes, error) {
	var (
		wg         sync.WaitGroup
		details    *MovieResult
		reviews    ReviewListResponse
		detailsErr error
		reviewsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		details, detailsErr = c.GetMovieDetails(ctx, tmdbId)
	}()
	go func() {
		defer wg.Done()
		params := url.Values{}
		params.Set("language", "en-US")
		params.Set("page", "1")
		body, err := c.get(ctx, fmt.Sprintf("/movie/%d/reviews", tmdbId), params)
		if err != nil {
			reviewsErr = err
			return
		}
		reviewsErr = json.Unmarshal(body, &reviews)
	}()
	wg.Wait()

	if detailsErr != nil {
		return nil, detailsErr
	}
	if reviewsErr != nil {
		return nil, reviewsErr
	}

	mappedReviews := make([]MovieReview, 0, maxReviews)
	for i, r := range reviews.Results {
		if i == maxReviews {
			break
		}
		mappedReviews = append(mappedReviews, MovieReview{
			Id:      r.Id,
			Author:  r.Author,
			Content: r.Content,
		})
	}

	return &MovieExtraRes{
		TmdbRating:  details.VoteAverage,
		TmdbReviews: mappedReviews,
		VoteCount:   details.VoteCount,
	}, nil
}

func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*SearchRes, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")

	body, err := c.get(ctx, "/search/movie", params)
	if err != nil {
		return nil, err
	}

	var result MovieListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("tmdb unmarshal: %w", err)
	}

	return &SearchRes{
		Movies:       mapMovieResults(result.Results),
		TotalPages:   result.TotalPages,
		TotalResults: result.TotalResults,
	}, nil
}

func (c *Client) GetRecommendations(ctx context.Context, tmdbId int64, page int) ([]MappedMovie, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	body, err := c.get(ctx, fmt.Sprintf("/movie/%d/recommendations", tmdbId), params)
	if err != nil {
		return nil, err
	}

	var result MovieListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("tmdb unmarshal: %w", err)
	}

	return mapMovieResults(result.Results), nil
}

// GetPopularMovies stitches two upstream pages together, the browse page shows
// 40 titles while tmdb serves 20 per page.
func (c *Client) GetPopularMovies(ctx context.Context, page int) ([]MappedMovie, error) {
	if page < 1 {
		page = 1
	}
	firstPage := page*2 - 1
	secondPage := page * 2

	var (
		wg   sync.WaitGroup
		res  [2]MovieListResponse
		errs [2]error
	)
	wg.Add(2)
	for i, p := range []int{firstPage, secondPage} {
		go func(i int, p int) {
			defer wg.Done()
			params := url.Values{}
			params.Set("page", strconv.Itoa(p))
			body, err := c.get(ctx, "/movie/popular", params)
			if err != nil {
				errs[i] = err
				return
			}
			errs[i] = json.Unmarshal(body, &res[i])
		}(i, p)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	combined := append(res[0].Results, res[1].Results...)
	return mapMovieResults(combined), nil
}

// ValidateMovieId reports whether the catalog knows the given id. Lookup
// failures read as unknown.
func (c *Client) ValidateMovieId(ctx context.Context, tmdbId int64) bool {
	details, err := c.GetMovieDetails(ctx, tmdbId)
	return err == nil && details.Id != 0
}

//------------------------------------------
//------------------------------------------

func mapMovieResults(results []MovieResult) []MappedMovie {
	mapped := make([]MappedMovie, 0, len(results))
	for _, m := range results {
		mapped = append(mapped, MappedMovie{
			Id:            ExternalId(m.Id),
			Title:         m.Title,
			Description:   m.Overview,
			ReleaseYear:   ReleaseYear(m.ReleaseDate),
			ImageSrc:      FullImageUrl(m.PosterPath),
			AverageRating: m.VoteAverage,
			TmdbId:        m.Id,
			VoteCount:     m.VoteCount,
		})
	}
	return mapped
}

func FullImageUrl(posterPath string) string {
	if posterPath == "" {
		return DefaultMoviePoster
	}
	return ImageBaseUrl + posterPath
}

func ReleaseYear(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

func ExternalId(tmdbId int64) string {
	return fmt.Sprintf("%s%d", ExternalIdPrefix, tmdbId)
}

// ParseExternalId returns the numeric tmdb id when the given movie id uses the
// `tmdb-<id>` form of not-yet-persisted catalog entries.
func ParseExternalId(movieId string) (int64, bool) {
	if !strings.HasPrefix(movieId, ExternalIdPrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(movieId, ExternalIdPrefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
