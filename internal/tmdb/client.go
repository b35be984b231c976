package tmdb

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// maxDiscoverPages caps discovery pagination so a bad total_pages value can
// never turn into a runaway loop.
const maxDiscoverPages = 20

type Client struct {
	apiKey   string
	language string
	region   string
	baseURL  string
	client   *http.Client
}

func NewClient(apiKey, language, region string) *Client {
	return &Client{
		apiKey:   apiKey,
		language: language,
		region:   region,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SetBaseURL points the client at a different API host. Used by tests.
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// ──────────────────── Payload types ────────────────────

type MovieSummary struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	GenreIDs      []int   `json:"genre_ids"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

type CrewMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	Department  string `json:"department"`
	ProfilePath string `json:"profile_path"`
}

type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type Video struct {
	Key      string `json:"key"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type MovieDetail struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	Runtime       int     `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	Genres        []Genre `json:"genres"`
	Credits       Credits `json:"credits"`
	Videos        struct {
		Results []Video `json:"results"`
	} `json:"videos"`
}

type discoverResponse struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// ──────────────────── Requests ────────────────────

// Discover lists movies whose primary release date falls inside
// [from, to] (ISO dates), sorted by ascending release date and filtered to
// the configured original language and region. It keeps fetching pages while
// the provider reports more, up to maxDiscoverPages.
func (c *Client) Discover(from, to string) ([]MovieSummary, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("TMDB API key not configured")
	}

	var all []MovieSummary
	for page := 1; page <= maxDiscoverPages; page++ {
		q := url.Values{}
		q.Set("api_key", c.apiKey)
		q.Set("with_original_language", c.language)
		q.Set("region", c.region)
		q.Set("primary_release_date.gte", from)
		q.Set("primary_release_date.lte", to)
		q.Set("sort_by", "primary_release_date.asc")
		q.Set("page", fmt.Sprintf("%d", page))

		var result discoverResponse
		if err := c.get("/discover/movie?"+q.Encode(), &result); err != nil {
			// The initial listing call failing is fatal; once a result set
			// exists, a later page failing loses that page, not the run.
			if page == 1 {
				return nil, fmt.Errorf("discover page 1: %w", err)
			}
			log.Printf("TMDB: discover page %d failed, continuing with %d results: %v", page, len(all), err)
			break
		}

		all = append(all, result.Results...)
		if page >= result.TotalPages {
			break
		}
	}
	return all, nil
}

// GetMovieDetail fetches a movie with its credits and videos in a single
// call via append_to_response.
func (c *Client) GetMovieDetail(id int) (*MovieDetail, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("TMDB API key not configured")
	}

	path := fmt.Sprintf("/movie/%d?api_key=%s&language=%s&append_to_response=credits,videos",
		id, c.apiKey, url.QueryEscape(c.language))

	var detail MovieDetail
	if err := c.get(path, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// get issues a GET with retry on rate limiting and server errors. A non-2xx
// status after the retries is a hard failure for this request; the caller
// decides whether that aborts anything beyond the single item.
func (c *Client) get(path string, dst interface{}) error {
	const maxAttempts = 3
	var resp *http.Response
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err = c.client.Get(c.baseURL + path)
		if err != nil {
			return fmt.Errorf("tmdb request: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode < 500 {
			break
		}
		if attempt == maxAttempts-1 {
			break
		}
		resp.Body.Close()
		time.Sleep(time.Duration(2<<uint(attempt)) * time.Second)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("TMDB request returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode tmdb response: %w", err)
	}
	return nil
}
