package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/quizhub/quizhub/internal/domain"
)

// Client talks to an Open Trivia DB compatible API. A single failed
// attempt is reported as domain.ErrProviderUnavailable; the caller owns
// the fallback, the client never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu  sync.Mutex
	rnd *rand.Rand

	sf         singleflight.Group
	catMu      sync.RWMutex
	catCache   []Category
	catExpires time.Time
}

// NewClient builds a client with a bounded per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type apiQuestion struct {
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []apiQuestion `json:"results"`
}

// FetchQuestions fetches and normalizes a batch of questions. The
// provider escapes HTML entities and returns the correct answer
// separately; the result has decoded text, shuffled options labeled
// A-D, and the label now holding the correct answer.
func (c *Client) FetchQuestions(ctx context.Context, amount int, category, difficulty string) ([]domain.Question, error) {
	params := url.Values{}
	params.Set("amount", strconv.Itoa(amount))
	params.Set("type", "multiple")
	if category != "" {
		params.Set("category", category)
	}
	if difficulty != "" {
		params.Set("difficulty", difficulty)
	}

	body, err := c.get(ctx, "/api.php?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", domain.ErrProviderUnavailable, err)
	}
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("%w: API returned error code %d", domain.ErrProviderUnavailable, payload.ResponseCode)
	}

	questions := make([]domain.Question, 0, len(payload.Results))
	for _, result := range payload.Results {
		questions = append(questions, c.normalize(result))
	}
	return questions, nil
}

// normalize decodes entities, shuffles the combined option list and
// records which label ended up holding the correct answer.
func (c *Client) normalize(q apiQuestion) domain.Question {
	correct := html.UnescapeString(q.CorrectAnswer)

	options := make([]string, 0, len(q.IncorrectAnswers)+1)
	options = append(options, correct)
	for _, ans := range q.IncorrectAnswers {
		options = append(options, html.UnescapeString(ans))
	}

	c.mu.Lock()
	for i := len(options) - 1; i > 0; i-- {
		j := c.rnd.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
	}
	c.mu.Unlock()

	var labeled [4]string
	answer := ""
	for i := 0; i < 4 && i < len(options); i++ {
		labeled[i] = options[i]
		if options[i] == correct && answer == "" {
			answer = domain.Labels[i]
		}
	}

	return domain.Question{
		Text:       html.UnescapeString(q.Question),
		A:          labeled[0],
		B:          labeled[1],
		C:          labeled[2],
		D:          labeled[3],
		Answer:     answer,
		Category:   html.UnescapeString(q.Category),
		Difficulty: q.Difficulty,
	}
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	return body, nil
}
