package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/quizhub/quizhub/internal/domain"
)

// categoryTTL bounds how long the provider's category list is reused.
const categoryTTL = time.Hour

// Category is one entry of the provider's category catalogue.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type categoryResponse struct {
	TriviaCategories []Category `json:"trivia_categories"`
}

// Categories returns the provider's category list. The list changes
// rarely, so it is cached with a TTL and concurrent cache misses are
// collapsed into a single upstream call.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	now := time.Now()

	c.catMu.RLock()
	if c.catCache != nil && c.catExpires.After(now) {
		cached := c.catCache
		c.catMu.RUnlock()
		return cached, nil
	}
	c.catMu.RUnlock()

	result, err, _ := c.sf.Do("categories", func() (interface{}, error) {
		c.catMu.RLock()
		if c.catCache != nil && c.catExpires.After(time.Now()) {
			cached := c.catCache
			c.catMu.RUnlock()
			return cached, nil
		}
		c.catMu.RUnlock()

		body, err := c.get(ctx, "/api_category.php")
		if err != nil {
			return nil, err
		}

		var payload categoryResponse
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("%w: malformed category response: %v", domain.ErrProviderUnavailable, err)
		}

		c.catMu.Lock()
		c.catCache = payload.TriviaCategories
		c.catExpires = time.Now().Add(c.categoryTTLWithJitter())
		c.catMu.Unlock()
		return payload.TriviaCategories, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]Category), nil
}

// categoryTTLWithJitter spreads expirations by up to 10%.
func (c *Client) categoryTTLWithJitter() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	jitterMax := int64(categoryTTL) / 10
	return categoryTTL + time.Duration(c.rnd.Int63n(jitterMax+1))
}
