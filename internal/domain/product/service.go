// internal/domain/product/service.go
package product

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/config"
)

// availability tag used by the store to flag sellable products
const availabilityFilter = "tag:online_stock:available"

const productsQuery = `
query GetProducts($first: Int!, $after: String, $query: String) {
  products(first: $first, after: $after, query: $query) {
    edges {
      node {
        id
        title
        tags
        images(first: 1) {
          edges { node { url } }
        }
        variants(first: 1) {
          edges { node { price { amount } availableForSale } }
        }
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}`

// Service fetches paginated catalog pages from the remote storefront
// GraphQL API, caching responses in Redis. Complete records are sorted
// before incomplete ones, both groups by descending price.
type Service struct {
	config      *config.Config
	redisClient *redis.Client
	httpClient  *http.Client
	endpoint    string
}

// NewService creates a new catalog service
func NewService(redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		config:      cfg,
		redisClient: redisClient,
		httpClient: &http.Client{
			Timeout: cfg.Catalog.RequestTimeout,
		},
		endpoint: cfg.GetCatalogEndpoint(),
	}
}

// GetProducts returns one page of products, starting after the given
// cursor (empty for the first page). Cached pages are served from
// Redis; a cache miss fetches from the storefront API, first with the
// availability tag filter and falling back to an unfiltered query.
func (s *Service) GetProducts(ctx context.Context, after string) (*Page, error) {
	cacheKey := fmt.Sprintf("catalog:products:%s", after)

	// Serve from cache when possible; a Redis failure falls through to
	// the API.
	if s.redisClient != nil {
		if data, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var page Page
			if err := json.Unmarshal([]byte(data), &page); err == nil {
				return &page, nil
			}
		}
	}

	page, err := s.fetchPage(ctx, after, availabilityFilter)
	if err != nil || len(page.Products) == 0 {
		// Retry without the tag filter, matching the store's fallback
		unfiltered, fallbackErr := s.fetchPage(ctx, after, "")
		if fallbackErr != nil {
			return nil, fmt.Errorf("failed to load products: %w", fallbackErr)
		}
		page = unfiltered
	}

	page.Products = sortByCompleteness(dedupeByID(page.Products))

	if s.redisClient != nil {
		if data, err := json.Marshal(page); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, s.config.Catalog.CacheTTL)
		}
	}

	return page, nil
}

func (s *Service) fetchPage(ctx context.Context, after, query string) (*Page, error) {
	variables := map[string]interface{}{
		"first": s.config.Catalog.PageSize,
	}
	if after != "" {
		variables["after"] = after
	}
	if query != "" {
		variables["query"] = query
	}

	var lastErr error
	for attempt := 0; attempt <= s.config.Catalog.MaxRetries; attempt++ {
		page, err := s.doRequest(ctx, variables)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}

func (s *Service) doRequest(ctx context.Context, variables map[string]interface{}) (*Page, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query":     productsQuery,
		"variables": variables,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", s.config.Catalog.StorefrontToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storefront API returned status %d", resp.StatusCode)
	}

	var gqlResp productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("failed to decode storefront response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		return nil, fmt.Errorf("storefront API error: %s", gqlResp.Errors[0].Message)
	}

	return gqlResp.toPage(), nil
}

// sortByCompleteness orders complete records before incomplete ones,
// each group sorted by descending price. The sort is stable so equal
// prices keep their API order.
func sortByCompleteness(products []Product) []Product {
	complete := make([]Product, 0, len(products))
	incomplete := make([]Product, 0)

	for _, p := range products {
		if p.IsComplete() {
			complete = append(complete, p)
		} else {
			incomplete = append(incomplete, p)
		}
	}

	byPriceDesc := func(group []Product) {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].FirstPrice().GreaterThan(group[j].FirstPrice())
		})
	}
	byPriceDesc(complete)
	byPriceDesc(incomplete)

	return append(complete, incomplete...)
}

// dedupeByID drops later records sharing an id with an earlier one
func dedupeByID(products []Product) []Product {
	seen := make(map[string]bool, len(products))
	unique := products[:0]
	for _, p := range products {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		unique = append(unique, p)
	}
	return unique
}

// Wire types for the storefront GraphQL response

type productsResponse struct {
	Data struct {
		Products struct {
			Edges []struct {
				Node productNode `json:"node"`
			} `json:"edges"`
			PageInfo struct {
				HasNextPage bool   `json:"hasNextPage"`
				EndCursor   string `json:"endCursor"`
			} `json:"pageInfo"`
		} `json:"products"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type productNode struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Tags   []string `json:"tags"`
	Images struct {
		Edges []struct {
			Node struct {
				URL string `json:"url"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node struct {
				Price struct {
					Amount string `json:"amount"`
				} `json:"price"`
				AvailableForSale bool `json:"availableForSale"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

func (r *productsResponse) toPage() *Page {
	page := &Page{
		Products:    make([]Product, 0, len(r.Data.Products.Edges)),
		HasNextPage: r.Data.Products.PageInfo.HasNextPage,
		EndCursor:   r.Data.Products.PageInfo.EndCursor,
	}

	for _, edge := range r.Data.Products.Edges {
		node := edge.Node
		p := Product{
			ID:    node.ID,
			Title: node.Title,
			Tags:  node.Tags,
		}
		if len(node.Images.Edges) > 0 {
			p.ImageURL = node.Images.Edges[0].Node.URL
		}
		for _, v := range node.Variants.Edges {
			variant := Variant{
				Amount:           v.Node.Price.Amount,
				AvailableForSale: v.Node.AvailableForSale,
			}
			if v.Node.Price.Amount != "" {
				if price, err := decimal.NewFromString(v.Node.Price.Amount); err == nil {
					variant.Price = price
				}
			}
			p.Variants = append(p.Variants, variant)
		}
		page.Products = append(page.Products, p)
	}

	return page
}
