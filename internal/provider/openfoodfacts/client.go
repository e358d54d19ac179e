package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// ErrNotFound reports a miss. Not-found is an expected outcome, not a
// fault; callers should branch on it rather than fail.
var ErrNotFound = errors.New("openfoodfacts: product not found")

// Food is the normalized nutrition record every lookup resolves to.
type Food struct {
	Name        string
	Brand       string
	ServingSize string
	Calories    float64
	ProteinG    float64
	CarbsG      float64
	FatG        float64
	FiberG      float64
	SugarG      float64
	SodiumMg    float64
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) base() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 12 * time.Second}
}

// LookupBarcode resolves a product barcode to a nutrition record, or
// ErrNotFound.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (Food, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return Food{}, fmt.Errorf("barcode is required")
	}
	body, err := c.get(ctx, fmt.Sprintf("%s/api/v2/product/%s.json", c.base(), url.PathEscape(barcode)))
	if err != nil {
		return Food{}, err
	}

	var parsed offResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Food{}, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	if parsed.Status != 1 || strings.TrimSpace(parsed.Product.ProductName) == "" {
		return Food{}, fmt.Errorf("barcode %q: %w", barcode, ErrNotFound)
	}
	return normalizeProduct(parsed.Product), nil
}

// Search returns up to limit matching products, or ErrNotFound when
// the query misses entirely.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Food, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if limit <= 0 {
		limit = 5
	}
	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		c.base(), url.QueryEscape(query), limit)
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var parsed offSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode openfoodfacts search response: %w", err)
	}
	out := make([]Food, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if strings.TrimSpace(p.ProductName) == "" {
			continue
		}
		out = append(out, normalizeProduct(p))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("query %q: %w", query, ErrNotFound)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "macroquest/1.0 (+https://github.com/skalski/macroquest)")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}
	return body, nil
}

func normalizeProduct(p offProduct) Food {
	return Food{
		Name:        strings.TrimSpace(p.ProductName),
		Brand:       strings.TrimSpace(p.Brands),
		ServingSize: parseServing(p),
		Calories:    nutrientValue(p.Nutriments, "energy-kcal"),
		ProteinG:    nutrientValue(p.Nutriments, "proteins"),
		CarbsG:      nutrientValue(p.Nutriments, "carbohydrates"),
		FatG:        nutrientValue(p.Nutriments, "fat"),
		FiberG:      nutrientValue(p.Nutriments, "fiber"),
		SugarG:      nutrientValue(p.Nutriments, "sugars"),
		SodiumMg:    nutrientValue(p.Nutriments, "sodium") * 1000,
	}
}

func nutrientValue(n map[string]any, base string) float64 {
	for _, key := range []string{base + "_serving", base + "_100g"} {
		if v, ok := parseFloatAny(n[key]); ok {
			return sanitize(v)
		}
	}
	return 0
}

// sanitize coerces non-finite values to 0 so they never reach stored
// state.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func parseServing(p offProduct) string {
	if p.ServingQuantity > 0 {
		unit := strings.TrimSpace(p.ServingQuantityUnit)
		if unit == "" {
			unit = "g"
		}
		return fmt.Sprintf("%g %s", p.ServingQuantity, unit)
	}
	if s := strings.TrimSpace(p.ServingSize); s != "" {
		return s
	}
	return "100 g"
}

type offResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

type offProduct struct {
	ProductName         string         `json:"product_name"`
	Brands              string         `json:"brands"`
	ServingSize         string         `json:"serving_size"`
	ServingQuantity     float64        `json:"serving_quantity"`
	ServingQuantityUnit string         `json:"serving_quantity_unit"`
	Nutriments          map[string]any `json:"nutriments"`
}
