// Package poster 封装第三方海报查询（OMDb）。
//
// 这是尽力而为的外部协作方：任何失败（网络错误、超时、响应
// 畸形、字段缺失、服务端的 "N/A"）都折叠为占位图 URL，从不向
// 调用方传播错误，也不会把整体响应拖慢超过自身超时。
package poster

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/aniruddha-beep/movie-suggestion/core"
)

const (
	// DefaultEndpoint 是 OMDb 的查询地址。
	DefaultEndpoint = "http://www.omdbapi.com/"

	// DefaultPlaceholder 是查询失败时返回的占位图。
	DefaultPlaceholder = "https://via.placeholder.com/200x300?text=No+Image"

	// DefaultTimeout 限制单次查询耗时。
	DefaultTimeout = 3 * time.Second
)

// Client 按影片标题查询海报 URL。
// Cache 为可选的结果缓存（core.Store），为 nil 时每个结果每次请求
// 恰好发起一次查询，无缓存无重试。
type Client struct {
	APIKey      string
	Endpoint    string        // 为空时使用 DefaultEndpoint
	Placeholder string        // 为空时使用 DefaultPlaceholder
	Timeout     time.Duration // <= 0 时使用 DefaultTimeout
	HTTPClient  *http.Client  // 为 nil 时使用 http.DefaultClient

	Cache    core.Store
	CacheTTL int // 秒，<= 0 表示不过期
}

type omdbResponse struct {
	Poster string `json:"Poster"`
}

// Fetch 返回标题对应的海报 URL，失败时返回占位图。永不出错。
func (c *Client) Fetch(ctx context.Context, title string) string {
	cacheKey := "poster:" + title
	if c.Cache != nil {
		if v, err := c.Cache.Get(ctx, cacheKey); err == nil && len(v) > 0 {
			return string(v)
		}
	}

	u := c.lookup(ctx, title)
	if u == "" {
		return c.placeholder()
	}

	if c.Cache != nil {
		// 只缓存成功结果；写失败不影响响应
		_ = c.Cache.Set(ctx, cacheKey, []byte(u), c.CacheTTL)
	}
	return u
}

// lookup 执行一次超时受限的 OMDb 查询，失败返回空串。
func (c *Client) lookup(ctx context.Context, title string) string {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	q := url.Values{}
	q.Set("apikey", c.APIKey)
	q.Set("t", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return ""
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var body omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	if body.Poster == "" || body.Poster == "N/A" {
		return ""
	}
	return body.Poster
}

func (c *Client) placeholder() string {
	if c.Placeholder != "" {
		return c.Placeholder
	}
	return DefaultPlaceholder
}
