package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

var (
	ErrConfigInvalid   = errors.New("linkedin config invalid")
	ErrInputInvalid    = errors.New("linkedin input invalid")
	ErrAuthFailed      = errors.New("linkedin auth failed")
	ErrRequestFailed   = errors.New("linkedin request failed")
	ErrResponseInvalid = errors.New("linkedin response invalid")
	ErrUnauthorized    = errors.New("linkedin token rejected")
)

const (
	defaultAuthURL    = "https://www.linkedin.com/oauth/v2/authorization"
	defaultTokenURL   = "https://www.linkedin.com/oauth/v2/accessToken"
	defaultAPIBaseURL = "https://api.linkedin.com/v2"
	restliVersion     = "2.0.0"
)

// DefaultScopes 授权范围：基础资料、邮箱、代表会员发帖
var DefaultScopes = []string{"r_liteprofile", "r_emailaddress", "w_member_social"}

// Config LinkedIn 应用配置。
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	APIBaseURL   string
	Scopes       []string
	Timeout      time.Duration // 0 表示不设超时
}

// Profile 当前会员资料。
type Profile struct {
	ID        string
	FirstName string
	LastName  string
	Raw       map[string]interface{}
}

// ShareInput 分享文章输入。
type ShareInput struct {
	Text     string
	Title    string
	URL      string
	ImageURL string
}

// ValidateConfig 校验配置。
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.ClientID) == "" {
		return fmt.Errorf("%w: client_id is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.ClientSecret) == "" {
		return fmt.Errorf("%w: client_secret is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(cfg.RedirectURL) == "" {
		return fmt.Errorf("%w: redirect_url is required", ErrConfigInvalid)
	}
	for name, raw := range map[string]string{
		"redirect_url": cfg.RedirectURL,
		"auth_url":     cfg.AuthURL,
		"token_url":    cfg.TokenURL,
		"api_base_url": cfg.APIBaseURL,
	} {
		if _, err := url.ParseRequestURI(strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%w: %s is invalid", ErrConfigInvalid, name)
		}
	}
	return nil
}

func (c *Config) normalize() {
	c.ClientID = strings.TrimSpace(c.ClientID)
	c.ClientSecret = strings.TrimSpace(c.ClientSecret)
	c.RedirectURL = strings.TrimSpace(c.RedirectURL)
	c.AuthURL = strings.TrimSpace(c.AuthURL)
	if c.AuthURL == "" {
		c.AuthURL = defaultAuthURL
	}
	c.TokenURL = strings.TrimSpace(c.TokenURL)
	if c.TokenURL == "" {
		c.TokenURL = defaultTokenURL
	}
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	if c.APIBaseURL == "" {
		c.APIBaseURL = defaultAPIBaseURL
	}
	scopes := make([]string, 0, len(c.Scopes))
	for _, scope := range c.Scopes {
		if scope = strings.TrimSpace(scope); scope != "" {
			scopes = append(scopes, scope)
		}
	}
	if len(scopes) == 0 {
		scopes = append(scopes, DefaultScopes...)
	}
	c.Scopes = scopes
	if c.Timeout < 0 {
		c.Timeout = 0
	}
}

// Client LinkedIn API 客户端。
type Client struct {
	cfg        Config
	oauth      *oauth2.Config
	httpClient *http.Client
}

// NewClient 创建客户端，httpClient 为空时使用 http.DefaultClient。
func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	cfg.normalize()
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: httpClient,
	}, nil
}

// AuthCodeURL 生成授权地址，携带 state 防伪参数。
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange 使用授权码换取访问令牌。
func (c *Client) Exchange(ctx context.Context, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("%w: code is empty", ErrAuthFailed)
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauth.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	if strings.TrimSpace(token.AccessToken) == "" {
		return "", fmt.Errorf("%w: empty access token", ErrAuthFailed)
	}
	return token.AccessToken, nil
}

// Profile 获取令牌所属会员资料，令牌失效时返回 ErrUnauthorized。
func (c *Client) Profile(ctx context.Context, accessToken string) (*Profile, error) {
	respBody, statusCode, err := c.doJSONRequest(ctx, http.MethodGet, "/me", accessToken, nil)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(statusCode, "profile"); err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode profile failed", ErrResponseInvalid)
	}
	profile := &Profile{
		ID:        strings.TrimSpace(readString(raw, "id")),
		FirstName: readString(raw, "localizedFirstName"),
		LastName:  readString(raw, "localizedLastName"),
		Raw:       raw,
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("%w: missing member id", ErrResponseInvalid)
	}
	return profile, nil
}

// Share 以当前会员身份发布文章链接（UGC Post）。
func (c *Client) Share(ctx context.Context, accessToken string, input ShareInput) (map[string]interface{}, error) {
	if strings.TrimSpace(input.Text) == "" || strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.URL) == "" {
		return nil, fmt.Errorf("%w: text, title and url are required", ErrInputInvalid)
	}
	profile, err := c.Profile(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(buildSharePayload(profile.ID, input))
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request failed", ErrRequestFailed)
	}
	respBody, statusCode, err := c.doJSONRequest(ctx, http.MethodPost, "/ugcPosts", accessToken, body)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(statusCode, "share"); err != nil {
		return nil, err
	}

	result := map[string]interface{}{}
	if len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, &result); err != nil {
			return nil, fmt.Errorf("%w: decode share response failed", ErrResponseInvalid)
		}
	}
	return result, nil
}

func buildSharePayload(memberID string, input ShareInput) map[string]interface{} {
	media := map[string]interface{}{
		"status":      "READY",
		"description": map[string]string{"text": input.Title},
		"originalUrl": input.URL,
	}
	if thumbnail := strings.TrimSpace(input.ImageURL); thumbnail != "" {
		media["thumbnail"] = thumbnail
	}
	return map[string]interface{}{
		"author":         "urn:li:person:" + memberID,
		"lifecycleState": "PUBLISHED",
		"specificContent": map[string]interface{}{
			"com.linkedin.ugc.ShareContent": map[string]interface{}{
				"shareCommentary":    map[string]string{"text": input.Text},
				"shareMediaCategory": "ARTICLE",
				"media":              []interface{}{media},
			},
		},
		"visibility": map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}
}

func checkStatus(statusCode int, action string) error {
	switch {
	case statusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s status %d", ErrUnauthorized, action, statusCode)
	case statusCode < 200 || statusCode >= 300:
		return fmt.Errorf("%w: %s status %d", ErrResponseInvalid, action, statusCode)
	}
	return nil
}

func (c *Client) doJSONRequest(ctx context.Context, method, endpoint, token string, body []byte) ([]byte, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.APIBaseURL+endpoint, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: build request failed", ErrRequestFailed)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", restliVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: read response failed", ErrRequestFailed)
	}
	return respBody, resp.StatusCode, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.cfg.Timeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.cfg.Timeout)
}

func readString(raw map[string]interface{}, path ...string) string {
	if raw == nil {
		return ""
	}
	var current interface{} = raw
	for _, seg := range path {
		if idx, err := strconv.Atoi(seg); err == nil {
			arr, ok := current.([]interface{})
			if !ok || idx < 0 || idx >= len(arr) {
				return ""
			}
			current = arr[idx]
			continue
		}
		next, ok := current.(map[string]interface{})
		if !ok {
			return ""
		}
		current = next[seg]
	}
	switch v := current.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
