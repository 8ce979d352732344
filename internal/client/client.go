// Package client типизированный клиент REST API портфолио. Каждый метод
// возвращает результат или ошибку; подмена демо-данными делается явно через OrDemo.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"music_portfolio/internal/domain/models"
	"music_portfolio/internal/transport/http/dto"
	"music_portfolio/internal/transport/http/dto/request"
	"music_portfolio/internal/transport/http/dto/response"
)

const defaultTimeout = 15 * time.Second

var (
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError ответ сервера с кодом не из 2xx
type APIError struct {
	StatusCode int
	Code       string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error %d: %s: %s", e.StatusCode, e.Code, e.Details)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Code)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	}
	return nil
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New baseURL без завершающего /api, например http://localhost:3001
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OrDemo возвращает demo(), если запрос не удался или вернул пустой список.
// Ошибка и пустой ответ не различаются.
func OrDemo[T any](items []T, err error, demo func() []T) []T {
	if err != nil || len(items) == 0 {
		return demo()
	}
	return items
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body response.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Code = body.Error
			apiErr.Details = body.Details
		}
		return apiErr
	}

	if out == nil {
		_, err = io.Copy(io.Discard, resp.Body)
		return err
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	const op = "client.do"

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return fmt.Errorf("%s: %s %s: %w", op, method, path, err)
	}

	if err := c.send(req, out); err != nil {
		return fmt.Errorf("%s: %s %s: %w", op, method, path, err)
	}

	return nil
}

func list[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var items []T
	if err := c.do(ctx, http.MethodGet, path, query, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Client) create(ctx context.Context, path string, body any) (string, error) {
	var created response.CreatedResponse
	if err := c.do(ctx, http.MethodPost, path, nil, body, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (c *Client) counter(ctx context.Context, path string) (int, error) {
	var resp response.CounterResponse
	if err := c.do(ctx, http.MethodPut, path, nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func filter(key, value string) url.Values {
	if value == "" {
		return nil
	}
	return url.Values{key: {value}}
}

func resource(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}

// Publications

func (c *Client) Publications(ctx context.Context, f models.PublicationFilter) ([]models.Publication, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	return list[models.Publication](ctx, c, "/api/publications", q)
}

func (c *Client) Publication(ctx context.Context, id string) (models.Publication, error) {
	var p models.Publication
	err := c.do(ctx, http.MethodGet, resource("/api/publications", id), nil, nil, &p)
	return p, err
}

func (c *Client) CreatePublication(ctx context.Context, req dto.CreatePublicationRequest) (string, error) {
	return c.create(ctx, "/api/publications", req)
}

func (c *Client) UpdatePublication(ctx context.Context, id string, req dto.UpdatePublicationRequest) error {
	return c.do(ctx, http.MethodPut, resource("/api/publications", id), nil, req, nil)
}

func (c *Client) DeletePublication(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource("/api/publications", id), nil, nil, nil)
}

// Albums

func (c *Client) Albums(ctx context.Context) ([]models.Album, error) {
	return list[models.Album](ctx, c, "/api/albums", nil)
}

func (c *Client) CreateAlbum(ctx context.Context, req dto.CreateAlbumRequest) (string, error) {
	return c.create(ctx, "/api/albums", req)
}

func (c *Client) UpdateAlbum(ctx context.Context, id string, req dto.UpdateAlbumRequest) error {
	return c.do(ctx, http.MethodPut, resource("/api/albums", id), nil, req, nil)
}

func (c *Client) DeleteAlbum(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource("/api/albums", id), nil, nil, nil)
}

func (c *Client) AddPhoto(ctx context.Context, albumID, photoURL string) (string, error) {
	return c.create(ctx, resource("/api/albums", albumID)+"/photos", dto.AddPhotoRequest{URL: photoURL})
}

// Achievements & portfolio

func (c *Client) Achievements(ctx context.Context, typ string) ([]models.Achievement, error) {
	return list[models.Achievement](ctx, c, "/api/achievements", filter("type", typ))
}

func (c *Client) CreateAchievement(ctx context.Context, req dto.CreateAchievementRequest) (string, error) {
	return c.create(ctx, "/api/achievements", req)
}

func (c *Client) DeleteAchievement(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource("/api/achievements", id), nil, nil, nil)
}

func (c *Client) Portfolio(ctx context.Context, category string) ([]models.PortfolioItem, error) {
	return list[models.PortfolioItem](ctx, c, "/api/portfolio", filter("category", category))
}

func (c *Client) CreatePortfolioItem(ctx context.Context, req dto.CreatePortfolioRequest) (string, error) {
	return c.create(ctx, "/api/portfolio", req)
}

func (c *Client) UpdatePortfolioItem(ctx context.Context, id string, req dto.UpdatePortfolioRequest) error {
	return c.do(ctx, http.MethodPut, resource("/api/portfolio", id), nil, req, nil)
}

func (c *Client) DeletePortfolioItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource("/api/portfolio", id), nil, nil, nil)
}

// Reviews & messages

func (c *Client) Reviews(ctx context.Context, status string) ([]models.Review, error) {
	return list[models.Review](ctx, c, "/api/reviews", filter("status", status))
}

func (c *Client) CreateReview(ctx context.Context, req dto.CreateReviewRequest) (string, error) {
	return c.create(ctx, "/api/reviews", req)
}

func (c *Client) ApproveReview(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, resource("/api/reviews", id)+"/approve", nil, nil, nil)
}

// LikeReview возвращает новое число лайков
func (c *Client) LikeReview(ctx context.Context, id string) (int, error) {
	return c.counter(ctx, resource("/api/reviews", id)+"/like")
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource("/api/reviews", id), nil, nil, nil)
}

func (c *Client) Messages(ctx context.Context, status string) ([]models.Message, error) {
	return list[models.Message](ctx, c, "/api/messages", filter("status", status))
}

func (c *Client) CreateMessage(ctx context.Context, req dto.CreateMessageRequest) (string, error) {
	return c.create(ctx, "/api/messages", req)
}

func (c *Client) MarkMessageRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, resource("/api/messages", id)+"/read", nil, nil, nil)
}

func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource("/api/messages", id), nil, nil, nil)
}

// Audio & video

func (c *Client) Audio(ctx context.Context, category string) ([]models.AudioTrack, error) {
	return list[models.AudioTrack](ctx, c, "/api/audio", filter("category", category))
}

func (c *Client) CreateAudio(ctx context.Context, req dto.CreateAudioRequest) (string, error) {
	return c.create(ctx, "/api/audio", req)
}

func (c *Client) DeleteAudio(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource("/api/audio", id), nil, nil, nil)
}

func (c *Client) Videos(ctx context.Context, category string) ([]models.Video, error) {
	return list[models.Video](ctx, c, "/api/videos", filter("category", category))
}

func (c *Client) CreateVideo(ctx context.Context, req dto.CreateVideoRequest) (string, error) {
	return c.create(ctx, "/api/videos", req)
}

// ViewVideo возвращает новое число просмотров
func (c *Client) ViewVideo(ctx context.Context, id string) (int, error) {
	return c.counter(ctx, resource("/api/videos", id)+"/view")
}

func (c *Client) DeleteVideo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resource("/api/videos", id), nil, nil, nil)
}

// Pages

func (c *Client) Page(ctx context.Context, id string) (models.Page, error) {
	var p models.Page
	err := c.do(ctx, http.MethodGet, resource("/api/pages", id), nil, nil, &p)
	return p, err
}

func (c *Client) UpdatePage(ctx context.Context, id string, req dto.UpdatePageRequest) error {
	return c.do(ctx, http.MethodPut, resource("/api/pages", id), nil, req, nil)
}

// Admin

// Login false без ошибки означает неверный пароль
func (c *Client) Login(ctx context.Context, password string) (bool, error) {
	var resp response.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/admin/login", nil, request.LoginRequest{Password: password}, &resp)
	if errors.Is(err, ErrUnauthorized) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (c *Client) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	err := c.do(ctx, http.MethodGet, "/api/stats", nil, nil, &stats)
	return stats, err
}

func (c *Client) SeedDemo(ctx context.Context) (response.SeedResponse, error) {
	var res response.SeedResponse
	err := c.do(ctx, http.MethodPost, "/api/admin/seed", nil, nil, &res)
	return res, err
}

// Files

func (c *Client) Upload(ctx context.Context, filename, contentType string, r io.Reader) (response.UploadResponse, error) {
	const op = "client.Upload"

	var out response.UploadResponse

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	if err != nil {
		return out, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return out, fmt.Errorf("%s: %w", op, err)
	}
	if err := writer.Close(); err != nil {
		return out, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", body)
	if err != nil {
		return out, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if err := c.send(req, &out); err != nil {
		return out, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (c *Client) FileURL(ctx context.Context, path string) (string, error) {
	var resp response.FileURLResponse
	err := c.do(ctx, http.MethodGet, resource("/api/files", path), nil, nil, &resp)
	return resp.URL, err
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}
