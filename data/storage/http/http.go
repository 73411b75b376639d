package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	http_request "github.com/xhd2015/go-http-request"
	"github.com/xhd2015/shabda/data/storage"
	"github.com/xhd2015/shabda/models"
)

const DefaultTimeout = 30 * time.Second

// WordHttpService implements storage.WordService against the word API:
//
//	GET /api/stats
//	GET /api/random?count=N
//	GET /api/search?q=Q
type WordHttpService struct {
	serverAddr string
	client     *http.Client
}

var _ storage.WordService = (*WordHttpService)(nil)

func NewWordService(serverAddr string) *WordHttpService {
	return &WordHttpService{
		serverAddr: strings.TrimSuffix(serverAddr, "/"),
		client:     &http.Client{Timeout: DefaultTimeout},
	}
}

// getJSON issues a GET and decodes the JSON body into respData
func (s *WordHttpService) getJSON(ctx context.Context, path string, query url.Values, respData any) error {
	err := http_request.New().WithClient(s.client).Get(ctx, s.url(path, query), respData)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	return nil
}

// getResult is getJSON for endpoints that answer application errors with
// a {success:false,error} body and status 400. The request builder reports
// any status >= 300 without its body, so on failure the body is read back
// with a plain GET.
func (s *WordHttpService) getResult(ctx context.Context, path string, query url.Values, respData any) error {
	err := s.getJSON(ctx, path, query, respData)
	if err == nil {
		return nil
	}
	if s.decodeErrorBody(ctx, s.url(path, query), respData) {
		return nil
	}
	return err
}

func (s *WordHttpService) decodeErrorBody(ctx context.Context, u string, respData any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 300 {
		return false
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false
	}
	return json.Unmarshal(body, respData) == nil
}

func (s *WordHttpService) url(path string, query url.Values) string {
	u := s.serverAddr + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (s *WordHttpService) Stats(ctx context.Context) (*models.StatsSnapshot, error) {
	var stats models.StatsSnapshot
	err := s.getJSON(ctx, "/api/stats", nil, &stats)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	return &stats, nil
}

func (s *WordHttpService) Random(ctx context.Context, count int) ([]*models.WordEntry, error) {
	var response models.RandomResponse
	err := s.getResult(ctx, "/api/random", url.Values{"count": []string{strconv.Itoa(count)}}, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch random words: %w", err)
	}
	if !response.Success {
		return nil, &storage.ServerError{Msg: response.Error}
	}
	return response.Words, nil
}

func (s *WordHttpService) Search(ctx context.Context, query string, options storage.SearchOptions) ([]*models.WordEntry, error) {
	var response models.SearchResponse
	err := s.getResult(ctx, "/api/search", url.Values{"q": []string{query}}, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to search words: %w", err)
	}
	if !response.Success {
		return nil, &storage.ServerError{Msg: response.Error}
	}
	results := response.Results
	if options.Limit > 0 && len(results) > options.Limit {
		results = results[:options.Limit]
	}
	return results, nil
}
