package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xhd2015/shabda/data/storage"
	"github.com/xhd2015/shabda/models"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *WordHttpService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewWordService(server.URL + "/")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestRandom_SendsCountAndDecodesWords(t *testing.T) {
	var gotPath, gotCount string
	var requests int
	svc := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotPath = r.URL.Path
		gotCount = r.URL.Query().Get("count")
		writeJSON(w, http.StatusOK, models.RandomResponse{
			Success: true,
			Count:   2,
			Words: []*models.WordEntry{
				{Sanskrit: "अग्निः", Gender: "masculine", EnglishMeaning: "fire"},
				{Sanskrit: "जलम्", Gender: "neuter", EnglishMeaning: "water"},
			},
		})
	})

	words, err := svc.Random(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 1 {
		t.Errorf("expected exactly 1 request, got %d", requests)
	}
	if gotPath != "/api/random" || gotCount != "2" {
		t.Errorf("unexpected request %s?count=%s", gotPath, gotCount)
	}
	if len(words) != 2 || words[1].EnglishMeaning != "water" {
		t.Errorf("unexpected words: %+v", words)
	}
}

func TestRandom_ServerFailure(t *testing.T) {
	svc := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, models.RandomResponse{Success: false, Error: "db down"})
	})

	_, err := svc.Random(context.Background(), 3)
	var serverErr *storage.ServerError
	if !errors.As(err, &serverErr) {
		t.Fatalf("expected ServerError, got %v", err)
	}
	if serverErr.Msg != "db down" {
		t.Errorf("expected message 'db down', got %q", serverErr.Msg)
	}
}

func TestRandom_NonJSONError(t *testing.T) {
	svc := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := svc.Random(context.Background(), 3)
	if err == nil {
		t.Fatal("expected error")
	}
	var serverErr *storage.ServerError
	if errors.As(err, &serverErr) {
		t.Errorf("transport failure should not be a ServerError: %v", err)
	}
}

func TestStats_OptionalFields(t *testing.T) {
	svc := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"gender_distribution":{"masculine":3}}`))
	})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalWords != nil {
		t.Errorf("expected nil total, got %d", *stats.TotalWords)
	}
	if stats.GenderDistribution["masculine"] != 3 {
		t.Errorf("unexpected distribution: %v", stats.GenderDistribution)
	}
}

func TestStats_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	_, err := NewWordService(addr).Stats(context.Background())
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
}

func TestSearch_Limit(t *testing.T) {
	svc := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "अ" {
			t.Errorf("unexpected query %q", r.URL.Query().Get("q"))
		}
		writeJSON(w, http.StatusOK, models.SearchResponse{
			Success: true,
			Results: []*models.WordEntry{{Sanskrit: "अ1"}, {Sanskrit: "अ2"}, {Sanskrit: "अ3"}},
		})
	})

	results, err := svc.Search(context.Background(), "अ", storage.SearchOptions{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestStats_DecodesTotalAndDistribution(t *testing.T) {
	var gotPath string
	svc := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"total_words":12345,"gender_distribution":{"masculine":3,"feminine":2}}`))
	})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/stats" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if stats.TotalWords == nil || *stats.TotalWords != 12345 {
		t.Errorf("unexpected total: %v", stats.TotalWords)
	}
	if stats.GenderDistribution["masculine"] != 3 || stats.GenderDistribution["feminine"] != 2 {
		t.Errorf("unexpected distribution: %v", stats.GenderDistribution)
	}
}

func TestStats_ErrorStatus(t *testing.T) {
	svc := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "maintenance"})
	})

	_, err := svc.Stats(context.Background())
	if err == nil {
		t.Fatal("expected error for non-2xx stats response")
	}
	var serverErr *storage.ServerError
	if errors.As(err, &serverErr) {
		t.Errorf("stats failure should not be a ServerError: %v", err)
	}
}
