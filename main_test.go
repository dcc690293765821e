package main

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jbeshir/referral-predictor-frontend/model"
	"github.com/pkg/errors"
)

func TestLoadConfig_Missing(t *testing.T) {
	t.Parallel()

	config, err := loadConfig(filepath.Join(t.TempDir(), "referral.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error loading missing config: %s", err)
	}
	if config.Port != "8080" {
		t.Errorf("Expected default port 8080, was %s", config.Port)
	}
	if config.ModelPath != "model.pkl" {
		t.Errorf("Expected default model path model.pkl, was %s", config.ModelPath)
	}
	if config.SubmissionsPerSecond != 0 {
		t.Errorf("Expected submissions to be unthrottled by default")
	}
}

func TestLoadConfig_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "referral.yaml")
	content := "port: \"9090\"\nmodel_path: models/referral.pkl\nsubmissions_per_second: 2\nlog:\n  level: debug\n"
	if err := ioutil.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error loading config: %s", err)
	}
	if config.Port != "9090" {
		t.Errorf("Expected port 9090, was %s", config.Port)
	}
	if config.ModelPath != "models/referral.pkl" {
		t.Errorf("Expected model path models/referral.pkl, was %s", config.ModelPath)
	}
	if config.SubmissionsPerSecond != 2 {
		t.Errorf("Expected 2 submissions per second, was %g", config.SubmissionsPerSecond)
	}
	if config.Log.Level != "debug" {
		t.Errorf("Expected debug log level, was %s", config.Log.Level)
	}
	if config.Log.MaxBackups != 3 {
		t.Errorf("Expected unset log settings to keep defaults, max backups was %d", config.Log.MaxBackups)
	}
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "referral.yaml")
	if err := ioutil.WriteFile(path, []byte("prot: 9090\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("Expected error for unknown config key, got nil")
	}
}

func TestNewSubmissionLimiter(t *testing.T) {
	t.Parallel()

	if newSubmissionLimiter(0) != nil {
		t.Error("Expected no limiter for zero rate")
	}
	if newSubmissionLimiter(3) == nil {
		t.Error("Expected limiter for positive rate")
	}
}

func TestLocalContextMaker(t *testing.T) {
	t.Parallel()

	cm := &LocalContextMaker{}
	ctx, err := cm.MakeContext(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Errorf("Unexpected error making context: %s", err)
	}
	if ctx == nil {
		t.Error("Expected non-nil context")
	}
}

func TestNewServer_MissingModel(t *testing.T) {
	t.Parallel()

	config := defaultConfig()
	config.ModelPath = filepath.Join(t.TempDir(), "model.pkl")

	server, err := newServer(context.Background(), config)
	if server != nil {
		t.Error("Expected no server without a model")
	}
	if !errors.Is(err, model.ErrArtifactNotFound) {
		t.Errorf("Expected ErrArtifactNotFound, got %v", err)
	}
}

func TestNewServer_CorruptModel(t *testing.T) {
	t.Parallel()

	config := defaultConfig()
	config.ModelPath = filepath.Join(t.TempDir(), "model.pkl")
	if err := ioutil.WriteFile(config.ModelPath, []byte("bluh"), 0600); err != nil {
		t.Fatal(err)
	}

	server, err := newServer(context.Background(), config)
	if server != nil {
		t.Error("Expected no server with a corrupt model")
	}
	var de *model.DeserializationError
	if !errors.As(err, &de) {
		t.Errorf("Expected DeserializationError, got %v", err)
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	path := filepath.Join(t.TempDir(), model.DefaultArtifactPath)
	err := model.SaveFile(path, model.Artifact{
		Kind:    model.KindDecisionTree,
		Columns: []string{"seat_comfort", "cabin_service", "food_bev", "entertainment", "ground_service", "value_for_money"},
		Tree: []model.TreeNode{
			{FeatureIdx: 5, Threshold: 2, LeftChild: 1, RightChild: 2},
			{IsLeaf: true, ClassLabel: 0},
			{IsLeaf: true, ClassLabel: 1},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	m, err := model.Load(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(newMux(m, defaultConfig()))
	t.Cleanup(server.Close)
	return server
}

func getTestPage(t *testing.T, server *httptest.Server, values url.Values) *goquery.Document {
	resp, err := http.Get(server.URL + "/?" + values.Encode())
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("Expected a status code of 200, got %d", resp.StatusCode)
	}
	page, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return page
}

func TestServer_Recommend(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	values := url.Values{}
	values.Set("value_for_money", "5")
	values.Set("traveller_type", "Business")
	values.Set("cabin", "Business Class")
	values.Set("action", "recommend")

	page := getTestPage(t, server, values)
	if got := page.Find(".recommendation-yes").Text(); got != "Recommended: YES" {
		t.Errorf("Expected 'Recommended: YES', got '%s'", got)
	}

	values.Set("value_for_money", "1")
	page = getTestPage(t, server, values)
	if got := page.Find(".recommendation-no").Text(); got != "Recommended: NO" {
		t.Errorf("Expected 'Recommended: NO', got '%s'", got)
	}
}

func TestServer_InputChangeOnly(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	values := url.Values{}
	values.Set("value_for_money", "5")

	page := getTestPage(t, server, values)
	if n := len(page.Find(".recommendation").Nodes); n != 0 {
		t.Errorf("Expected no recommendation without submitting, found %d", n)
	}
	if v, _ := page.Find(`input[name="value_for_money"]`).Attr("value"); v != "5" {
		t.Errorf("Expected slider to keep value 5, was %s", v)
	}
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := ioutil.ReadAll(resp.Body)
	if resp.StatusCode != 200 || strings.TrimSpace(string(body)) != "OK: predicted label 0 for default ratings" {
		t.Errorf("Unexpected health response: %d %s", resp.StatusCode, body)
	}
}

func TestServer_NotFound(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/favicon.ico")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Errorf("Expected a status code of 404, got %d", resp.StatusCode)
	}
}
