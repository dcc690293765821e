package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jbeshir/referral-predictor-frontend/controllers"
	"github.com/jbeshir/referral-predictor-frontend/model"
	"github.com/jbeshir/referral-predictor-frontend/responders"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func main() {
	config, err := loadConfig(configPath)
	if err != nil {
		logrus.Fatalf("Unable to load config: %s", err)
	}
	if port := os.Getenv("PORT"); port != "" {
		config.Port = port
	}

	logFile, err := setupLogging(config.Log)
	if err != nil {
		logrus.Fatalf("Unable to set up logging: %s", err)
	}

	server, err := newServer(context.Background(), config)
	if err != nil {
		logrus.Errorf("Unable to load model: %s", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("Serving referral form on %s", server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case err := <-serveErr:
		logrus.Errorf("HTTP server failed: %s", err)
		exitCode = 1
	case <-quit:
		logrus.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := server.Shutdown(ctx); err != nil {
			logrus.Errorf("Server forced to shut down: %s", err)
			exitCode = 1
		}
		cancel()
	}

	if logFile != nil {
		logFile.Close()
	}
	os.Exit(exitCode)
}

// newServer loads the model and builds the server around it. Without a
// model there is no server.
func newServer(ctx context.Context, config *Config) (*http.Server, error) {
	m, err := model.Load(ctx, config.ModelPath)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:    ":" + config.Port,
		Handler: newMux(m, config),
	}, nil
}

func newMux(p controllers.Predictor, config *Config) *http.ServeMux {
	cm := &LocalContextMaker{}

	recommend := &controllers.Recommend{
		Predictor: p,
		Limiter:   newSubmissionLimiter(config.SubmissionsPerSecond),
	}
	formHandler := recommend.HandleFunc(cm, &responders.WebFormResponder{})

	health := &controllers.Health{
		Predictor: p,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		formHandler(w, r)
	})
	mux.HandleFunc("/healthz", health.HandleFunc(cm, &responders.WebSimpleResponder{
		ExposeErrors: config.ExposeErrors,
	}))
	return mux
}

func newSubmissionLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1)
}
