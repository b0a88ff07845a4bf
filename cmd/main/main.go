package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/supchaser/bookmark_annotator/internal/app/content"
	"github.com/supchaser/bookmark_annotator/internal/app/delivery"
	"github.com/supchaser/bookmark_annotator/internal/app/keywords"
	"github.com/supchaser/bookmark_annotator/internal/app/repository"
	"github.com/supchaser/bookmark_annotator/internal/app/summary"
	"github.com/supchaser/bookmark_annotator/internal/app/usecase"
	"github.com/supchaser/bookmark_annotator/internal/clients/keywordapi"
	"github.com/supchaser/bookmark_annotator/internal/clients/llm"
	"github.com/supchaser/bookmark_annotator/internal/clients/raindrop"
	"github.com/supchaser/bookmark_annotator/internal/clients/transcript"
	"github.com/supchaser/bookmark_annotator/internal/config"
	"github.com/supchaser/bookmark_annotator/internal/middleware"
	"github.com/supchaser/bookmark_annotator/internal/utils/logger"
	"github.com/supchaser/bookmark_annotator/internal/utils/retry"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")

	// External clients are constructed once here and passed in
	// explicitly; nothing below reaches for ambient global state.
	exec := retry.CreateExecutor()
	store := raindrop.CreateClient(cfg.RaindropToken)
	completer := llm.CreateClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	transcripts := transcript.CreateClient(cfg.TranscriptAPIURL, cfg.TranscriptAPIKey)
	keywordClient := keywordapi.CreateClient(cfg.KeywordAPIURL, cfg.KeywordAPIKey)

	composer := summary.CreateComposer(completer, exec)
	extractor := content.CreateExtractor(nil, transcripts, composer, exec)
	tagger := keywords.CreateExtractor(keywordClient, exec)
	taskRepo := repository.CreateTaskRepository()

	bookmarkUsecase := usecase.CreateBookmarkUsecase(store, extractor, tagger, composer, taskRepo, exec)
	bookmarkDelivery := delivery.CreateBookmarkDelivery(bookmarkUsecase)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.HandleFunc("/bookmarks", bookmarkDelivery.GetBookmarks).Methods("GET")
	apiRouter.HandleFunc("/bookmarks/process", bookmarkDelivery.ProcessBookmarks).Methods("POST")
	apiRouter.HandleFunc("/bookmarks/process-all", bookmarkDelivery.ProcessAllBookmarks).Methods("POST")
	apiRouter.HandleFunc("/tasks", bookmarkDelivery.GetAllTasks).Methods("GET")
	apiRouter.HandleFunc("/tasks/{id}", bookmarkDelivery.GetTaskStatus).Methods("GET")

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.PanicMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	case sig := <-quit:
		logger.Info("server is shutting down",
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			os.Exit(1)
		}

		logger.Info("server stopped")
	}
}
