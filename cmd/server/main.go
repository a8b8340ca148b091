package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"aitax/internal/api"
	"aitax/internal/config"
	"aitax/internal/database/milvus"
	"aitax/internal/database/mysql"
	"aitax/internal/database/redis"
	"aitax/internal/models"
	"aitax/internal/rag/embeddings"
	"aitax/internal/rag/extractors"
	"aitax/internal/rag/llms"
	"aitax/internal/rag/pipeline"
	"aitax/internal/rag/vectorstore"
	"aitax/internal/service"
	"aitax/internal/store"
	"aitax/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the YAML configuration file")
	flag.Parse()

	// Secrets referenced as ${VAR} in the config file can live in a .env file
	// during local development. Missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(logger.ParseLevel(cfg.Logger.Level))
	appLogger := logger.New("server")
	appLogger.Info("Starting aitax backend...")

	// Relational storage.
	db, err := mysql.GetDB(&cfg.MySQL)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Cache. The personalized-summary cache degrades gracefully without it.
	redisClient, err := redis.GetClient(&cfg.Redis)
	if err != nil {
		appLogger.Warn(fmt.Sprintf("Redis unavailable, summaries will not be cached: %v", err))
		redisClient = nil
	}

	// Vector storage.
	ctx := context.Background()
	milvusClient, err := milvus.GetClient(ctx, &cfg.Milvus)
	if err != nil {
		log.Fatalf("Failed to connect to Milvus: %v", err)
	}
	defer milvusClient.Close()
	if err := milvusClient.EnsureCollection(ctx, cfg.Milvus.CollectionName(), cfg.Milvus.EmbeddingDim); err != nil {
		log.Fatalf("Failed to ensure Milvus collection: %v", err)
	}

	// Model clients.
	embedder := embeddings.NewOpenAIModel(cfg.OpenAI.APIKey, cfg.OpenAI.EmbeddingModel)
	chatModel := llms.NewOpenAIChat(cfg.OpenAI.APIKey, cfg.OpenAI.ChatModel)

	chunkStore, err := vectorstore.NewMilvusStore(milvusClient, cfg.Milvus.CollectionName(), logger.New("vectorstore"))
	if err != nil {
		log.Fatalf("Failed to create vector store: %v", err)
	}

	// Stores.
	userStore := store.NewUserStore(db)
	documentStore := store.NewDocumentStore(db)
	chatStore := store.NewChatStore(db)
	newsStore := store.NewNewsStore(db)
	noteStore := store.NewNoteStore(db)
	profileStore := store.NewProfileStore(db)

	// RAG pipeline.
	ingestor := pipeline.NewIngestor(
		documentStore,
		map[models.DocumentType]extractors.Extractor{
			models.DocumentTypePDF: extractors.NewPdfExtractor(),
			models.DocumentTypeTXT: extractors.NewTxtExtractor(),
		},
		embedder,
		chunkStore,
		logger.New("ingestor"),
	)
	answerer := pipeline.NewAnswerer(embedder, chunkStore, chatModel, logger.New("answerer"))
	summaries := pipeline.NewSummaryGenerator(
		chatModel,
		redisClient,
		time.Duration(cfg.Redis.SummaryTTLMinutes)*time.Minute,
		logger.New("summaries"),
	)

	// Services.
	authService := service.NewAuthService(userStore, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	documentService := service.NewDocumentService(documentStore, ingestor, cfg.Uploads, logger.New("documents"))
	chatService := service.NewChatService(chatStore, documentService, answerer)
	newsService := service.NewNewsService(newsStore, profileStore, summaries)
	noteService := service.NewNoteService(noteStore, newsStore, documentStore)
	profileService := service.NewProfileService(profileStore)

	handler := api.NewHandler(
		authService,
		documentService,
		chatService,
		newsService,
		noteService,
		profileService,
		logger.New("api"),
	)
	router := api.SetupRouter(handler, cfg.Auth.JWTSecret)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info(fmt.Sprintf("HTTP server listening at %s", addr))
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to serve HTTP: %v", err)
	}
}
