package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	_ "github.com/lib/pq"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"aria/be/internal/auth"
	"aria/be/internal/avatar"
	"aria/be/internal/chat"
	"aria/be/internal/command"
	"aria/be/internal/config"
	adb "aria/be/internal/db"
	"aria/be/internal/llm"
	"aria/be/internal/memory"
	"aria/be/internal/speech"
	"aria/be/internal/task"
	"aria/be/internal/user"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the yaml config file")
	envPath := flag.String("env", "config/.env", "path to the .env file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath, *envPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize router
	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Initialize database
	db, err := adb.NewADb("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	if err := db.Migrate(context.Background()); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     cfg.CORS.AllowMethods,
		AllowHeaders:     cfg.CORS.AllowHeaders,
		ExposeHeaders:    cfg.CORS.ExposeHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	}))

	// Completion provider. The OpenAI client stays around regardless of the
	// chat provider choice: avatars and speech always go through it.
	openAIClient := openai.NewClient(cfg.OpenAI.APIKey)
	openAIProvider := llm.NewOpenAIProvider(openAIClient)

	var provider llm.AIProvider = openAIProvider
	model := cfg.OpenAI.Model
	switch cfg.Provider {
	case "", "openai":
	case "gemini":
		geminiClient, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		provider = llm.NewGeminiProvider(geminiClient)
	case "compat":
		provider = llm.NewCompatProvider(cfg.Compat.BaseURL, cfg.Compat.APIKey, http.DefaultClient)
		model = cfg.Compat.Model
	default:
		log.Fatalf("Unknown provider %q", cfg.Provider)
	}

	// User + auth
	userRepository := user.NewRepositoryImpl(db)
	userService := user.NewServiceImpl(userRepository)
	authService := auth.NewServiceImpl(userService, cfg.JWT)
	authController := auth.NewControllerImpl(authService)
	authController.RegisterRoutes(router)

	authed := router.Group("/v1", auth.Middleware(authService))

	userController := user.NewControllerImpl(userService)
	userController.RegisterRoutes(router, authed)

	// CRUD panels
	memoryService := memory.NewServiceImpl(memory.NewRepositoryImpl(db))
	memory.NewControllerImpl(memoryService).RegisterRoutes(authed)

	taskService := task.NewServiceImpl(task.NewRepositoryImpl(db))
	task.NewControllerImpl(taskService).RegisterRoutes(authed)

	commandService := command.NewServiceImpl(command.NewRepositoryImpl(db))
	command.NewControllerImpl(commandService).RegisterRoutes(authed)

	// Chat
	chatService := chat.NewChatService(provider, memoryService, commandService, chat.NewRepositoryImpl(db), model)
	chat.NewChatController(chatService).RegisterRoutes(authed)

	// Avatar + speech
	avatarService := avatar.NewServiceImpl(openAIProvider, avatar.NewRepositoryImpl(db))
	avatar.NewControllerImpl(avatarService).RegisterRoutes(authed)

	speechService := speech.NewServiceImpl(openAIProvider)
	speech.NewControllerImpl(speechService).RegisterRoutes(authed)

	// Start server
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
