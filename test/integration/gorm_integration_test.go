package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"drone-response-be/internal/constant"
	"drone-response-be/internal/entity"
	"drone-response-be/internal/repository/specification"
	"drone-response-be/internal/repository/unitofwork"
	"drone-response-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.DroneRepository())
	assert.NotNil(t, uow.ChatSessionRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Drone Repository", func(t *testing.T) {
		count, err := uow.DroneRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Drone count: %d", count)
	})

	t.Run("Check Chat Analytics Repository", func(t *testing.T) {
		count, err := uow.ChatAnalyticsRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ChatAnalytics count: %d", count)
	})

	t.Run("Check Transactional Chat Exchange", func(t *testing.T) {
		ctx := context.Background()
		userId := uuid.New()

		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		session := &entity.ChatSession{
			Id:        uuid.New(),
			UserId:    userId,
			Title:     constant.DefaultSessionTitle,
			IsActive:  true,
			CreatedAt: time.Now(),
		}
		require.NoError(t, uow.ChatSessionRepository().Create(ctx, session))

		message := &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: session.Id,
			MessageType:   constant.ChatMessageTypeUser,
			Content:       "integration test message",
			CreatedAt:     time.Now(),
		}
		require.NoError(t, uow.ChatMessageRepository().Create(ctx, message))

		found, err := uow.ChatMessageRepository().FindOne(ctx,
			specification.ByID{ID: message.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "integration test message", found.Content)

		// Rollback in the deferred call keeps the database clean.
	})
}
