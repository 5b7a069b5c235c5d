package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"drone-response-be/internal/constant"
	"drone-response-be/internal/dto"
	"drone-response-be/internal/model"
	"drone-response-be/internal/pkg/logger"
	"drone-response-be/internal/pkg/serverutils"
	"drone-response-be/internal/repository/specification"
	"drone-response-be/internal/repository/unitofwork"
	"drone-response-be/pkg/chatbot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// The models carry postgres defaults (gen_random_uuid), so the sqlite
// test schema is created by hand. Services always set ids themselves.
var testSchema = []string{
	`CREATE TABLE chat_sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT 'New Chat',
		is_active NUMERIC NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE chat_messages (
		id TEXT PRIMARY KEY,
		chat_session_id TEXT NOT NULL,
		message_type TEXT NOT NULL,
		content TEXT NOT NULL,
		metadata TEXT,
		created_at DATETIME
	)`,
	`CREATE TABLE quick_actions (
		id TEXT PRIMARY KEY,
		chat_message_id TEXT NOT NULL,
		action_type TEXT NOT NULL,
		label TEXT NOT NULL,
		icon TEXT NOT NULL DEFAULT 'help',
		data TEXT,
		created_at DATETIME
	)`,
	`CREATE TABLE chat_analytics (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		query_type TEXT NOT NULL,
		response_time REAL NOT NULL,
		satisfaction_score INTEGER,
		created_at DATETIME
	)`,
	`CREATE TABLE drones (
		id TEXT PRIMARY KEY,
		location_latitude REAL,
		location_longitude REAL,
		package_details TEXT,
		urgency_level TEXT,
		assigned_pilot_id TEXT,
		additional_note TEXT,
		status TEXT,
		is_deleted NUMERIC NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`,
}

type chatbotTestEnv struct {
	service    IChatbotService
	uowFactory unitofwork.RepositoryFactory
	db         *gorm.DB
	userId     uuid.UUID
}

func newChatbotTestEnv(t *testing.T) *chatbotTestEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range testSchema {
		require.NoError(t, db.Exec(ddl).Error)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	testLogger := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))

	droneService := NewDroneService(uowFactory, nil, testLogger)
	generator := chatbot.NewGenerator(droneService)
	chatbotService := NewChatbotService(uowFactory, generator, nil, testLogger)

	return &chatbotTestEnv{
		service:    chatbotService,
		uowFactory: uowFactory,
		db:         db,
		userId:     uuid.New(),
	}
}

func TestProcessMessageCreatesSessionAndPersistsExchange(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	res, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{
		Message: "hello there",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, res.SessionId)
	assert.Contains(t, res.Content, "drone disaster management")
	assert.Len(t, res.QuickActions, 4)

	uow := env.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: res.SessionId})
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, env.userId, session.UserId)
	assert.Equal(t, constant.DefaultSessionTitle, session.Title)
	assert.True(t, session.IsActive)

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: res.SessionId},
		specification.OrderBy{Field: "created_at"},
	)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, constant.ChatMessageTypeUser, messages[0].MessageType)
	assert.Equal(t, "hello there", messages[0].Content)
	assert.Equal(t, "general", messages[0].Metadata["intent"])
	assert.Equal(t, constant.ChatMessageTypeBot, messages[1].MessageType)
	assert.Equal(t, res.MessageId, messages[1].Id)

	actions, err := uow.QuickActionRepository().FindAll(ctx,
		specification.ByChatMessageID{ChatMessageID: res.MessageId},
	)
	require.NoError(t, err)
	assert.Len(t, actions, 4)

	analytics, err := uow.ChatAnalyticsRepository().FindAll(ctx,
		specification.ByUserID{UserID: env.userId},
	)
	require.NoError(t, err)
	require.Len(t, analytics, 1)
	assert.Equal(t, "general", analytics[0].QueryType)
	assert.GreaterOrEqual(t, analytics[0].ResponseTime, 0.0)
	assert.Nil(t, analytics[0].SatisfactionScore)
}

func TestProcessMessageRejectsWhitespaceOnly(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	for _, message := range []string{"", "   ", "\n\t  "} {
		_, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{
			Message: message,
		})
		var validationErr *serverutils.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}

	uow := env.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, sessions)
	messages, err := uow.ChatMessageRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, messages)
}

func TestProcessMessageTrimsSurroundingWhitespace(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	res, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{
		Message: "  hello there  ",
	})
	require.NoError(t, err)

	uow := env.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: res.SessionId},
		specification.OrderBy{Field: "created_at"},
	)
	require.NoError(t, err)
	require.NotEmpty(t, messages)
	assert.Equal(t, "hello there", messages[0].Content)
}

func TestProcessMessageReusesActiveSession(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	first, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{
		Message: "hello",
	})
	require.NoError(t, err)

	second, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{
		Message:   "what is the delivery eta",
		SessionId: &first.SessionId,
	})
	require.NoError(t, err)
	assert.Equal(t, first.SessionId, second.SessionId)

	uow := env.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.ChatMessageRepository().Count(ctx,
		specification.ByChatSessionID{ChatSessionID: first.SessionId},
	)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}

func TestProcessMessageUnknownSessionStartsFresh(t *testing.T) {
	env := newChatbotTestEnv(t)

	unknown := uuid.New()
	res, err := env.service.ProcessMessage(context.Background(), env.userId, &dto.ProcessMessageRequest{
		Message:   "hello",
		SessionId: &unknown,
	})
	require.NoError(t, err)
	assert.NotEqual(t, unknown, res.SessionId)
}

func TestProcessMessageAnotherUsersSessionIsNotReused(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	theirs, err := env.service.ProcessMessage(ctx, uuid.New(), &dto.ProcessMessageRequest{
		Message: "hello",
	})
	require.NoError(t, err)

	res, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{
		Message:   "hello",
		SessionId: &theirs.SessionId,
	})
	require.NoError(t, err)
	assert.NotEqual(t, theirs.SessionId, res.SessionId)
}

func TestProcessMessageDroneStatusReadsFleet(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.db.Create(&model.Drone{
		Id:                uuid.New(),
		LocationLatitude:  -6.2,
		LocationLongitude: 106.8,
		UrgencyLevel:      constant.UrgencyCritical,
		Status:            constant.DroneStatusActive,
	}).Error)

	res, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{
		Message: "where are my drones",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Content, "Current drone status:")
	assert.Equal(t, float64(1), toFloat(res.Metadata["drone_count"]))
}

func TestGetChatHistoryUnknownSessionIsEmpty(t *testing.T) {
	env := newChatbotTestEnv(t)

	history, err := env.service.GetChatHistory(context.Background(), env.userId, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, history.Messages)
}

func TestGetChatHistoryReturnsOrderedMessagesWithActions(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	res, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{
		Message: "hello",
	})
	require.NoError(t, err)

	history, err := env.service.GetChatHistory(ctx, env.userId, res.SessionId)
	require.NoError(t, err)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, constant.ChatMessageTypeUser, history.Messages[0].Type)
	assert.Equal(t, constant.ChatMessageTypeBot, history.Messages[1].Type)
	assert.Len(t, history.Messages[1].QuickActions, 4)
	assert.Empty(t, history.Messages[0].QuickActions)
}

func TestGetSessionsListsActiveOnlyWithCounts(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	first, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{Message: "hello"})
	require.NoError(t, err)
	second, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{Message: "hi again"})
	require.NoError(t, err)

	require.NoError(t, env.service.CloseSession(ctx, env.userId, second.SessionId))

	sessions, err := env.service.GetSessions(ctx, env.userId)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, first.SessionId, sessions[0].Id)
	assert.EqualValues(t, 2, sessions[0].MessageCount)
}

func TestCloseSessionUnknownIdFails(t *testing.T) {
	env := newChatbotTestEnv(t)

	err := env.service.CloseSession(context.Background(), env.userId, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDispatchQuickActionRecordsSystemMessage(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	chat, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{Message: "hello"})
	require.NoError(t, err)

	res, err := env.service.DispatchQuickAction(ctx, env.userId, &dto.QuickActionRequest{
		ActionType: "check_weather",
		Data:       map[string]interface{}{"zone": "A7"},
		SessionId:  &chat.SessionId,
	})
	require.NoError(t, err)
	assert.Equal(t, "modal", res.Action)
	assert.Equal(t, "22°C", res.Data["temperature"])

	uow := env.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: chat.SessionId},
		specification.OrderBy{Field: "created_at"},
	)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, constant.ChatMessageTypeSystem, messages[2].MessageType)
	assert.Equal(t, "check_weather", messages[2].Metadata["action_type"])

	// The caller-supplied payload survives in the audit record.
	actionData, ok := messages[2].Metadata["action_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "A7", actionData["zone"])
}

func TestDispatchQuickActionAuditsClosedSession(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	chat, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{Message: "hello"})
	require.NoError(t, err)
	require.NoError(t, env.service.CloseSession(ctx, env.userId, chat.SessionId))

	_, err = env.service.DispatchQuickAction(ctx, env.userId, &dto.QuickActionRequest{
		ActionType: "fleet_status",
		SessionId:  &chat.SessionId,
	})
	require.NoError(t, err)

	uow := env.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.ChatMessageRepository().Count(ctx,
		specification.ByChatSessionID{ChatSessionID: chat.SessionId},
	)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestDispatchQuickActionWithoutSession(t *testing.T) {
	env := newChatbotTestEnv(t)

	res, err := env.service.DispatchQuickAction(context.Background(), env.userId, &dto.QuickActionRequest{
		ActionType: "make_coffee",
	})
	require.NoError(t, err)
	assert.Equal(t, "Processing your request...", res.Message)
	assert.Equal(t, "none", res.Action)
}

func TestRecordFeedbackScoresMatchingAnalyticsRow(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	res, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{Message: "hello"})
	require.NoError(t, err)

	require.NoError(t, env.service.RecordFeedback(ctx, env.userId, &dto.FeedbackRequest{
		MessageId: res.MessageId,
		Rating:    4,
	}))

	uow := env.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ChatAnalyticsRepository().FindAll(ctx, specification.ByUserID{UserID: env.userId})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].SatisfactionScore)
	assert.Equal(t, 4, *rows[0].SatisfactionScore)
}

func TestRecordFeedbackPrefersMostRecentAnalyticsRow(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	first, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{Message: "hello"})
	require.NoError(t, err)
	_, err = env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{Message: "what is the delivery eta"})
	require.NoError(t, err)

	// Both analytics rows postdate the first bot message; the score
	// lands on the most recent one.
	require.NoError(t, env.service.RecordFeedback(ctx, env.userId, &dto.FeedbackRequest{
		MessageId: first.MessageId,
		Rating:    5,
	}))

	uow := env.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.ChatAnalyticsRepository().FindAll(ctx,
		specification.ByUserID{UserID: env.userId},
		specification.OrderBy{Field: "created_at"},
	)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].SatisfactionScore)
	require.NotNil(t, rows[1].SatisfactionScore)
	assert.Equal(t, 5, *rows[1].SatisfactionScore)
}

func TestRecordFeedbackUnknownMessageIsNoOp(t *testing.T) {
	env := newChatbotTestEnv(t)

	err := env.service.RecordFeedback(context.Background(), env.userId, &dto.FeedbackRequest{
		MessageId: uuid.New(),
		Rating:    5,
	})
	assert.NoError(t, err)
}

func TestUsageReportAggregatesAnalytics(t *testing.T) {
	env := newChatbotTestEnv(t)
	ctx := context.Background()

	_, err := env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{Message: "hello"})
	require.NoError(t, err)
	_, err = env.service.ProcessMessage(ctx, env.userId, &dto.ProcessMessageRequest{Message: "what is the delivery eta"})
	require.NoError(t, err)

	report, err := env.service.UsageReport(ctx, env.userId, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 2, report.TotalQueries)
	assert.EqualValues(t, 2, report.TotalSessions)
	assert.Contains(t, report.MostCommonQueries, "general")
	assert.Contains(t, report.MostCommonQueries, "delivery_management")
	assert.GreaterOrEqual(t, report.ResponseMetrics.Max, report.ResponseMetrics.Min)
}

func TestVoiceToTextPlaceholder(t *testing.T) {
	env := newChatbotTestEnv(t)

	res, err := env.service.VoiceToText(context.Background(), []byte("not real audio"))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Text)
}

func TestExcerptCutsOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 100)
	cut := excerpt(long, 11)
	assert.True(t, utf8.ValidString(cut))
	assert.Equal(t, 10, len(cut))

	assert.Equal(t, "short", excerpt("short", 120))
}

// JSON round-trips numbers as float64; raw writes keep the int.
func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return -1
	}
}
