package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-quickadd/internal/model"
	"task-quickadd/internal/quickadd"
	"task-quickadd/internal/quickadd/delivery/telegram"
	"task-quickadd/pkg/quickparse"
	pkgTelegram "task-quickadd/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockQuickaddUseCase struct {
	previewOutput  quickadd.PreviewOutput
	previewErr     error
	scheduleOutput quickadd.ScheduleOutput
	scheduleErr    error
}

func (m *mockQuickaddUseCase) Preview(ctx context.Context, sc model.Scope, input quickadd.PreviewInput) (quickadd.PreviewOutput, error) {
	return m.previewOutput, m.previewErr
}

func (m *mockQuickaddUseCase) Detect(ctx context.Context, sc model.Scope, input quickadd.DetectInput) (quickadd.DetectOutput, error) {
	return quickadd.DetectOutput{}, nil
}

func (m *mockQuickaddUseCase) Schedule(ctx context.Context, sc model.Scope, input quickadd.ScheduleInput) (quickadd.ScheduleOutput, error) {
	return m.scheduleOutput, m.scheduleErr
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine           *gin.Engine
	muc              *mockQuickaddUseCase
	capturedMessages *[]string
}

func newTestEnv(t *testing.T, secret string) (*testEnv, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	capturedMessages := &[]string{}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				*capturedMessages = append(*capturedMessages, text)
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))

	l := &mockLogger{}
	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	muc := &mockQuickaddUseCase{}

	engine := gin.New()
	h := telegram.New(l, muc, bot, secret)
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{
		engine:           engine,
		muc:              muc,
		capturedMessages: capturedMessages,
	}, tgServer
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	return sendWebhookWithSecret(engine, text, "")
}

func sendWebhookWithSecret(engine *gin.Engine, text, secret string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-Telegram-Bot-Api-Secret-Token", secret)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(msgs *[]string, atLeast int, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) && len(*msgs) < atLeast {
		time.Sleep(20 * time.Millisecond)
	}
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env, tgSrv := newTestEnv(t, "")
	defer tgSrv.Close()

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env, tgSrv := newTestEnv(t, "")
	defer tgSrv.Close()

	update := pkgTelegram.Update{UpdateID: 1, Message: nil}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleWebhook_SecretMismatch(t *testing.T) {
	env, tgSrv := newTestEnv(t, "hook-secret")
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "Call mom tomorrow")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing secret header: expected 401, got %d", w.Code)
	}

	w = sendWebhookWithSecret(env.engine, "Call mom tomorrow", "hook-secret")
	if w.Code != http.StatusOK {
		t.Errorf("matching secret: expected 200, got %d", w.Code)
	}
}

func TestHandleStart(t *testing.T) {
	env, tgSrv := newTestEnv(t, "")
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/start")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Welcome")
}

func TestHandleHelp(t *testing.T) {
	env, tgSrv := newTestEnv(t, "")
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/help")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "How to use")
}

func TestHandlePreview_Success(t *testing.T) {
	env, tgSrv := newTestEnv(t, "")
	defer tgSrv.Close()

	env.muc.previewOutput = quickadd.PreviewOutput{
		Parseable: true,
		Parsed: quickparse.ParsedTask{
			Text: "Call mom",
			Tags: []string{"family"},
		},
		Badges: []string{"Tomorrow 5:00 PM", "Remind 15 min before"},
	}
	w := sendWebhook(env.engine, "Call mom tomorrow at 5pm remind me 15 min before #family")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Call mom")
	assertContains(t, *env.capturedMessages, "• Tomorrow 5:00 PM")
	assertContains(t, *env.capturedMessages, "#family")
}

func TestHandlePreview_NoMarkers(t *testing.T) {
	env, tgSrv := newTestEnv(t, "")
	defer tgSrv.Close()

	env.muc.previewOutput = quickadd.PreviewOutput{
		Parsed: quickparse.ParsedTask{Text: "just some thoughts"},
	}
	w := sendWebhook(env.engine, "just some thoughts")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "No markers found")
}

func TestHandlePreview_Error(t *testing.T) {
	env, tgSrv := newTestEnv(t, "")
	defer tgSrv.Close()

	env.muc.previewErr = quickadd.ErrEmptyInput
	w := sendWebhook(env.engine, "   ")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Could not parse")
}

func TestHandleSchedule_Success(t *testing.T) {
	env, tgSrv := newTestEnv(t, "")
	defer tgSrv.Close()

	env.muc.scheduleOutput = quickadd.ScheduleOutput{
		Draft: model.TaskDraft{
			Title:        "Dentist",
			CalendarLink: "http://cal.link",
		},
		Badges: []string{"Tomorrow 3:00 PM"},
	}
	w := sendWebhook(env.engine, "/schedule Dentist tomorrow at 3pm")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Scheduled: Dentist")
	assertContains(t, *env.capturedMessages, "http://cal.link")
}

func TestHandleSchedule_EmptyText(t *testing.T) {
	env, tgSrv := newTestEnv(t, "")
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/schedule")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Usage: /schedule")
}

func TestHandleSchedule_NothingToSchedule(t *testing.T) {
	env, tgSrv := newTestEnv(t, "")
	defer tgSrv.Close()

	env.muc.scheduleErr = quickadd.ErrNothingToSchedule
	w := sendWebhook(env.engine, "/schedule Buy milk")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "No due date found")
}

func TestHandleSchedule_OtherError(t *testing.T) {
	env, tgSrv := newTestEnv(t, "")
	defer tgSrv.Close()

	env.muc.scheduleErr = quickadd.ErrEmptyInput
	w := sendWebhook(env.engine, "/schedule something")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	waitForMessages(env.capturedMessages, 1, 500*time.Millisecond)
	assertContains(t, *env.capturedMessages, "Could not schedule")
}
