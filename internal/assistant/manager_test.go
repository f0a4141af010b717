package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"salonbot/internal/structs"
	"salonbot/internal/texts"
	"salonbot/internal/yclients"
	"salonbot/pkg/logger"

	"github.com/sashabaranov/go-openai"
)

type fakeUsers struct {
	mu        sync.Mutex
	threadIDs map[int64]string
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{threadIDs: make(map[int64]string)}
}

func (f *fakeUsers) Register(ctx context.Context, req structs.CreateUser) (structs.User, error) {
	return structs.User{}, nil
}

func (f *fakeUsers) GetByTelegramID(ctx context.Context, telegramID int64) (structs.User, error) {
	return structs.User{}, structs.ErrNotFound
}

func (f *fakeUsers) UpdateThreadID(ctx context.Context, telegramID int64, threadID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.threadIDs[telegramID] = threadID
	return nil
}

func (f *fakeUsers) Touch(ctx context.Context, telegramID int64) error { return nil }

func (f *fakeUsers) LogMessage(ctx context.Context, userID int64, message, sender string) {}

type fakeBooking struct {
	mu            sync.Mutex
	datesArgs     [][]int64
	bookedService int64
	bookedAt      string
}

func (f *fakeBooking) BookableServices(ctx context.Context) ([]yclients.BookableService, error) {
	return nil, nil
}

func (f *fakeBooking) BookableDates(ctx context.Context, serviceIDs []int64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.datesArgs = append(f.datesArgs, serviceIDs)
	return []string{"2026-09-01", "2026-09-02"}, nil
}

func (f *fakeBooking) BookableTimes(ctx context.Context, staffID int64, date string, serviceIDs []int64) ([]yclients.Seance, error) {
	return nil, nil
}

func (f *fakeBooking) Book(ctx context.Context, user structs.User, serviceID int64, datetime string) (yclients.BookRecordData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookedService = serviceID
	f.bookedAt = datetime
	return yclients.BookRecordData{RecordID: 555}, nil
}

func (f *fakeBooking) PriceList(ctx context.Context) ([]yclients.ServiceModel, error) {
	return nil, nil
}

func (f *fakeBooking) DefaultStaffID() int64 { return 5 }

type fakeChat struct {
	mu       sync.Mutex
	typing   int
	messages []string
}

func (f *fakeChat) SendMessage(chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, text)
	return nil
}

func (f *fakeChat) SendTyping(chatID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.typing++
}

// assistantBackend scripts the API surface one Submit round trip touches.
type assistantBackend struct {
	mu             sync.Mutex
	toolOutputs    []byte
	outputsHandled bool
	answer         string
	staleRuns      string
	stuckRun       bool
	cancelled      []string
}

func (b *assistantBackend) cancelledRuns() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.cancelled...)
}

func (b *assistantBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/assistants/asst_test", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":"asst_test","object":"assistant"}`)
	})
	mux.HandleFunc("POST /v1/threads", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":"thread_test","object":"thread"}`)
	})
	mux.HandleFunc("GET /v1/threads/thread_stored", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":"thread_stored","object":"thread"}`)
	})
	mux.HandleFunc("GET /v1/threads/thread_test/runs", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		stale := b.staleRuns
		b.mu.Unlock()
		if stale == "" {
			stale = "[]"
		}
		io.WriteString(w, `{"object":"list","data":`+stale+`}`)
	})
	mux.HandleFunc("POST /v1/threads/thread_test/runs/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		b.mu.Lock()
		b.cancelled = append(b.cancelled, id)
		b.mu.Unlock()
		io.WriteString(w, `{"id":"`+id+`","object":"thread.run","thread_id":"thread_test","status":"cancelling"}`)
	})
	mux.HandleFunc("POST /v1/threads/thread_test/messages", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":"msg_user","object":"thread.message"}`)
	})
	mux.HandleFunc("POST /v1/threads/thread_test/runs", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":"run_test","object":"thread.run","thread_id":"thread_test","status":"queued"}`)
	})
	mux.HandleFunc("GET /v1/threads/thread_test/runs/run_test", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		handled := b.outputsHandled
		stuck := b.stuckRun
		b.mu.Unlock()
		if stuck {
			io.WriteString(w, `{"id":"run_test","object":"thread.run","thread_id":"thread_test","status":"in_progress"}`)
			return
		}
		if handled {
			io.WriteString(w, `{"id":"run_test","object":"thread.run","thread_id":"thread_test","status":"completed"}`)
			return
		}
		io.WriteString(w, `{
			"id": "run_test",
			"object": "thread.run",
			"thread_id": "thread_test",
			"status": "requires_action",
			"required_action": {
				"type": "submit_tool_outputs",
				"submit_tool_outputs": {
					"tool_calls": [{
						"id": "call_1",
						"type": "function",
						"function": {"name": "get_bookable_dates", "arguments": "{\"service_ids\":[42]}"}
					}]
				}
			}
		}`)
	})
	mux.HandleFunc("POST /v1/threads/thread_test/runs/run_test/submit_tool_outputs", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.toolOutputs = body
		b.outputsHandled = true
		b.mu.Unlock()
		io.WriteString(w, `{"id":"run_test","object":"thread.run","thread_id":"thread_test","status":"in_progress"}`)
	})
	mux.HandleFunc("GET /v1/threads/thread_test/messages", func(w http.ResponseWriter, r *http.Request) {
		answer, _ := json.Marshal(b.answer)
		io.WriteString(w, `{"object":"list","data":[{
			"id": "msg_answer",
			"object": "thread.message",
			"role": "assistant",
			"content": [{"type": "text", "text": {"value": `+string(answer)+`}}]
		}]}`)
	})

	return mux
}

func newTestManagerSetup(t *testing.T, u structs.User) (*Manager, *assistantBackend, *fakeUsers, *fakeBooking, *fakeChat) {
	t.Helper()
	backend := &assistantBackend{answer: "Свободные даты: 1 и 2 сентября."}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	oc := openai.DefaultConfig("test-key")
	oc.BaseURL = srv.URL + "/v1"

	users := newFakeUsers()
	bookingSvc := &fakeBooking{}
	chat := &fakeChat{}
	m := &Manager{
		logger:       logger.New("error"),
		client:       openai.NewClientWithConfig(oc),
		assistantID:  "asst_test",
		users:        users,
		booking:      bookingSvc,
		chat:         chat,
		user:         u,
		chatID:       100,
		pollInterval: time.Millisecond,
		runTimeout:   5 * time.Second,
	}
	return m, backend, users, bookingSvc, chat
}

func TestInitializeCreatesAndPersistsThread(t *testing.T) {
	u := structs.User{TelegramID: 1, Name: "Анна", Surname: "Иванова", Phone: "79990001122"}
	m, _, users, _, _ := newTestManagerSetup(t, u)

	if got := m.Initialize(context.Background()); got != "thread_test" {
		t.Fatalf("thread id = %q", got)
	}
	if users.threadIDs[1] != "thread_test" {
		t.Fatalf("thread id not persisted: %v", users.threadIDs)
	}
	// Second call must answer from the cached id.
	if got := m.Initialize(context.Background()); got != "thread_test" {
		t.Fatalf("cached thread id = %q", got)
	}
}

func TestInitializeReusesStoredThread(t *testing.T) {
	u := structs.User{TelegramID: 2, ThreadID: "thread_stored"}
	m, _, users, _, _ := newTestManagerSetup(t, u)

	if got := m.Initialize(context.Background()); got != "thread_stored" {
		t.Fatalf("thread id = %q", got)
	}
	if len(users.threadIDs) != 0 {
		t.Fatalf("stored thread must not be re-persisted: %v", users.threadIDs)
	}
}

func TestSubmitBusyWhileRunInFlight(t *testing.T) {
	u := structs.User{TelegramID: 3}
	m, _, _, _, _ := newTestManagerSetup(t, u)

	m.mu.Lock()
	defer m.mu.Unlock()

	if got := m.Submit(context.Background(), "привет"); got != texts.AssistantBusy {
		t.Fatalf("busy answer = %q", got)
	}
}

func TestSubmitResolvesToolCall(t *testing.T) {
	u := structs.User{TelegramID: 4, Name: "Анна", Surname: "Иванова", Phone: "79990001122"}
	m, backend, _, bookingSvc, chat := newTestManagerSetup(t, u)

	answer := m.Submit(context.Background(), "какие даты свободны?")
	if answer != "Свободные даты: 1 и 2 сентября." {
		t.Fatalf("answer = %q", answer)
	}

	bookingSvc.mu.Lock()
	defer bookingSvc.mu.Unlock()
	if len(bookingSvc.datesArgs) != 1 || len(bookingSvc.datesArgs[0]) != 1 || bookingSvc.datesArgs[0][0] != 42 {
		t.Fatalf("tool call args = %v", bookingSvc.datesArgs)
	}

	backend.mu.Lock()
	submitted := string(backend.toolOutputs)
	backend.mu.Unlock()
	if !strings.Contains(submitted, `"call_1"`) {
		t.Fatalf("tool_call_id missing from submitted outputs: %s", submitted)
	}
	if !strings.Contains(submitted, "2026-09-01") {
		t.Fatalf("tool output missing dates: %s", submitted)
	}

	chat.mu.Lock()
	defer chat.mu.Unlock()
	if chat.typing == 0 {
		t.Fatalf("typing indicator never sent")
	}
}

func TestSubmitCancelsRunStuckPastTimeout(t *testing.T) {
	u := structs.User{TelegramID: 7, Name: "Анна", Phone: "79990001122"}
	m, backend, _, _, chat := newTestManagerSetup(t, u)
	backend.stuckRun = true
	m.pollInterval = 2 * time.Millisecond
	m.runTimeout = 30 * time.Millisecond

	start := time.Now()
	answer := m.Submit(context.Background(), "привет")
	if answer != texts.AssistantError {
		t.Fatalf("answer = %q", answer)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("submit did not respect the run timeout, took %v", elapsed)
	}

	cancelled := backend.cancelledRuns()
	if len(cancelled) != 1 || cancelled[0] != "run_test" {
		t.Fatalf("cancelled runs = %v", cancelled)
	}

	chat.mu.Lock()
	defer chat.mu.Unlock()
	if chat.typing == 0 {
		t.Fatalf("typing indicator never sent while waiting")
	}
}

func TestSubmitSweepsStaleRunsFirst(t *testing.T) {
	u := structs.User{TelegramID: 8, Name: "Анна", Phone: "79990001122"}
	m, backend, _, _, _ := newTestManagerSetup(t, u)
	backend.staleRuns = `[
		{"id":"run_stale","object":"thread.run","thread_id":"thread_test","status":"in_progress"},
		{"id":"run_done","object":"thread.run","thread_id":"thread_test","status":"completed"}
	]`

	answer := m.Submit(context.Background(), "какие даты свободны?")
	if answer != "Свободные даты: 1 и 2 сентября." {
		t.Fatalf("answer = %q", answer)
	}

	cancelled := backend.cancelledRuns()
	if len(cancelled) != 1 || cancelled[0] != "run_stale" {
		t.Fatalf("cancelled runs = %v, want only the active stale one", cancelled)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	u := structs.User{TelegramID: 5}
	m, _, _, _, _ := newTestManagerSetup(t, u)

	out, err := m.dispatchTool(context.Background(), "get_weather", "{}")
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("err = %v", err)
	}
	if out != "Функция get_weather не реализована." {
		t.Fatalf("output = %q", out)
	}
}

func TestDispatchBookRecord(t *testing.T) {
	u := structs.User{TelegramID: 6, Name: "Анна", Surname: "Иванова", Phone: "79990001122"}
	m, _, _, bookingSvc, _ := newTestManagerSetup(t, u)

	out, err := m.dispatchTool(context.Background(), "create_book_record",
		`{"appointments":[{"id":42,"datetime":"2026-09-01T10:00:00+03:00"}]}`)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if bookingSvc.bookedService != 42 || bookingSvc.bookedAt != "2026-09-01T10:00:00+03:00" {
		t.Fatalf("booked %d at %q", bookingSvc.bookedService, bookingSvc.bookedAt)
	}
	if !strings.Contains(out, `"record_id":555`) {
		t.Fatalf("tool output = %s", out)
	}
}

func TestRegistryReusesManagerPerUser(t *testing.T) {
	r := &Registry{
		logger:       logger.New("error"),
		client:       openai.NewClientWithConfig(openai.DefaultConfig("test-key")),
		users:        newFakeUsers(),
		booking:      &fakeBooking{},
		assistantID:  "asst_test",
		pollInterval: time.Millisecond,
		runTimeout:   time.Second,
		managers:     make(map[int64]*Manager),
	}

	chat := &fakeChat{}
	a := r.Get(structs.User{TelegramID: 10}, 100, chat)
	b := r.Get(structs.User{TelegramID: 10}, 100, chat)
	if a != b {
		t.Fatalf("expected the same manager for one user")
	}

	other := r.Get(structs.User{TelegramID: 11}, 101, chat)
	if other == a {
		t.Fatalf("managers must not be shared across users")
	}

	r.Remove(10)
	if r.Get(structs.User{TelegramID: 10}, 100, chat) == a {
		t.Fatalf("removed manager must be rebuilt")
	}
}
