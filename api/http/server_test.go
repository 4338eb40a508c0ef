package http

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artem13815/pcbuild/api/http/handlers"
	"github.com/artem13815/pcbuild/api/http/middleware"
	"github.com/artem13815/pcbuild/pkg/health"
	"github.com/artem13815/pcbuild/pkg/llm"
	"github.com/artem13815/pcbuild/pkg/llm/aigateway"
	"github.com/artem13815/pcbuild/pkg/recommend"
)

type reply struct {
	status int
	body   string
}

// upstream is a scripted chat-completions endpoint.
type upstream struct {
	mu     sync.Mutex
	script []reply
	bodies []map[string]any
	srv    *httptest.Server
}

func newUpstream(t *testing.T, script ...reply) *upstream {
	u := &upstream{script: script}
	u.srv = httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		u.bodies = append(u.bodies, body)
		if len(u.bodies) > len(u.script) {
			w.WriteHeader(nethttp.StatusTeapot)
			return
		}
		rp := u.script[len(u.bodies)-1]
		w.WriteHeader(rp.status)
		_, _ = w.Write([]byte(rp.body))
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func (u *upstream) calls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.bodies)
}

func completion(content string) reply {
	raw, _ := json.Marshal(map[string]any{
		"choices": []any{map[string]any{"message": map[string]any{"role": "assistant", "content": content}}},
	})
	return reply{status: nethttp.StatusOK, body: string(raw)}
}

func failed(status int) reply {
	return reply{status: status, body: `{"error":"upstream failure"}`}
}

type recordingSleep struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recordingSleep) Sleep(_ context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delays = append(r.delays, d)
	return nil
}

type testEnv struct {
	app   *fiber.App
	up    *upstream
	sleep *recordingSleep
}

func newEnv(t *testing.T, apiKey string, script ...reply) *testEnv {
	up := newUpstream(t, script...)
	var model llm.ChatModel
	if apiKey != "" {
		model = aigateway.New(apiKey, up.srv.URL, "test/model", 5*time.Second)
	}
	env := newEnvWithModel(model)
	env.up = up
	return env
}

func newEnvWithModel(model llm.ChatModel) *testEnv {
	sleep := &recordingSleep{}
	svc := recommend.NewService(model, zap.NewNop(), recommend.WithSleep(sleep.Sleep))
	app := NewApp(zap.NewNop(),
		handlers.NewHealthHandler(health.NewService()),
		handlers.NewRecommendHandler(svc),
		handlers.NewBuildsHandler(nil),
	)
	return &testEnv{app: app, sleep: sleep}
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*nethttp.Response, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func errorMessage(t *testing.T, body string) string {
	t.Helper()
	var env struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &env), body)
	return env.Error
}

func assertCORS(t *testing.T, resp *nethttp.Response) {
	t.Helper()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, middleware.AllowedHeaders, resp.Header.Get("Access-Control-Allow-Headers"))
}

const buildBody = `{"budget":1500,"useCase":"Gaming","customRequirements":"quiet"}`

func TestGenerateBuild_SuccessIsVerbatim(t *testing.T) {
	content := "{\n  \"builds\": [{\"tier\": \"Good\", \"totalCost\": 1499}]\n}"
	env := newEnv(t, "key", completion(content))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", buildBody)

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, content, body)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get("Content-Type"))
	assertCORS(t, resp)
	assert.Equal(t, 1, env.up.calls())
	assert.Empty(t, env.sleep.delays)

	sent := env.up.bodies[0]
	assert.Equal(t, "test/model", sent["model"])
	assert.Equal(t, 0.7, sent["temperature"])
	assert.Equal(t, map[string]any{"type": "json_object"}, sent["response_format"])
	msgs := sent["messages"].([]any)
	require.Len(t, msgs, 2)
	user := msgs[1].(map[string]any)
	assert.Equal(t, "user", user["role"])
	assert.Contains(t, user["content"], "- Budget: $1500\n- Primary Use Case: Gaming\n- Custom Requirements: quiet\n")
}

func TestGenerateBuild_RateLimitedIsNotRetried(t *testing.T) {
	env := newEnv(t, "key", failed(429), completion("never"))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", buildBody)

	assert.Equal(t, nethttp.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Rate limit exceeded. Please try again in a moment.", errorMessage(t, body))
	assertCORS(t, resp)
	assert.Equal(t, 1, env.up.calls())
	assert.Empty(t, env.sleep.delays)
}

func TestGenerateBuild_CreditsDepletedIsNotRetried(t *testing.T) {
	env := newEnv(t, "key", failed(402), completion("never"))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", buildBody)

	assert.Equal(t, nethttp.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "AI service credits depleted. Please contact support.", errorMessage(t, body))
	assert.Equal(t, 1, env.up.calls())
}

func TestGenerateBuild_RecoversOnThirdAttempt(t *testing.T) {
	env := newEnv(t, "key", failed(500), failed(500), completion(`{"builds":["third"]}`))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", buildBody)

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"builds":["third"]}`, body)
	assert.Equal(t, 3, env.up.calls())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, env.sleep.delays)
}

func TestGenerateBuild_ServerErrorsExhaustBudget(t *testing.T) {
	env := newEnv(t, "key", failed(500), failed(500), failed(500), completion("never"))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", buildBody)

	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "The AI service is temporarily unavailable. Please try again in a moment.", errorMessage(t, body))
	assert.Equal(t, 3, env.up.calls())
}

func TestGenerateBuild_OtherStatusFailsImmediately(t *testing.T) {
	env := newEnv(t, "key", failed(404))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", buildBody)

	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "AI Gateway error: 404", errorMessage(t, body))
	assert.Equal(t, 1, env.up.calls())
}

func TestGenerateBuild_MissingCredential(t *testing.T) {
	env := newEnv(t, "", completion("never"))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", buildBody)

	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, recommend.BuildMessages.NotConfigured, errorMessage(t, body))
	assert.NotContains(t, body, "API_KEY")
	assert.Equal(t, 0, env.up.calls())
}

func TestGenerateBuild_MalformedBody(t *testing.T) {
	env := newEnv(t, "key", completion("never"))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", `{"budget":`)

	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to generate builds. Please try again.", errorMessage(t, body))
	assert.Equal(t, 0, env.up.calls())
}

func TestPreflight(t *testing.T) {
	for _, path := range []string{"/functions/v1/generate-pc-build", "/functions/v1/recommend-peripherals", "/api/v1/builds"} {
		t.Run(path, func(t *testing.T) {
			env := newEnv(t, "key", completion("never"))

			resp, body := env.do(t, fiber.MethodOptions, path, "")

			assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
			assert.Empty(t, body)
			assertCORS(t, resp)
			assert.Equal(t, 0, env.up.calls())
		})
	}
}

func TestGenerateBuild_Idempotent(t *testing.T) {
	env := newEnv(t, "key", completion(`{"builds":[1]}`), completion(`{"builds":[1]}`))

	_, first := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", buildBody)
	_, second := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", buildBody)

	assert.Equal(t, first, second)
	require.Equal(t, 2, env.up.calls())
	assert.Equal(t, env.up.bodies[0], env.up.bodies[1])
}

func TestRecommendPeripherals(t *testing.T) {
	content := `{"peripherals":[{"category":"monitor","model":"27GP850","price":399}]}`
	env := newEnv(t, "key", completion(content))
	req := `{"budget":500,"useCase":"Gaming","build":{"tier":"Better","components":{"cpu":{"model":"Ryzen 5 7600"},"gpu":{"model":"RTX 4070"}}}}`

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/recommend-peripherals", req)

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, content, body)
	user := env.up.bodies[0]["messages"].([]any)[1].(map[string]any)["content"].(string)
	assert.Contains(t, user, "- Budget Remaining: $500\n- Use Case: Gaming\n- CPU: Ryzen 5 7600\n- GPU: RTX 4070\n")
}

func TestRecommendPeripherals_CreditsMessage(t *testing.T) {
	env := newEnv(t, "key", failed(402))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/recommend-peripherals", `{"budget":100,"useCase":"x","build":{}}`)

	assert.Equal(t, nethttp.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "AI service credits depleted.", errorMessage(t, body))
}

func TestHealth(t *testing.T) {
	env := newEnv(t, "key")

	resp, body := env.do(t, fiber.MethodGet, "/api/v1/health", "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	resp, body = env.do(t, fiber.MethodGet, "/api/v1/ready", "")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ready"}`, body)
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	env := newEnv(t, "key")

	resp, body := env.do(t, fiber.MethodGet, "/nope", "")

	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, errorMessage(t, body))
	assertCORS(t, resp)
}

func TestGenerateBuild_MistypedFieldsReachModel(t *testing.T) {
	env := newEnv(t, "key", completion(`{"builds":[]}`))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", `{"budget":"1500","useCase":"Gaming"}`)

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"builds":[]}`, body)
	require.Equal(t, 1, env.up.calls())
	user := env.up.bodies[0]["messages"].([]any)[1].(map[string]any)["content"].(string)
	assert.Contains(t, user, "- Budget: $1500\n- Primary Use Case: Gaming\n")
}

func TestRecommendPeripherals_MistypedUseCaseReachesModel(t *testing.T) {
	env := newEnv(t, "key", completion(`{"peripherals":[]}`))

	resp, _ := env.do(t, fiber.MethodPost, "/functions/v1/recommend-peripherals", `{"budget":300,"useCase":42,"build":"not an object"}`)

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	require.Equal(t, 1, env.up.calls())
	user := env.up.bodies[0]["messages"].([]any)[1].(map[string]any)["content"].(string)
	assert.Contains(t, user, "- Budget Remaining: $300\n- Use Case: 42\n- CPU: \n- GPU: \n")
}

func TestGenerateBuild_HungUpstreamTimesOut(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		calls.Add(1)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	env := newEnvWithModel(aigateway.New("key", srv.URL, "test/model", 50*time.Millisecond))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", buildBody)

	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Request timed out. Please try again.", errorMessage(t, body))
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, env.sleep.delays)
}

func TestGenerateBuild_UnreachableUpstreamIsRetried(t *testing.T) {
	srv := httptest.NewServer(nethttp.NotFoundHandler())
	url := srv.URL
	srv.Close()
	env := newEnvWithModel(aigateway.New("key", url, "test/model", time.Second))

	resp, body := env.do(t, fiber.MethodPost, "/functions/v1/generate-pc-build", buildBody)

	assert.Equal(t, nethttp.StatusInternalServerError, resp.StatusCode)
	msg := errorMessage(t, body)
	assert.NotEmpty(t, msg)
	assert.NotEqual(t, recommend.BuildMessages.Timeout, msg)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, env.sleep.delays)
}
