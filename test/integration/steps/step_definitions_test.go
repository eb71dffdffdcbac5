//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendtrack/backend/config"
	"github.com/spendtrack/backend/internal/infra/cache"
	"github.com/spendtrack/backend/internal/infra/dependency"
	"github.com/spendtrack/backend/internal/integration/entrypoint/controller"
	"github.com/spendtrack/backend/internal/integration/persistence/model"
	"github.com/spendtrack/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// pngHeader is enough of a PNG file for content sniffing.
var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52}

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		Name: "spendtrack-api",
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:      "pretty",
			Paths:       []string{"../features"},
			Tags:        tags,
			Concurrency: 1,
			Strict:      true,
			TestingT:    t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	redis             *mock.Redis
	storage           *mock.Storage
	timeMock          *mock.Time
	accessToken       string
	currentUserID     uuid.UUID
	users             map[string]uuid.UUID
	transactionIDs    []int64
	lastTransactionID int64
}

type response struct {
	status      int
	contentType string
	body        any
	raw         []byte
}

var serverInit sync.Once
var testInjector *dependency.Injector
var testServerPort int
var portInit sync.Once

// The server is wired once, so every scenario must share the mocks it holds.
var (
	mocksInit   sync.Once
	sharedDb    *mock.Db
	sharedRedis *mock.Redis
	sharedStore *mock.Storage
	sharedClock *mock.Time
)

func initializeMocks() {
	mocksInit.Do(func() {
		sharedDb = mock.NewDb()
		sharedRedis = mock.NewRedis()
		sharedStore = mock.NewStorage()
		sharedClock = mock.NewTime()
	})
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()
	initializeMocks()

	test := &testContext{
		uri:      fmt.Sprintf("http://localhost:%d", testServerPort),
		client:   &http.Client{Timeout: 10 * time.Second},
		db:       sharedDb,
		redis:    sharedRedis,
		storage:  sharedStore,
		timeMock: sharedClock,
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Auth steps
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I am logged in with an expired token$`, test.iAmLoggedInWithAnExpiredToken)

	// Data setup steps
	ctx.Given(`^"([^"]*)" has the following transactions:$`, test.userHasTheFollowingTransactions)
	ctx.Given(`^"([^"]*)" has a "([^"]*)" spend limit of "([^"]*)" for "([^"]*)"$`, test.userHasASpendLimit)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.Step(`^I upload (\d+) "([^"]*)" receipt images? to the last transaction$`, test.iUploadReceiptImages)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response content type should be "([^"]*)"$`, test.theResponseContentTypeShouldBe)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database and storage assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
	ctx.Then(`^the storage should contain (\d+) objects$`, test.theStorageShouldContainObjects)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.users = make(map[string]uuid.UUID)
	t.transactionIDs = nil
	t.lastTransactionID = 0
	t.timeMock.Reset()
	t.storage.Clear()

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if err := t.redis.Clear(); err != nil {
		return err
	}
	if testInjector != nil {
		testInjector.RateLimiter.Reset()
		if _, err := testInjector.SeedCategories.Execute(context.Background()); err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) startServer() error {
	var seedErr error
	serverInit.Do(func() {
		gin.SetMode(gin.TestMode)

		cfg := config.Load()
		cfg.JWT.Secret = testJWTSecret
		cfg.JWT.Audience = ""
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.MaxAttempts = 5
		cfg.RateLimit.Window = time.Minute

		testInjector = dependency.NewInjector(cfg, dependency.Infrastructure{
			DB:      sharedDb.DbConn,
			Cache:   cache.NewRedisCache(sharedRedis.Client, "test:"),
			Storage: sharedStore,
			Clock:   sharedClock.Now,
			HealthChecks: map[string]controller.HealthCheck{
				"database": func(ctx context.Context) error {
					sqlDB, err := sharedDb.DbConn.DB()
					if err != nil {
						return err
					}
					return sqlDB.PingContext(ctx)
				},
				"cache": func(ctx context.Context) error {
					return sharedRedis.Client.Ping(ctx).Err()
				},
			},
		})
		_, seedErr = testInjector.SeedCategories.Execute(context.Background())

		engine := testInjector.Router.Setup("test")
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", testServerPort),
			Handler: engine,
		}
		go func() {
			_ = server.ListenAndServe()
		}()
	})
	if seedErr != nil {
		return seedErr
	}

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return errors.New("server did not become healthy")
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) todayIs(date string) error {
	return t.timeMock.SetToday(date)
}

func (t *testContext) userID(name string) uuid.UUID {
	id, ok := t.users[name]
	if !ok {
		id = uuid.New()
		t.users[name] = id
	}
	return id
}

func (t *testContext) signToken(userID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
}

func (t *testContext) iAmLoggedInAs(name string) error {
	t.currentUserID = t.userID(name)
	token, err := t.signToken(t.currentUserID, time.Now().Add(15*time.Minute))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmLoggedInWithAnExpiredToken() error {
	t.currentUserID = uuid.New()
	token, err := t.signToken(t.currentUserID, time.Now().Add(-time.Minute))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

// userHasTheFollowingTransactions inserts rows with the columns date, type,
// status, amount, category and description.
func (t *testContext) userHasTheFollowingTransactions(name string, table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("transactions table needs a header and at least one row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	userID := t.userID(name)
	now := time.Now().UTC()
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i]] = cell.Value
		}

		date, err := time.Parse("2006-01-02", values["date"])
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(values["amount"])
		if err != nil {
			return err
		}
		status := values["status"]
		if status == "" {
			status = "Complete"
		}
		description := values["description"]
		if description == "" {
			description = values["category"]
		}

		m := &model.TransactionModel{
			UserID:      userID,
			Date:        date,
			Type:        values["type"],
			Status:      status,
			Amount:      amount,
			Category:    values["category"],
			Description: description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := t.db.DbConn.Create(m).Error; err != nil {
			return err
		}
		t.lastTransactionID = m.ID
		t.transactionIDs = append(t.transactionIDs, m.ID)
	}
	return nil
}

func (t *testContext) userHasASpendLimit(name, timeFrame, limit, category string) error {
	amount, err := decimal.NewFromString(limit)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	return t.db.DbConn.Create(&model.SpendLimitModel{
		UserID:    t.userID(name),
		Category:  category,
		Limit:     amount,
		TimeFrame: timeFrame,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, "application/json", nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, "application/json", payload)
}

func (t *testContext) iUploadReceiptImages(count int, kind string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for i := 0; i < count; i++ {
		data, ext := receiptFixture(kind)
		part, err := writer.CreateFormFile("images", fmt.Sprintf("receipt-%d.%s", i, ext))
		if err != nil {
			return err
		}
		if _, err := part.Write(data); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	path := fmt.Sprintf("/api/v1/transactions/%d/receipts", t.lastTransactionID)
	return t.executeRequest(http.MethodPost, path, writer.FormDataContentType(), body.Bytes())
}

func receiptFixture(kind string) ([]byte, string) {
	switch kind {
	case "png":
		return append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...), "png"
	case "oversized png":
		return append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 600000)...), "png"
	default:
		return []byte("just some plain text, not an image"), "txt"
	}
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{transaction_id}}", strconv.FormatInt(t.lastTransactionID, 10))

	ids := make([]string, len(t.transactionIDs))
	for i, id := range t.transactionIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	content = strings.ReplaceAll(content, "{{transaction_ids}}", "["+strings.Join(ids, ", ")+"]")

	return content
}

func (t *testContext) executeRequest(method, path, contentType string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", contentType)

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		raw:         bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the id of a created or updated transaction
	if method == http.MethodPut && strings.HasPrefix(path, "/api/v1/transactions") {
		if data, ok := responseBody["data"].(map[string]any); ok {
			if id, ok := data["id"].(float64); ok {
				t.lastTransactionID = int64(id)
				t.transactionIDs = append(t.transactionIDs, int64(id))
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseContentTypeShouldBe(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.HasPrefix(t.response.contentType, expected) {
		return fmt.Errorf("expected content type %s, got %s", expected, t.response.contentType)
	}
	if expected == "image/png" && !bytes.HasPrefix(t.response.raw, pngHeader[:8]) {
		return errors.New("response body is not a PNG image")
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if value := getFieldValue(t.response.body, field); value != nil {
		return fmt.Errorf("field '%s' expected null, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	items, ok := getFieldValue(t.response.body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %v", field, t.response.body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theStorageShouldContainObjects(quantity int) error {
	if paths := t.storage.Paths(); len(paths) != quantity {
		return fmt.Errorf("expected %d stored objects, got %d: %v", quantity, len(paths), paths)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
