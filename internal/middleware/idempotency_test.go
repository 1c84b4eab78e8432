package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/manjuv2220-pixel/SSL-Leave-Management/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

const (
	idempTestLockKey = "idemp:/leaves:u1:key-1:lock"
	idempTestRespKey = "idemp:/leaves:u1:key-1:resp"
)

func performIdempotentPost(t *testing.T, rdb *redis.Client, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/leaves", func(c *gin.Context) {
		c.Set("user_id", "u1")
	}, middleware.Idempotency(rdb), handler)

	req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func idempStoredPayload(t *testing.T, status int, body string) string {
	t.Helper()
	payload, err := json.Marshal(struct {
		Status int    `json:"status"`
		Body   string `json:"body"`
	}{Status: status, Body: body})
	assert.NoError(t, err)
	return string(payload)
}

func TestIdempotency(t *testing.T) {
	t.Run("first request stores the response and releases the lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		mock.ExpectGet(idempTestRespKey).RedisNil()
		mock.ExpectSetNX(idempTestLockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(idempTestRespKey, idempStoredPayload(t, http.StatusCreated, `{"ok":true}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(idempTestLockKey).SetVal(1)

		w := performIdempotentPost(t, rdb, func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate gets 409", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		mock.ExpectGet(idempTestRespKey).RedisNil()
		mock.ExpectSetNX(idempTestLockKey, "locked", 30*time.Second).SetVal(false)

		w := performIdempotentPost(t, rdb, func(c *gin.Context) {
			t.Fatal("handler must not be called")
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("completed request replays the stored response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		mock.ExpectGet(idempTestRespKey).
			SetVal(idempStoredPayload(t, http.StatusCreated, `{"ok":true}`))

		w := performIdempotentPost(t, rdb, func(c *gin.Context) {
			t.Fatal("handler must not be called")
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed request releases the lock without storing", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		mock.ExpectGet(idempTestRespKey).RedisNil()
		mock.ExpectSetNX(idempTestLockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel(idempTestLockKey).SetVal(1)

		w := performIdempotentPost(t, rdb, func(c *gin.Context) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false})
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("request without key passes through untouched", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		gin.SetMode(gin.TestMode)

		router := gin.New()
		router.POST("/leaves", middleware.Idempotency(rdb), func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})

		req := httptest.NewRequest(http.MethodPost, "/leaves", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
