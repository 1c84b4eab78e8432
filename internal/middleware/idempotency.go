package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempLockTTL     = 30 * time.Second
	idempResponseTTL = 24 * time.Hour
)

type storedResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency mencegah pengajuan cuti ganda saat client retry POST yang sama.
// Request pertama memegang lock; setelah sukses responsnya disimpan sehingga
// retry berikutnya mendapat replay respons yang sama, bukan 409.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		baseKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := baseKey + ":lock"
		respKey := baseKey + ":resp"
		ctx := c.Request.Context()

		// Retry dari request yang sudah selesai: replay respons tersimpan
		if cached, err := rdb.Get(ctx, respKey).Result(); err == nil && cached != "" {
			var stored storedResponse
			if json.Unmarshal([]byte(cached), &stored) == nil {
				c.Data(stored.Status, "application/json; charset=utf-8", []byte(stored.Body))
				c.Abort()
				return
			}
		}

		// SetNX atomik; expiry pendek agar lock hilang sendiri kalau server crash
		isNew, _ := rdb.SetNX(ctx, lockKey, "locked", idempLockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "Request with this idempotency key is already being processed",
			})
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		status := recorder.Status()
		if status >= 200 && status < 300 {
			if payload, err := json.Marshal(storedResponse{Status: status, Body: recorder.body.String()}); err == nil {
				rdb.Set(ctx, respKey, string(payload), idempResponseTTL)
			}
		}
		// Lock dilepas: request gagal boleh langsung di-retry
		rdb.Del(ctx, lockKey)
	}
}
