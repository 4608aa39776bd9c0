package response

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"taskapi/pkg/telemetry"
)

// ResponseCache keeps rendered GET bodies for a short window, keyed per
// user and path. Mutating handlers invalidate their owner's entry.
type ResponseCache struct {
	cache   *cache.Cache
	ttl     time.Duration
	metrics *telemetry.AppMetrics
}

type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func NewResponseCache(ttl time.Duration, metrics *telemetry.AppMetrics) *ResponseCache {
	return &ResponseCache{
		cache:   cache.New(ttl, 2*ttl),
		ttl:     ttl,
		metrics: metrics,
	}
}

// Middleware serves cached bodies for GET requests. The cache key includes
// the authenticated user so entries never cross owners.
func (rc *ResponseCache) Middleware(userKey func(c *gin.Context) (uuid.UUID, bool)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		userUUID, ok := userKey(c)

		if !ok {
			c.Next()
			return
		}

		key := rc.key(userUUID, c.Request.URL.Path)

		if entry, found := rc.cache.Get(key); found {
			cached := entry.(cachedResponse)

			if rc.metrics != nil {
				rc.metrics.RecordCacheHit(c.Request.URL.Path)
			}

			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		if rc.metrics != nil {
			rc.metrics.RecordCacheMiss(c.Request.URL.Path)
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if writer.Status() == http.StatusOK {
			rc.cache.Set(key, cachedResponse{
				StatusCode:  writer.Status(),
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			}, rc.ttl)
		}
	}
}

func (rc *ResponseCache) Invalidate(userUUID uuid.UUID, path string) {
	rc.cache.Delete(rc.key(userUUID, path))
}

func (rc *ResponseCache) key(userUUID uuid.UUID, path string) string {
	return userUUID.String() + ":" + path
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
