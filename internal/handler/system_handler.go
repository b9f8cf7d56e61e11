package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sarigama-github/agama-backend/internal/config"
	"github.com/sarigama-github/agama-backend/internal/response"
)

// SystemHandler serves the root greeting and the /test diagnostic.
type SystemHandler struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(pool *pgxpool.Pool, rdb *redis.Client) *SystemHandler {
	return &SystemHandler{pool: pool, rdb: rdb}
}

// Root godoc
// GET /
func (h *SystemHandler) Root(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "Backend siap digunakan"})
}

// Test godoc
// GET /test
// Reports backend, database and queue health. Always returns 200: the body
// describes which dependencies are reachable.
func (h *SystemHandler) Test(c *gin.Context) {
	ctx := c.Request.Context()

	status := gin.H{
		"backend":           "running",
		"database":          "unavailable",
		"connection_status": "not_connected",
		"collections":       []string{},
		"redis":             "unavailable",
		"audit_queue_depth": int64(0),
	}

	if err := h.pool.Ping(ctx); err == nil {
		status["database"] = "connected"
		status["connection_status"] = "connected"

		if tables, err := h.listTables(c); err == nil {
			status["collections"] = tables
		} else {
			status["database"] = "connected_with_errors"
		}
	}

	if err := h.rdb.Ping(ctx).Err(); err == nil {
		status["redis"] = "connected"
		if depth, err := h.rdb.LLen(ctx, config.WorkerKey.PersistSubmissionsQueue).Result(); err == nil {
			status["audit_queue_depth"] = depth
		}
	}

	response.Success(c, http.StatusOK, status)
}

func (h *SystemHandler) listTables(c *gin.Context) ([]string, error) {
	rows, err := h.pool.Query(c.Request.Context(),
		`SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}
