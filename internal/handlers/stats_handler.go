package handlers

import (
	"net/http"
	"time"

	"task-tracker-api/internal/cache"
	"task-tracker-api/internal/database"
	"task-tracker-api/internal/models"
	"task-tracker-api/internal/stats"

	"github.com/gin-gonic/gin"
)

// statsCache holds per-user completion stats. Entries are short-lived
// and dropped eagerly whenever the user mutates a task.
var (
	statsCache    = cache.New[string, stats.CompletionStats]()
	statsCacheTTL = 30 * time.Second
)

// SetStatsCacheTTL overrides the cache lifetime; zero disables expiry.
func SetStatsCacheTTL(ttl time.Duration) {
	statsCacheTTL = ttl
}

func invalidateStats(userID string) {
	statsCache.Delete(userID)
}

// GetStats handles GET /api/stats
// Returns the completion statistics for the authenticated user's tasks.
func GetStats(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	if s, ok := statsCache.Get(userID); ok {
		c.JSON(http.StatusOK, s)
		return
	}

	var tasks []models.Task
	if err := database.GetDB().Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	s := stats.Completion(tasks)
	statsCache.Set(userID, s, statsCacheTTL)

	c.JSON(http.StatusOK, s)
}

// GetWeeklyStats handles GET /api/stats/weekly
// Returns the trailing 7-day productivity series for the authenticated
// user. The response carries a "fake" flag when the series is the
// synthetic empty-state dataset.
func GetWeeklyStats(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in token"})
		return
	}

	var tasks []models.Task
	if err := database.GetDB().Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats.WeeklyProductivity(tasks, time.Now()))
}
