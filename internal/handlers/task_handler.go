package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"task-tracker-api/internal/database"
	"task-tracker-api/internal/models"
	"task-tracker-api/internal/realtime"
	"task-tracker-api/internal/taskflow"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	DueDate     string              `json:"due_date"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
}

// UpdateTaskRequest represents the request payload for updating a task
type UpdateTaskRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	DueDate     *string              `json:"due_date"`
	Status      *models.TaskStatus   `json:"status"`
	Priority    *models.TaskPriority `json:"priority"`
}

// UpdateTaskStatusRequest represents a minimal request to change status
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

// parseDueDate accepts ISO dates and the DD-MM-YYYY form the original
// web form used. The result is a bare calendar date.
func parseDueDate(dateStr string) (*time.Time, bool) {
	if dateStr == "" {
		return nil, true
	}
	layouts := []string{
		"2006-01-02", // ISO date
		"02-01-2006", // DD-MM-YYYY
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func validStatus(s models.TaskStatus) bool {
	switch s {
	case models.StatusTodo, models.StatusDoing, models.StatusDone:
		return true
	}
	return false
}

func validPriority(p models.TaskPriority) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

/*
*
GetTasks handles GET /api/tasks
Lists the authenticated user's tasks.
Optional query params: filter (today|week|last_week|done, default week)
and sort (due_date|priority, default due_date). Unknown values are never
rejected; they degrade to the documented fallbacks.
*/
func GetTasks(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	filter := c.Query("filter")
	sortKey := c.Query("sort")

	var tasks []models.Task
	if err := database.GetDB().Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch tasks",
		})
		return
	}

	tasks = taskflow.Apply(tasks, filter, sortKey, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"tasks":  tasks,
		"count":  len(tasks),
		"filter": filter,
		"sort":   sortKey,
	})
}

/*
*
CreateTask handles POST /api/tasks
Creates a new task for the authenticated user
*/
func CreateTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// Set default values if not provided
	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !validStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !validPriority(priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	dueDate, ok := parseDueDate(req.DueDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due_date, expected YYYY-MM-DD or DD-MM-YYYY"})
		return
	}

	// Generate task ID (simple format: task-{timestamp})
	taskID := fmt.Sprintf("task-%d", time.Now().UnixNano())

	task := models.Task{
		ID:          taskID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Priority:    priority,
		UserID:      userID,
	}
	// A task created directly as done gets its completion stamp.
	task.ApplyStatus(status, time.Now())

	if err := database.GetDB().Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create task",
		})
		return
	}

	invalidateStats(userID)
	realtime.GetHub().Broadcast(userID, realtime.Event{
		Type:   realtime.EventTaskCreated,
		TaskID: task.ID,
		UserID: userID,
	})

	c.JSON(http.StatusCreated, task)
}

// GetTaskByID handles GET /api/tasks/:id
// Returns a single task owned by the authenticated user
func GetTaskByID(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	var task models.Task
	result := database.GetDB().Where("id = ? AND user_id = ?", taskID, userID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /api/tasks/:id
// Updates a task owned by the authenticated user
func UpdateTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Task ID is required",
		})
		return
	}

	// Check if task exists and belongs to user
	var existingTask models.Task
	result := database.GetDB().Where("id = ? AND user_id = ?", taskID, userID).First(&existingTask)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Task not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to fetch task",
			})
		}
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// Update fields if provided
	if req.Title != nil {
		existingTask.Title = *req.Title
	}
	if req.Description != nil {
		existingTask.Description = *req.Description
	}
	if req.DueDate != nil {
		dueDate, ok := parseDueDate(*req.DueDate)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due_date, expected YYYY-MM-DD or DD-MM-YYYY"})
			return
		}
		// An empty string clears the due date.
		existingTask.DueDate = dueDate
	}
	if req.Priority != nil {
		if !validPriority(*req.Priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		existingTask.Priority = *req.Priority
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		existingTask.ApplyStatus(*req.Status, time.Now())
	}

	// Save updated task
	if err := database.GetDB().Save(&existingTask).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update task",
		})
		return
	}

	invalidateStats(userID)
	realtime.GetHub().Broadcast(userID, realtime.Event{
		Type:   realtime.EventTaskUpdated,
		TaskID: existingTask.ID,
		UserID: userID,
	})

	c.JSON(http.StatusOK, existingTask)
}

// UpdateTaskStatus handles PATCH /api/tasks/:id/status
// Updates only the status of a task owned by the authenticated user
func UpdateTaskStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var task models.Task
	result := database.GetDB().Where("id = ? AND user_id = ?", taskID, userID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	task.ApplyStatus(req.Status, time.Now())
	err := database.GetDB().Model(&task).
		Updates(map[string]any{"status": task.Status, "completed_at": task.CompletedAt}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	invalidateStats(userID)
	realtime.GetHub().Broadcast(userID, realtime.Event{
		Type:   realtime.EventTaskStatusChanged,
		TaskID: task.ID,
		UserID: userID,
	})

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
// Deletes a task owned by the authenticated user
func DeleteTask(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Task ID is required",
		})
		return
	}

	// Check if task exists and belongs to user
	var task models.Task
	result := database.GetDB().Where("id = ? AND user_id = ?", taskID, userID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Task not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to fetch task",
			})
		}
		return
	}

	if err := database.GetDB().Delete(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete task",
		})
		return
	}

	invalidateStats(userID)
	realtime.GetHub().Broadcast(userID, realtime.Event{
		Type:   realtime.EventTaskDeleted,
		TaskID: taskID,
		UserID: userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      taskID,
	})
}
