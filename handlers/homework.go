package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"classwindow/models"
	"classwindow/store"
)

// handleAddHomework appends one entry with a server-side timestamp. No
// password is required for this operation.
func handleAddHomework(c *gin.Context, st *store.Store, raw []byte) {
	var req models.AddHomeworkRequest
	if !decode(c, raw, &req) {
		return
	}

	var homework []models.Homework
	var lastUpdated int64
	err := st.Mutate(func(doc models.SchoolDocument) error {
		cls, err := store.Class(doc, req.SchoolCode, req.ClassCode)
		if err != nil {
			return err
		}
		now := time.Now().Unix()
		if cls.HomeworkData == nil {
			cls.HomeworkData = []models.Homework{}
		}
		cls.HomeworkData = append(cls.HomeworkData, models.Homework{
			Subject:   req.Subject,
			Content:   req.Content,
			DueDate:   req.DueDate,
			Timestamp: now,
		})
		cls.LastUpdated = now
		homework = cls.HomeworkData
		lastUpdated = now
		return nil
	})
	if err != nil {
		failErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "homework added successfully",
		"homeworkData": homework,
		"lastUpdated":  lastUpdated,
	})
}

// handleDeleteHomework removes one entry by positional index. Indices of all
// later entries shift down by one, so callers must not cache indices across
// concurrent mutations.
func handleDeleteHomework(c *gin.Context, st *store.Store, raw []byte) {
	var req models.DeleteHomeworkRequest
	if !decode(c, raw, &req) {
		return
	}
	index := *req.Index

	var homework []models.Homework
	var lastUpdated int64
	err := st.Mutate(func(doc models.SchoolDocument) error {
		cls, err := store.Class(doc, req.SchoolCode, req.ClassCode)
		if err != nil {
			return err
		}
		if cls.HomeworkData == nil {
			return errNoHomeworkData
		}
		if index < 0 || index >= len(cls.HomeworkData) {
			return errInvalidIndex
		}
		cls.HomeworkData = append(cls.HomeworkData[:index], cls.HomeworkData[index+1:]...)
		cls.LastUpdated = time.Now().Unix()
		homework = cls.HomeworkData
		lastUpdated = cls.LastUpdated
		return nil
	})
	if err != nil {
		failErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "homework deleted successfully",
		"homeworkData": homework,
		"lastUpdated":  lastUpdated,
	})
}
