package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"classwindow/models"
	"classwindow/store"
)

// handleRegister creates a class under a school code. The school itself is
// created lazily on first registration; a second registration for the same
// class code fails and leaves the existing class untouched.
func handleRegister(c *gin.Context, st *store.Store, raw []byte) {
	var req models.RegisterRequest
	if !decode(c, raw, &req) {
		return
	}

	err := st.Mutate(func(doc models.SchoolDocument) error {
		school, ok := doc[req.SchoolCode]
		if !ok {
			school = &models.School{Classes: map[string]*models.ClassRecord{}}
			doc[req.SchoolCode] = school
		}
		if school.Classes == nil {
			school.Classes = map[string]*models.ClassRecord{}
		}
		if _, exists := school.Classes[req.ClassCode]; exists {
			return errClassExists
		}
		school.Classes[req.ClassCode] = &models.ClassRecord{
			Password:     req.Password,
			HomeworkData: []models.Homework{},
			LastUpdated:  time.Now().Unix(),
		}
		return nil
	})
	if err != nil {
		failErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "registration successful",
		"schoolCode": req.SchoolCode,
		"classCode":  req.ClassCode,
	})
}

// handleUpload replaces the class's entire homework list
func handleUpload(c *gin.Context, st *store.Store, raw []byte) {
	var req models.UploadRequest
	if !decode(c, raw, &req) {
		return
	}

	var lastUpdated int64
	err := st.Mutate(func(doc models.SchoolDocument) error {
		cls, err := store.Class(doc, req.SchoolCode, req.ClassCode)
		if err != nil {
			return err
		}
		if cls.Password != req.Password {
			return errWrongPassword
		}
		cls.HomeworkData = req.HomeworkData
		cls.LastUpdated = time.Now().Unix()
		lastUpdated = cls.LastUpdated
		return nil
	})
	if err != nil {
		failErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "homework uploaded successfully",
		"homeworkCount": len(req.HomeworkData),
		"lastUpdated":   lastUpdated,
	})
}

// handleDownload is the teacher-authenticated read
func handleDownload(c *gin.Context, st *store.Store, raw []byte) {
	var req models.DownloadRequest
	if !decode(c, raw, &req) {
		return
	}
	respondClassRead(c, st, req.SchoolCode, req.ClassCode, &req.Password, "homework downloaded successfully")
}

// handleStudentAccess is the public read, no password required
func handleStudentAccess(c *gin.Context, st *store.Store, raw []byte) {
	var req models.StudentRequest
	if !decode(c, raw, &req) {
		return
	}
	respondClassRead(c, st, req.SchoolCode, req.ClassCode, nil, "access successful")
}

// handleTeacherLogin verifies credentials and returns the same payload as a
// download; clients use it purely as a credential check.
func handleTeacherLogin(c *gin.Context, st *store.Store, raw []byte) {
	var req models.DownloadRequest
	if !decode(c, raw, &req) {
		return
	}
	respondClassRead(c, st, req.SchoolCode, req.ClassCode, &req.Password, "login successful")
}

// respondClassRead serves the shared read path: resolve the class, optionally
// check the password, and return the homework payload without mutating
// anything.
func respondClassRead(c *gin.Context, st *store.Store, schoolCode, classCode string, password *string, message string) {
	cls, err := st.Get(schoolCode, classCode)
	if err != nil {
		failErr(c, err)
		return
	}
	if password != nil && cls.Password != *password {
		failErr(c, errWrongPassword)
		return
	}

	homework := cls.HomeworkData
	if homework == nil {
		homework = []models.Homework{}
	}
	lastUpdated := cls.LastUpdated
	if lastUpdated == 0 {
		lastUpdated = time.Now().Unix()
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       message,
		"homeworkData":  homework,
		"homeworkCount": len(homework),
		"lastUpdated":   lastUpdated,
	})
}
