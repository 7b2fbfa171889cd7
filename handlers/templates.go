package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"classwindow/models"
	"classwindow/store"
)

// handleTemplateSync uploads or downloads a class's template set. Upload is
// replace-all, not a merge: whatever the client sends becomes the stored set.
func handleTemplateSync(c *gin.Context, st *store.Store, raw []byte) {
	var req models.TemplateSyncRequest
	if !decode(c, raw, &req) {
		return
	}

	if req.SyncAction == "upload" {
		templates := req.Templates
		if templates == nil {
			templates = []models.Template{}
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
			cls.Templates = templates
			cls.TemplatesLastUpdated = time.Now().Unix()
			lastUpdated = cls.TemplatesLastUpdated
			return nil
		})
		if err != nil {
			failErr(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"message":       "templates uploaded successfully",
			"templateCount": len(templates),
			"lastUpdated":   lastUpdated,
		})
		return
	}

	// download
	cls, err := st.Get(req.SchoolCode, req.ClassCode)
	if err != nil {
		failErr(c, err)
		return
	}
	if cls.Password != req.Password {
		failErr(c, errWrongPassword)
		return
	}

	templates := cls.Templates
	if templates == nil {
		templates = []models.Template{}
	}
	lastUpdated := cls.TemplatesLastUpdated
	if lastUpdated == 0 {
		lastUpdated = time.Now().Unix()
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "templates downloaded successfully",
		"templates":     templates,
		"templateCount": len(templates),
		"lastUpdated":   lastUpdated,
	})
}
