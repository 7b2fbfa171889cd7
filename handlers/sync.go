package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"classwindow/store"
)

// Operation failures beyond the store's lookup errors
var (
	errWrongPassword  = errors.New("wrong password")
	errClassExists    = errors.New("class already exists")
	errInvalidIndex   = errors.New("invalid homework index")
	errNoHomeworkData = errors.New("homework data not found")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report wire field names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// SyncHandler is the single sync endpoint. The request body selects the
// operation through its action field; every outcome, including failures, is
// an HTTP 200 with a body-level success flag, because callers key off
// success rather than the status code.
func SyncHandler(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		fail(c, "invalid request data: empty request body")
		return
	}

	var envelope struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		fail(c, "invalid request data: malformed JSON")
		return
	}
	if envelope.Action == "" {
		fail(c, "missing action parameter")
		return
	}

	st := c.MustGet("store").(*store.Store)

	switch envelope.Action {
	case "register":
		handleRegister(c, st, raw)
	case "upload":
		handleUpload(c, st, raw)
	case "download":
		handleDownload(c, st, raw)
	case "student":
		handleStudentAccess(c, st, raw)
	case "teacherLogin":
		handleTeacherLogin(c, st, raw)
	case "addHomework":
		handleAddHomework(c, st, raw)
	case "deleteHomework":
		handleDeleteHomework(c, st, raw)
	case "templateSync":
		handleTemplateSync(c, st, raw)
	default:
		log.Printf("unknown sync action: %q", envelope.Action)
		fail(c, "unknown action")
	}
}

// OptionsHandler short-circuits pre-flight requests
func OptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OK"})
}

// decode unmarshals the operation payload and checks its required fields.
// On failure it has already written the response and returns false.
func decode(c *gin.Context, raw []byte, req any) bool {
	if err := json.Unmarshal(raw, req); err != nil {
		fail(c, "invalid request data: malformed JSON")
		return false
	}
	if msg := checkRequest(req); msg != "" {
		fail(c, msg)
		return false
	}
	return true
}

// checkRequest validates required fields, returning "" when valid. Only the
// first offending field is reported, named as it appears on the wire.
func checkRequest(req any) string {
	err := validate.Struct(req)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "oneof" {
			return "invalid " + fe.Field() + " parameter"
		}
		return "missing required parameter: " + fe.Field()
	}
	return "invalid request data"
}

func fail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": msg})
}

// failErr maps operation errors to their response messages. Storage faults
// are logged in full but surfaced generically so filesystem details never
// reach the caller.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrSchoolNotFound):
		fail(c, "school not found")
	case errors.Is(err, store.ErrClassNotFound):
		fail(c, "class not found")
	case errors.Is(err, errWrongPassword):
		fail(c, "wrong password")
	case errors.Is(err, errClassExists):
		fail(c, "class already exists")
	case errors.Is(err, errInvalidIndex):
		fail(c, "invalid homework index")
	case errors.Is(err, errNoHomeworkData):
		fail(c, "homework data not found")
	default:
		log.Printf("storage error: %v", err)
		fail(c, "storage operation failed")
	}
}
