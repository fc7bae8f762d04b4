package v1

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTMLTemplates parses the embedded page templates together with their
// helper functions. The engine loads them once at startup via
// SetHTMLTemplate.
func HTMLTemplates() *template.Template {
	funcs := template.FuncMap{
		"fmtdate": formatDate,
		"isodate": formatISODate,
		"has":     containsString,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

func formatDate(v interface{}) string {
	t, ok := dateOf(v)
	if !ok {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// formatISODate renders a date the way <input type="date"> expects it.
func formatISODate(v interface{}) string {
	t, ok := dateOf(v)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func dateOf(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	}
	return time.Time{}, false
}

// pageData injects the request user into the template data so every
// page can render the login state in its header.
func pageData(ctx *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["User"] = userFromContext(ctx)
	return data
}

func renderError(ctx *gin.Context, status int, message string) {
	ctx.HTML(status, "error.html", pageData(ctx, gin.H{
		"Status":  status,
		"Message": message,
	}))
	ctx.Abort()
}
