package api

import (
	"embed"
	"html/template"
	"log"
	stdhttp "net/http"

	intconfig "busfinder/internal/config"
	h "busfinder/internal/http/handlers"
	"busfinder/internal/http/middleware"
	"busfinder/internal/utils"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"rating": utils.FormatRating,
	}).ParseFS(templateFS, "templates/*.tmpl"))
}

func NewRouter(env intconfig.Env, hd h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Session(hd.Sessions), middleware.Logger(), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}
	r.SetHTMLTemplate(Templates())

	r.GET("/", hd.Page)
	r.POST("/book", hd.Book)
	r.GET("/export.csv", hd.ExportCSV)
	r.GET("/export.pdf", hd.ExportPDF)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	api.Use(middleware.CORS())
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", hd.DBCheck)
		api.GET("/options", hd.Options)

		routes := api.Group("/routes")
		routes.GET("", hd.ListRoutes)
		routes.GET("/link", hd.ResolveLink)

		api.GET("/buses", hd.SearchBuses)
		api.GET("/session", hd.Session)
		api.POST("/book", hd.BookAPI)
	}

	log.Printf("[HTTP] router ready addr=%s mode=%s", env.AppAddr, gin.Mode())
	return r
}
