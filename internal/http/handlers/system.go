package handlers

import (
	"net/http"

	"busfinder/internal/db"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "bus finder is running"})
}

// DBCheck is a diagnostic: it reports an unreachable database instead of
// ending the process.
func (h Handler) DBCheck(c *gin.Context) {
	ctx := c.Request.Context()
	conn, err := h.Conn.Open(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	defer conn.Close()

	tables := gin.H{}
	for _, t := range []string{"bus_route_information", "bus_information"} {
		tables[t] = db.HasTable(ctx, conn, t)
	}

	var routes int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(DISTINCT bus_route) FROM bus_route_information`).Scan(&routes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed: " + err.Error(), "tables": tables})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "tables": tables, "routes": routes})
}
