package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenthands/orgchart/internal/core"
	"github.com/agenthands/orgchart/internal/core/model"
	"github.com/agenthands/orgchart/internal/logging"
)

//go:embed templates/*.html
var templatesFS embed.FS

const pageTitle = "Hierarchy Tree"

type Server struct {
	Dashboard *core.Dashboard
	Logger    *zap.Logger
}

func NewServer(dashboard *core.Dashboard, logger *zap.Logger) *Server {
	return &Server{
		Dashboard: dashboard,
		Logger:    logger,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.GinMiddleware(s.Logger))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", s.Index)
	r.GET("/healthz", s.Health)

	api := r.Group("/api")
	api.GET("/tree", s.Tree)
	api.GET("/nodes/:id", s.Node)
	api.POST("/events/node-selected", s.NodeSelected)

	return r
}

func (s *Server) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": pageTitle})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "rows": s.Dashboard.Snapshot.Len()})
}

type TreeResponse struct {
	SnapshotID string              `json:"snapshot_id"`
	Elements   []model.TreeElement `json:"elements"`
	Layout     map[string]string   `json:"layout"`
	Stylesheet []StyleRule         `json:"stylesheet"`
}

func (s *Server) Tree(c *gin.Context) {
	c.JSON(http.StatusOK, TreeResponse{
		SnapshotID: s.Dashboard.Snapshot.ID,
		Elements:   s.Dashboard.Tree(),
		Layout:     map[string]string{"name": "breadthfirst"},
		Stylesheet: TreeStylesheet,
	})
}

// NodeSelected handles the tree's tap event. An empty body or missing id means
// nothing is selected.
func (s *Server) NodeSelected(c *gin.Context) {
	var sel model.Selection
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&sel); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	if sel.ID != nil {
		s.Logger.Debug("Node selected", zap.String("node_id", *sel.ID))
	}
	c.JSON(http.StatusOK, s.Dashboard.SelectNode(sel))
}

func (s *Server) Node(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, s.Dashboard.SelectNode(model.Selection{ID: &id}))
}
