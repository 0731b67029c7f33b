package api

import (
	"github.com/gin-gonic/gin"
)

// Server serves HTTP requests for the SABR pricing service.
type Server struct {
	keyHash string
	router  *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing. keyHash is the
// bcrypt hash of the accepted API key; an empty hash disables authentication
// for local use.
func NewServer(keyHash string) *Server {
	server := &Server{keyHash: keyHash}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	authRoutes := router.Group("/v1").Use(server.authentication)
	authRoutes.POST("/price", server.pricer)
	authRoutes.POST("/smile", server.smile)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
