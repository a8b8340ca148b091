package api

import "github.com/gin-gonic/gin"

// SetupRouter configures the gin engine with all API routes.
func SetupRouter(h *Handler, jwtSecret string) *gin.Engine {
	r := gin.Default()

	authMiddleware := AuthMiddleware(jwtSecret)

	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
		}

		documents := apiV1.Group("/documents")
		documents.Use(authMiddleware)
		{
			documents.GET("", h.ListDocuments)
			documents.POST("", h.UploadDocument)
			documents.GET("/:id", h.GetDocument)
			documents.PUT("/:id", h.UpdateDocument)
			documents.DELETE("/:id", h.DeleteDocument)
		}

		chat := apiV1.Group("/chat")
		chat.Use(authMiddleware)
		{
			chat.GET("/document/:id", h.GetChatHistory)
			chat.POST("/document/:id", h.AskQuestion)
		}

		news := apiV1.Group("/news")
		news.Use(authMiddleware)
		{
			news.GET("", h.ListNews)
			news.GET("/:id", h.GetNews)
			news.GET("/:id/personalized", h.GetPersonalizedNews)
			news.POST("", h.CreateNews)
			news.PUT("/:id", h.UpdateNews)
			news.DELETE("/:id", h.DeleteNews)
		}

		notes := apiV1.Group("/notes")
		notes.Use(authMiddleware)
		{
			notes.GET("", h.ListNotes)
			notes.POST("", h.CreateNote)
			notes.GET("/:id", h.GetNote)
			notes.PUT("/:id", h.UpdateNote)
			notes.DELETE("/:id", h.DeleteNote)
		}

		profile := apiV1.Group("/profile")
		profile.Use(authMiddleware)
		{
			profile.GET("", h.GetProfile)
			profile.POST("", h.CreateProfile)
			profile.PUT("", h.UpdateProfile)
		}
	}

	return r
}
