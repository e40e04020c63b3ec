package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aijournal/internal/config"
	"github.com/aijournal/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("journal_session", store))

	api := handler.NewAPI(gdb, cfg)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 公开读路径
	public := r.Group("/api")
	{
		public.GET("/entries", api.ListEntries)
		public.GET("/entries/:slug", api.GetEntryBySlug)
		public.GET("/tags", api.GetTags)
		public.GET("/posts", api.ListPosts)
		public.GET("/posts/:slug", api.GetPostBySlug)

		public.POST("/auth/login", api.Login)
		public.POST("/auth/logout", api.Logout)
	}

	// 需要管理员身份的后台路由
	admin := r.Group("/admin/api")
	admin.Use(api.RequireAuth(), api.RequireAdmin())
	{
		admin.GET("/dashboard", api.Dashboard)

		admin.GET("/entries", api.AdminListEntries)
		admin.GET("/entries/:id", api.AdminGetEntry)
		admin.POST("/entries", api.CreateEntry)
		admin.PUT("/entries/:id", api.UpdateEntry)
		admin.DELETE("/entries/:id", api.DeleteEntry)
	}

	return r
}
