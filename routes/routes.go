package routes

import (
	"net/http"

	"twohtsounds/auth"
	"twohtsounds/bookings"
	"twohtsounds/events"
	"twohtsounds/middleware"
	"twohtsounds/musicians"
	"twohtsounds/notify"
	"twohtsounds/ratelim"
	"twohtsounds/sitesettings"
	"twohtsounds/songs"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/eventpic/*filepath", http.Dir("static/eventpic"))
	router.ServeFiles("/static/songpic/*filepath", http.Dir("static/songpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(auth.Login))
}

func AddEventRoutes(router *httprouter.Router) {
	router.GET("/api/events", middleware.OptionalAuth(events.GetEvents))
	router.GET("/api/events/:id", events.GetEvent)
	router.GET("/api/events/:id/qr", events.TicketQR)
	router.POST("/api/events", middleware.Authenticate(events.CreateEvent))
	router.PUT("/api/events/:id", middleware.Authenticate(events.EditEvent))
	router.DELETE("/api/events/:id", middleware.Authenticate(events.DeleteEvent))
	router.POST("/api/events/:id/image", middleware.Authenticate(events.UploadImage))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, hub *notify.Hub) {
	router.POST("/api/bookings", rl.Limit(bookings.CreateBooking(hub)))
	router.GET("/api/bookings", middleware.Authenticate(bookings.GetBookings))
	router.GET("/api/bookings/:id", middleware.Authenticate(bookings.GetBooking))
	router.PUT("/api/bookings/:id", middleware.Authenticate(bookings.UpdateBooking(hub)))
	router.DELETE("/api/bookings/:id", middleware.Authenticate(bookings.DeleteBooking))
	router.GET("/api/bookings/:id/pdf", middleware.Authenticate(bookings.PrintBooking))
}

func AddMusicianRoutes(router *httprouter.Router) {
	router.GET("/api/musicians", musicians.GetMusicians)
	router.POST("/api/musicians", middleware.Authenticate(musicians.AddMusician))
	router.PUT("/api/musicians/:id", middleware.Authenticate(musicians.UpdateMusician))
	router.DELETE("/api/musicians/:id", middleware.Authenticate(musicians.DeleteMusician))
}

func AddSongRoutes(router *httprouter.Router) {
	router.GET("/api/songs", songs.GetSongs)
	router.GET("/api/songs/:id", songs.GetSong)
	router.POST("/api/songs", middleware.Authenticate(songs.CreateSong))
	router.PUT("/api/songs/:id", middleware.Authenticate(songs.UpdateSong))
	router.DELETE("/api/songs/:id", middleware.Authenticate(songs.DeleteSong))
	router.POST("/api/songs/:id/image", middleware.Authenticate(songs.UploadImage))
}

func AddSiteSettingsRoutes(router *httprouter.Router) {
	router.GET("/api/site-settings", sitesettings.GetSettings)
	router.PUT("/api/site-settings", middleware.Authenticate(sitesettings.UpdateSettings))
}

func AddNotifyRoutes(router *httprouter.Router, hub *notify.Hub) {
	router.GET("/api/admin/notifications/ws", notify.WebSocketHandler(hub))
}
