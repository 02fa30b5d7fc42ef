package routes

import (
	authapi "library-app/internal/api/auth"
	"library-app/internal/api/resource"
	reviewimagesapi "library-app/internal/api/reviewimages"
	usersapi "library-app/internal/api/users"
	"library-app/internal/app/http/middleware"
	"library-app/internal/domain/catalog"
	"library-app/internal/domain/orders"
	"library-app/internal/domain/reviews"
	"library-app/internal/domain/users"
	"library-app/internal/storage/uploads"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires every entity kind onto the generic handler shapes and
// mounts the entity-specific deviations. The auth gate covers everything but
// /auth and /health.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, store *uploads.Store) {
	resource.RegisterValidators()

	authHandler := authapi.NewHandler(db)
	r.POST("/auth", authHandler.Login)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	sanitize := middleware.SanitizeAndCleanInputMiddleware()
	uploadLimit := middleware.BodySizeLimit(uploads.MaxUploadBytes)

	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(db))

	// Genres
	genres := resource.NewCollection[catalog.Genre, *catalog.Genre](db, "genre", "/genres")
	genreItem := resource.NewItem[catalog.Genre, *catalog.Genre](db, "Genre", "/genres", nil, "")
	auth.GET("/genres", genres.List)
	auth.POST("/genres", sanitize, genres.Create)
	auth.GET("/genres/:id", genreItem.Get)
	auth.PUT("/genres/:id", sanitize, genreItem.Update)
	auth.DELETE("/genres/:id", genreItem.Delete)

	// Books
	books := resource.NewCollection[catalog.Book, *catalog.Book](db, "book", "/books", "Authors")
	bookItem := resource.NewItem[catalog.Book, *catalog.Book](db, "Book", "/books", store, "books", "Authors")
	bookPicture := resource.NewAttachment[catalog.Book, *catalog.Book](db, "Book", "/books", "books", store)
	auth.GET("/", books.List)
	auth.GET("/books", books.List)
	auth.POST("/books", sanitize, books.Create)
	auth.GET("/books/:id", bookItem.Get)
	auth.PUT("/books/:id", sanitize, bookItem.Update)
	auth.DELETE("/books/:id", bookItem.Delete)
	auth.PUT("/books/:id/picture", uploadLimit, bookPicture.Put)

	// Authors
	authors := resource.NewCollection[catalog.Author, *catalog.Author](db, "author", "/authors", "Books")
	authorItem := resource.NewItem[catalog.Author, *catalog.Author](db, "Author", "/authors", store, "authors", "Books")
	authorPicture := resource.NewAttachment[catalog.Author, *catalog.Author](db, "Author", "/authors", "authors", store)
	auth.GET("/authors", authors.List)
	auth.POST("/authors", sanitize, authors.Create)
	auth.GET("/authors/:id", authorItem.Get)
	auth.PUT("/authors/:id", sanitize, authorItem.Update)
	auth.DELETE("/authors/:id", authorItem.Delete)
	auth.PUT("/authors/:id/picture", uploadLimit, authorPicture.Put)

	// Users: creation and password changes are specialized, the rest is generic.
	usersHandler := usersapi.NewHandler(db)
	usersCol := resource.NewCollection[users.User, *users.User](db, "user", "/users", "Orders.Items", "Reviews.Images")
	userItem := resource.NewItem[users.User, *users.User](db, "User", "/users", store, "users", "Orders.Items", "Reviews.Images")
	userPicture := resource.NewAttachment[users.User, *users.User](db, "User", "/users", "users", store)
	auth.GET("/users", usersCol.List)
	auth.POST("/users", usersHandler.Create)
	auth.GET("/users/:id", userItem.Get)
	auth.PUT("/users/:id", userItem.Update)
	auth.DELETE("/users/:id", userItem.Delete)
	auth.PUT("/users/:id/picture", uploadLimit, userPicture.Put)
	auth.PUT("/users/:id/change-password", usersHandler.ChangePassword)

	// Orders
	ordersCol := resource.NewCollection[orders.Order, *orders.Order](db, "order", "/orders", "Items")
	orderItem := resource.NewItem[orders.Order, *orders.Order](db, "Order", "/orders", nil, "", "Items")
	auth.GET("/orders", ordersCol.List)
	auth.POST("/orders", sanitize, ordersCol.Create)
	auth.GET("/orders/:id", orderItem.Get)
	auth.PUT("/orders/:id", sanitize, orderItem.Update)
	auth.DELETE("/orders/:id", orderItem.Delete)

	// Order items
	orderItems := resource.NewCollection[orders.OrderItem, *orders.OrderItem](db, "order item", "/order-items")
	orderItemItem := resource.NewItem[orders.OrderItem, *orders.OrderItem](db, "Order Item", "/order-items", nil, "")
	auth.GET("/order-items", orderItems.List)
	auth.POST("/order-items", sanitize, orderItems.Create)
	auth.GET("/order-items/:id", orderItemItem.Get)
	auth.PUT("/order-items/:id", sanitize, orderItemItem.Update)
	auth.DELETE("/order-items/:id", orderItemItem.Delete)

	// Reviews and their image galleries
	reviewsCol := resource.NewCollection[reviews.Review, *reviews.Review](db, "review", "/reviews", "Images")
	reviewItem := resource.NewItem[reviews.Review, *reviews.Review](db, "Review", "/reviews", nil, "", "Images")
	reviewImages := reviewimagesapi.NewHandler(db, store)
	auth.GET("/reviews", reviewsCol.List)
	auth.POST("/reviews", sanitize, reviewsCol.Create)
	auth.GET("/reviews/:id", reviewItem.Get)
	auth.PUT("/reviews/:id", sanitize, reviewItem.Update)
	auth.DELETE("/reviews/:id", reviewItem.Delete)
	auth.GET("/reviews/:id/review-images", reviewImages.List)
	auth.POST("/reviews/:id/review-images", uploadLimit, reviewImages.Create)
	auth.PUT("/reviews/:id/review-images/:image_id", uploadLimit, reviewImages.Update)
	auth.DELETE("/reviews/:id/review-images/:image_id", reviewImages.Delete)
}
