// Package api sets up and starts the API
// server with routing, middleware, and Swagger documentation.
package api

import (
	"fmt"
	"net/http"

	_ "github.com/iceadmin/foodgram/docs"
	"github.com/iceadmin/foodgram/internal/api/middleware"
	"github.com/iceadmin/foodgram/internal/api/routes/auth"
	"github.com/iceadmin/foodgram/internal/api/routes/ingredients"
	"github.com/iceadmin/foodgram/internal/api/routes/ping"
	"github.com/iceadmin/foodgram/internal/api/routes/recipes"
	"github.com/iceadmin/foodgram/internal/api/routes/tags"
	"github.com/iceadmin/foodgram/internal/api/routes/users"
	"github.com/iceadmin/foodgram/internal/env"
	"github.com/iceadmin/foodgram/internal/role"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const (
	serverPort = 8080
)

func addDocs(r *chi.Mux, serverAddr string) {
	swagger := httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/api/swagger/doc.json", serverAddr)),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)

	r.Mount("/api/swagger", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Handle preflight
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Allow GET to serve Swagger
		if req.Method == http.MethodGet {
			swagger.ServeHTTP(w, req)
			return
		}

		// Block anything else
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}))
}

func addRoutes(router *chi.Mux) {
	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.HandlePing)

		r.Route("/auth/token", func(r chi.Router) {
			r.Post("/login", auth.HandleTokenLogin)
			r.Post("/logout", auth.HandleTokenLogout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.HandleListUsers)
			r.Post("/", users.HandleCreateUser)

			// Fixed segments before the {userID} wildcard.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(role.RoleUser))

				r.Get("/me", users.HandleMe)
				r.Post("/set_password", users.HandleSetPassword)
				r.Get("/subscriptions", users.HandleSubscriptions)
			})

			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/", users.HandleGetUser)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(role.RoleUser))

					r.Put("/", users.HandleUpdateUser)
					r.Patch("/", users.HandleUpdateUser)
					r.Delete("/", users.HandleDeleteUser)
					r.Post("/subscribe", users.HandleSubscribe)
					r.Delete("/subscribe", users.HandleUnsubscribe)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(role.RoleAdmin))

					r.Put("/edit_user", users.HandleEditUser)
					r.Delete("/delete_user", users.HandleAdminDeleteUser)
					r.Post("/block_user", users.HandleBlockUser)
				})
			})
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", tags.HandleListTags)
			r.Get("/{tagID}", tags.HandleGetTag)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(role.RoleAdmin))

				r.Post("/", tags.HandleCreateTag)
				r.Patch("/{tagID}", tags.HandleUpdateTag)
				r.Delete("/{tagID}", tags.HandleDeleteTag)
			})
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", ingredients.HandleListIngredients)
			r.Get("/{ingredientID}", ingredients.HandleGetIngredient)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.HandleListRecipes)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(role.RoleUser))

				r.Post("/", recipes.HandleCreateRecipe)
				r.Get("/download_shopping_cart", recipes.HandleDownloadShoppingCart)
			})

			r.Route("/{recipeID}", func(r chi.Router) {
				r.Get("/", recipes.HandleGetRecipe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(role.RoleUser))

					r.Put("/", recipes.HandleUpdateRecipe)
					r.Patch("/", recipes.HandleUpdateRecipe)
					r.Delete("/", recipes.HandleDeleteRecipe)
					r.Post("/favorite", recipes.HandleFavorite)
					r.Delete("/favorite", recipes.HandleUnfavorite)
					r.Post("/shopping_cart", recipes.HandleAddToShoppingCart)
					r.Delete("/shopping_cart", recipes.HandleRemoveFromShoppingCart)
				})
			})
		})
	})
}

// Start godoc
//
//	@title						Foodgram API
//	@version					1.0
//	@description				API server for the Foodgram recipe assistant.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//
//	@host						localhost:8080
//	@BasePath					/api
func Start(env *env.Env) error {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(env.Logger))
	router.Use(middleware.InjectEnv(env))
	router.Use(middleware.AddCors)
	router.Use(middleware.Authenticate)

	addRoutes(router)
	addDocs(router, fmt.Sprintf("0.0.0.0:%d", serverPort))
	http.Handle("/", router)

	env.Logger.Info(fmt.Sprintf("Listening at 0.0.0.0:%d", serverPort))
	env.Logger.Info(fmt.Sprintf("Swagger UI available at http://0.0.0.0:%d/api/swagger/index.html", serverPort))
	return http.ListenAndServe(fmt.Sprintf(":%d", serverPort), nil)
}
