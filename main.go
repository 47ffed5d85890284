package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	ginmiddleware "github.com/oapi-codegen/gin-middleware"

	"github.com/caffeinepub/minecraft-rank-store/api"
	"github.com/caffeinepub/minecraft-rank-store/clients/backend"
	"github.com/caffeinepub/minecraft-rank-store/envvars"
	"github.com/caffeinepub/minecraft-rank-store/services/cart"
	"github.com/caffeinepub/minecraft-rank-store/services/checkout"
	"github.com/caffeinepub/minecraft-rank-store/services/orders"
	"github.com/caffeinepub/minecraft-rank-store/services/profile"
	"github.com/caffeinepub/minecraft-rank-store/services/ranks"
	"github.com/caffeinepub/minecraft-rank-store/validator"
)

const openapiLocation = "./api/openapi.yaml"

func main() {
	env := envvars.GetEvn()

	rc := resty.New()
	rc.SetBaseURL(env.BackendURL)
	rc.SetHeader("X-API-KEY", env.BackendAPIKey)
	rc.SetHeader("Accept", "application/json")
	rc.SetHeader("User-Agent", "rank-store-storefront")
	client := backend.NewClient(rc)

	rankService := ranks.NewService(client)
	orderService := orders.NewService(client)
	cartService := cart.NewService()
	checkoutService := checkout.NewService(client, orderService)
	profileService := profile.NewService(client)
	server := NewServer(rankService, orderService, cartService, checkoutService, profileService)

	// Load OpenAPI spec file
	swagger, err := api.GetSwagger()
	if err != nil {
		slog.With("error", err.Error()).Error("failed to load swagger spec file")
		return
	}
	// Clear out the servers array in the swagger spec, that skips validating
	// that server names match. We don't know how this thing will be run.
	swagger.Servers = nil

	if envvars.IsProd(env) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/openapi", func(c *gin.Context) {
		c.Header("Content-Type", "application/x-yaml")
		c.File(openapiLocation)
	})

	r.Use(ginmiddleware.OapiRequestValidatorWithOptions(swagger, &ginmiddleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: validator.Authenticate,
		},
	}))
	r.Use(server.CartSession())
	h := api.NewStrictHandler(server, nil)
	api.RegisterHandlers(r, h)

	s := &http.Server{
		Handler: r,
		Addr:    env.ListenAddr,
	}

	slog.Info("Starting HTTP server", "addr", env.ListenAddr)
	log.Fatal(s.ListenAndServe())
}
