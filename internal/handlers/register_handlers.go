package handlers

import (
	"reflect"
	"time"

	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/fincaops/fincaops/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Teach the binding validator to treat decimal fields as numbers so tags
// like gt=0 apply to quantities and amounts.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
	}
}

// RegisterRoutes sets up all application routes. In hosted mode the API group
// sits behind JWT auth and the public auth routes behind a rate limiter; in
// offline mode every request runs as the fixed local owner and the
// hosted-only routes (auth, migration) are not mounted.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	localOwnerID string,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	hosted := cfg.DatabaseURL != ""

	var v1 *gin.RouterGroup
	if hosted {
		public := r.Group("/api/v1", middleware.RateLimit(newAuthRateLimiter()))
		registerAuthRoutes(public, services.User, cfg)

		v1 = r.Group("/api/v1", middleware.Auth(cfg.JWTSecret))
		registerSyncRoutes(v1, services.Migration)
	} else {
		v1 = r.Group("/api/v1", middleware.LocalOwner(localOwnerID))
	}

	registerFarmRoutes(v1, services.Farm)
	registerLotRoutes(v1, services.Lot)
	registerStaffRoutes(v1, services.Staff)
	registerSupplyRoutes(v1, services.Supply)
	registerTaskRoutes(v1, services.Task, services.Ledger)
	registerUsageRoutes(v1, services.Ledger)
	registerTransactionRoutes(v1, services.Transaction)

	if services.Advisor != nil {
		registerAdvisorRoutes(v1, services.Advisor)
	}
}

// newAuthRateLimiter guards the credential endpoints: 10 attempts per minute
// per client IP, in-memory.
func newAuthRateLimiter() *limiter.Limiter {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  10,
	}
	return limiter.New(memory.NewStore(), rate)
}
