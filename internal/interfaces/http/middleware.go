package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// CORSMiddleware permite los orígenes configurados con cualquier método y cabecera.
// Con "*" las credenciales se desactivan: los navegadores rechazan esa combinación.
func CORSMiddleware(cfg config.CORSConfig, log *logger.Logger) fiber.Handler {
	credentials := cfg.AllowCredentials
	origins := strings.Join(cfg.AllowOrigins, ",")
	if cfg.Wildcard() {
		origins = "*"
		if credentials {
			log.Warn().Msg("CORS: origen comodín '*', se desactiva AllowCredentials")
			credentials = false
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodHead, fiber.MethodPut, fiber.MethodDelete, fiber.MethodPatch, fiber.MethodOptions}, ","),
		AllowHeaders:     "", // vacío: se reflejan las cabeceras solicitadas
		AllowCredentials: credentials,
	})
}

// RequestID asigna X-Request-ID a cada petición.
func RequestID() fiber.Handler {
	return requestid.New()
}

// RequestLogger registra método, ruta, estado y latencia de cada petición. Debe ir después
// de RequestID: deja en el contexto de la petición un sublogger con request_id.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		reqLog := log.With("request_id", reqID)
		c.SetUserContext(reqLog.IntoContext(c.UserContext()))

		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}

// ErrorHandler convierte los errores no manejados (rutas inexistentes, panics recuperados)
// al mismo cuerpo dto.ErrorResponse que usan los handlers.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// internalError respuesta 500 para errores inesperados de los casos de uso.
func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
