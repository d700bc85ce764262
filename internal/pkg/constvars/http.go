package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodConnect = "CONNECT"
	MethodOptions = "OPTIONS"
	MethodTrace   = "TRACE"
)

const (
	MIMETextPlain                  = "text/plain"
	MIMEApplicationJSON            = "application/json"
	MIMEApplicationForm            = "application/x-www-form-urlencoded"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	StatusMovedPermanently = 301
	StatusFound            = 302
	StatusNotModified      = 304

	StatusBadRequest           = 400
	StatusUnauthorized         = 401
	StatusForbidden            = 403
	StatusNotFound             = 404
	StatusMethodNotAllowed     = 405
	StatusRequestTimeout       = 408
	StatusConflict             = 409
	StatusGone                 = 410
	StatusUnprocessableEntity  = 422
	StatusLocked               = 423
	StatusPreconditionRequired = 428
	StatusTooManyRequests      = 429

	StatusInternalServerError = 500
	StatusNotImplemented      = 501
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization            = "Authorization"
	HeaderContentType              = "Content-Type"
	HeaderContentLength            = "Content-Length"
	HeaderAccept                   = "Accept"
	HeaderAcceptLanguage           = "Accept-Language"
	HeaderXRequestID               = "X-Request-Id"
	HeaderXForwardedFor            = "X-Forwarded-For"
	HeaderXRealIP                  = "X-Real-Ip"
	HeaderRetryAfter               = "Retry-After"
	HeaderCacheControl             = "Cache-Control"
	HeaderAccessControlAllowOrigin = "Access-Control-Allow-Origin"
)
