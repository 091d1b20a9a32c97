package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldTable      = "table"
	FieldMenuItemID = "menu_item_id"
	FieldSaleID     = "sale_id"
	FieldTotalPaise = "total_paise"
	FieldYear       = "year"
	FieldMonth      = "month"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentStore     = "store"
	ComponentCatalog   = "catalog"
	ComponentCart      = "cart"
	ComponentSales     = "sales"
	ComponentReports   = "reports"
	ComponentEvents    = "events"
	ComponentCache     = "cache"
	ComponentRateLimit = "rate_limit"
)
